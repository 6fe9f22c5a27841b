package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hifz_keep/internal/handlers"
	"hifz_keep/internal/model"
	"hifz_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newHadithRouter(hadithSvc *mocks.MockHadithService) *chi.Mux {
	handler := handlers.NewHadithHandler(hadithSvc, nil)
	return testRouter(func(r chi.Router) {
		r.Post("/api/v1/hadiths", handler.CreateHadith)
		r.Get("/api/v1/hadiths", handler.ListHadiths)
		r.Get("/api/v1/hadiths/{hadith_id}", handler.GetHadith)
	})
}

func TestHadithHandler_CreateHadith(t *testing.T) {
	userID := uuid.New()

	validBody := model.CreateHadithRequest{
		Collection: "bukhari",
		Number:     1,
		ArabicText: "arabic",
		Grade:      "sahih",
	}
	created := &model.Hadith{
		HadithID:   uuid.New(),
		Collection: validBody.Collection,
		Number:     validBody.Number,
		ArabicText: validBody.ArabicText,
		Grade:      validBody.Grade,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockHadithService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "success",
			body: validBody,
			setupMock: func(m *mocks.MockHadithService) {
				m.On("CreateHadith", mock.Anything, &validBody).Return(created, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing arabic text",
			body:           model.CreateHadithRequest{Collection: "bukhari", Number: 1},
			setupMock:      func(m *mocks.MockHadithService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "invalid grade",
			body:           model.CreateHadithRequest{Collection: "bukhari", Number: 1, ArabicText: "x", Grade: "weakish"},
			setupMock:      func(m *mocks.MockHadithService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "duplicate collection and number",
			body: validBody,
			setupMock: func(m *mocks.MockHadithService) {
				m.On("CreateHadith", mock.Anything, &validBody).
					Return(nil, model.NewAppError("DUPLICATE_HADITH", "A hadith with this collection and number already exists.", "collection,number", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_HADITH",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hadithSvc := mocks.NewMockHadithService(t)
			router := newHadithRouter(hadithSvc)
			tc.setupMock(hadithSvc)

			req := createRequest(t, http.MethodPost, "/api/v1/hadiths", tc.body, &userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assertErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			} else {
				var resp model.Hadith
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, created.HadithID, resp.HadithID)
			}
		})
	}
}

func TestHadithHandler_ListHadiths(t *testing.T) {
	userID := uuid.New()

	hadithSvc := mocks.NewMockHadithService(t)
	router := newHadithRouter(hadithSvc)
	hadithSvc.On("ListHadiths", mock.Anything, model.ListHadithsQuery{Collection: "muslim", Page: 2, PerPage: 5}).
		Return(&model.HadithListResponse{
			Hadiths: []*model.Hadith{{HadithID: uuid.New(), Collection: "muslim", Number: 6}},
			Total:   11,
			Page:    2,
			PerPage: 5,
		}, nil).Once()

	req := createRequest(t, http.MethodGet, "/api/v1/hadiths?collection=muslim&page=2&per_page=5", nil, &userID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp model.HadithListResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.Total)
	assert.Len(t, resp.Hadiths, 1)
}
