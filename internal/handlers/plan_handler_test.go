package handlers_test

import (
	"encoding/json"
	"fmt"
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

func newPlanRouter(planSvc *mocks.MockPlanService) *chi.Mux {
	handler := handlers.NewPlanHandler(planSvc, nil)
	return testRouter(func(r chi.Router) {
		r.Post("/api/v1/plans", handler.CreatePlan)
		r.Get("/api/v1/plans", handler.ListPlans)
		r.Get("/api/v1/plans/{plan_id}", handler.GetPlan)
		r.Patch("/api/v1/plans/{plan_id}", handler.PatchPlan)
		r.Delete("/api/v1/plans/{plan_id}", handler.DeletePlan)
		r.Get("/api/v1/plans/{plan_id}/progress", handler.GetPlanProgress)
	})
}

func TestPlanHandler_CreatePlan(t *testing.T) {
	userID := uuid.New()
	hadithIDs := []uuid.UUID{uuid.New(), uuid.New()}

	validBody := model.CreatePlanRequest{
		Name:          "Nawawi 40",
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-30",
		HadithsPerDay: 2,
		HadithIDs:     hadithIDs,
	}
	created := &model.PlanDetailResponse{
		PlanResponse: model.PlanResponse{
			PlanID:        uuid.New(),
			Name:          validBody.Name,
			StartDate:     validBody.StartDate,
			EndDate:       validBody.EndDate,
			HadithsPerDay: 2,
			Status:        model.PlanActive,
			ItemCount:     2,
		},
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func(m *mocks.MockPlanService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "success",
			userID: &userID,
			body:   validBody,
			setupMock: func(m *mocks.MockPlanService) {
				m.On("CreatePlan", mock.Anything, userID, &validBody).Return(created, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing auth",
			userID:         nil,
			body:           validBody,
			setupMock:      func(m *mocks.MockPlanService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:   "quota below one never reaches the service",
			userID: &userID,
			body: model.CreatePlanRequest{
				Name:          "bad quota",
				StartDate:     "2026-09-01",
				EndDate:       "2026-09-30",
				HadithsPerDay: 0,
				HadithIDs:     hadithIDs,
			},
			setupMock:      func(m *mocks.MockPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "malformed date",
			userID:         &userID,
			body:           `{"name":"x","start_date":"Sep 1","end_date":"2026-09-30","hadiths_per_day":1,"hadith_ids":["` + hadithIDs[0].String() + `"]}`,
			setupMock:      func(m *mocks.MockPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:   "unknown hadith id from service",
			userID: &userID,
			body:   validBody,
			setupMock: func(m *mocks.MockPlanService) {
				m.On("CreatePlan", mock.Anything, userID, &validBody).
					Return(nil, model.NewAppError("UNKNOWN_HADITH", "One or more hadith IDs do not exist.", "hadith_ids", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "UNKNOWN_HADITH",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			planSvc := mocks.NewMockPlanService(t)
			router := newPlanRouter(planSvc)
			tc.setupMock(planSvc)

			req := createRequest(t, http.MethodPost, "/api/v1/plans", tc.body, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assertErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			} else {
				var resp model.PlanDetailResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, created.PlanID, resp.PlanID)
			}
		})
	}
}

func TestPlanHandler_GetPlan(t *testing.T) {
	userID := uuid.New()
	planID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		planSvc := mocks.NewMockPlanService(t)
		router := newPlanRouter(planSvc)
		planSvc.On("GetPlan", mock.Anything, userID, planID).
			Return(nil, model.NewAppError("NOT_FOUND", "Plan not found.", "", model.ErrNotFound)).Once()

		req := createRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/plans/%s", planID), nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assertErrorCode(t, rr.Body.Bytes(), "NOT_FOUND")
	})

	t.Run("bad uuid in path", func(t *testing.T) {
		planSvc := mocks.NewMockPlanService(t)
		router := newPlanRouter(planSvc)

		req := createRequest(t, http.MethodGet, "/api/v1/plans/not-a-uuid", nil, &userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assertErrorCode(t, rr.Body.Bytes(), "VALIDATION_ERROR")
	})
}

func TestPlanHandler_GetPlanProgress(t *testing.T) {
	userID := uuid.New()
	planID := uuid.New()

	planSvc := mocks.NewMockPlanService(t)
	router := newPlanRouter(planSvc)
	planSvc.On("GetPlanProgress", mock.Anything, userID, planID).
		Return(&model.PlanProgressResponse{PlanID: planID, Total: 10, Memorized: 4, Percent: 40}, nil).Once()

	req := createRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/plans/%s/progress", planID), nil, &userID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp model.PlanProgressResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.Memorized)
	assert.Equal(t, float64(40), resp.Percent)
}

func TestPlanHandler_DeletePlan(t *testing.T) {
	userID := uuid.New()
	planID := uuid.New()

	planSvc := mocks.NewMockPlanService(t)
	router := newPlanRouter(planSvc)
	planSvc.On("DeletePlan", mock.Anything, userID, planID).Return(nil).Once()

	req := createRequest(t, http.MethodDelete, fmt.Sprintf("/api/v1/plans/%s", planID), nil, &userID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
