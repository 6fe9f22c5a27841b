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

func newAuthRouter(authSvc *mocks.MockAuthService) *chi.Mux {
	handler := handlers.NewAuthHandler(authSvc, nil)
	router := chi.NewRouter()
	router.Post("/api/v1/auth/register", handler.Register)
	router.Post("/api/v1/auth/login", handler.Login)
	router.Post("/api/v1/auth/password/forgot", handler.ForgotPassword)
	return router
}

func TestAuthHandler_Register(t *testing.T) {
	validBody := model.RegisterRequest{
		Name:     "Aisha",
		Email:    "aisha@example.com",
		Password: "correct-horse",
	}
	created := &model.User{
		UserID: uuid.New(),
		Name:   validBody.Name,
		Email:  validBody.Email,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockAuthService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "success",
			body: validBody,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Register", mock.Anything, &validBody).Return(created, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid email",
			body:           model.RegisterRequest{Name: "x", Email: "not-an-email", Password: "correct-horse"},
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "password too short",
			body:           model.RegisterRequest{Name: "x", Email: "x@example.com", Password: "short"},
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "duplicate email",
			body: validBody,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Register", mock.Anything, &validBody).
					Return(nil, model.NewAppError("DUPLICATE_EMAIL", "This email address is already registered.", "email", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "DUPLICATE_EMAIL",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService(t)
			router := newAuthRouter(authSvc)
			tc.setupMock(authSvc)

			req := createRequest(t, http.MethodPost, "/api/v1/auth/register", tc.body, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedCode != "" {
				assertErrorCode(t, rr.Body.Bytes(), tc.expectedCode)
			} else {
				var resp model.UserResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, created.UserID, resp.UserID)
				// The password hash must never leak into the response.
				assert.NotContains(t, rr.Body.String(), "password")
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	validBody := model.LoginRequest{Email: "aisha@example.com", Password: "correct-horse"}

	t.Run("success", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService(t)
		router := newAuthRouter(authSvc)
		authSvc.On("Login", mock.Anything, &validBody).
			Return(&model.LoginResponse{AccessToken: "signed.jwt.token"}, nil).Once()

		req := createRequest(t, http.MethodPost, "/api/v1/auth/login", validBody, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.LoginResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	})

	t.Run("bad credentials", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService(t)
		router := newAuthRouter(authSvc)
		authSvc.On("Login", mock.Anything, &validBody).
			Return(nil, model.NewAppError("AUTHENTICATION_FAILED", "Email or password is incorrect.", "", model.ErrUnauthorized)).Once()

		req := createRequest(t, http.MethodPost, "/api/v1/auth/login", validBody, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assertErrorCode(t, rr.Body.Bytes(), "AUTHENTICATION_FAILED")
	})
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	t.Run("unknown address still returns 200", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService(t)
		router := newAuthRouter(authSvc)
		authSvc.On("RequestPasswordReset", mock.Anything, "nobody@example.com").Return(nil).Once()

		body := model.ForgotPasswordRequest{Email: "nobody@example.com"}
		req := createRequest(t, http.MethodPost, "/api/v1/auth/password/forgot", body, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
