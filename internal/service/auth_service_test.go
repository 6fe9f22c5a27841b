package service_test

import (
	"context"
	"testing"
	"time"

	"hifz_keep/internal/config"
	"hifz_keep/internal/model"
	"hifz_keep/internal/repository/mocks"
	"hifz_keep/internal/service"
	servicemocks "hifz_keep/internal/service/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type AuthServiceTestSuite struct {
	suite.Suite

	db            *gorm.DB
	mockUserRepo  *mocks.UserRepository
	mockTokenRepo *mocks.TokenRepository
	mockMailer    *servicemocks.Mailer
	cfg           *config.Config
	authService   service.AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.db = db

	s.mockUserRepo = new(mocks.UserRepository)
	s.mockTokenRepo = new(mocks.TokenRepository)
	s.mockMailer = new(servicemocks.Mailer)

	s.cfg = &config.Config{
		App: config.AppConfig{Name: "HifzKeep", FrontendURL: "http://localhost:3000"},
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 15 * time.Minute,
		},
	}

	s.authService = service.NewAuthService(s.db, s.mockUserRepo, s.mockTokenRepo, s.mockMailer, s.cfg)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestRegister() {
	testCases := []struct {
		name        string
		req         *model.RegisterRequest
		setupMocks  func()
		checkResult func(user *model.User, err error)
	}{
		{
			name: "Success",
			req:  &model.RegisterRequest{Name: "Aisha", Email: "aisha@example.com", Password: "correct-horse"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "aisha@example.com").
					Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					// Password must be stored hashed, and new accounts start inactive.
					return u.Email == "aisha@example.com" && !u.IsActive &&
						bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct-horse")) == nil
				})).Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.MatchedBy(func(t *model.UserVerificationToken) bool {
					return len(t.Token) == 64 && time.Until(t.ExpiresAt) > 23*time.Hour
				})).Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, "aisha@example.com", mock.Anything, mock.Anything).
					Return(nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.NoError(err)
				s.NotNil(user)
				s.Equal("aisha@example.com", user.Email)
				s.False(user.IsActive)
			},
		},
		{
			name: "Failure - duplicate email",
			req:  &model.RegisterRequest{Name: "Aisha", Email: "aisha@example.com", Password: "correct-horse"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "aisha@example.com").
					Return(&model.User{}, nil).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				s.Error(err)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("DUPLICATE_EMAIL", appErr.Detail.Code)
			},
		},
		{
			name: "Failure - mail send fails rolls back",
			req:  &model.RegisterRequest{Name: "Aisha", Email: "aisha@example.com", Password: "correct-horse"},
			setupMocks: func() {
				s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "aisha@example.com").
					Return(nil, model.ErrNotFound).Once()
				s.mockUserRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.User")).
					Return(nil).Once()
				s.mockTokenRepo.On("CreateVerificationToken", mock.Anything, mock.Anything, mock.Anything).
					Return(nil).Once()
				s.mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(model.ErrInternalServer).Once()
			},
			checkResult: func(user *model.User, err error) {
				s.Nil(user)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("EMAIL_SEND_FAILED", appErr.Detail.Code)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMocks()

			user, err := s.authService.Register(context.Background(), tc.req)

			tc.checkResult(user, err)
			s.mockUserRepo.AssertExpectations(s.T())
			s.mockTokenRepo.AssertExpectations(s.T())
			s.mockMailer.AssertExpectations(s.T())
		})
	}
}

func (s *AuthServiceTestSuite) TestLogin() {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	activeUser := &model.User{
		UserID:       uuid.New(),
		Email:        "aisha@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}

	s.Run("Success - token carries the user ID", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "aisha@example.com").
			Return(activeUser, nil).Once()

		resp, err := s.authService.Login(context.Background(), &model.LoginRequest{
			Email:    "aisha@example.com",
			Password: "correct-horse",
		})

		s.NoError(err)
		s.Require().NotNil(resp)

		parsed, err := jwt.ParseWithClaims(resp.AccessToken, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.JWT.SecretKey), nil
		})
		s.NoError(err)
		claims := parsed.Claims.(*jwt.RegisteredClaims)
		s.Equal(activeUser.UserID.String(), claims.Subject)
	})

	s.Run("Failure - wrong password", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "aisha@example.com").
			Return(activeUser, nil).Once()

		resp, err := s.authService.Login(context.Background(), &model.LoginRequest{
			Email:    "aisha@example.com",
			Password: "wrong",
		})

		s.Nil(resp)
		var appErr *model.AppError
		s.ErrorAs(err, &appErr)
		s.Equal("AUTHENTICATION_FAILED", appErr.Detail.Code)
	})

	s.Run("Failure - unknown email uses the same error as wrong password", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").
			Return(nil, model.ErrNotFound).Once()

		resp, err := s.authService.Login(context.Background(), &model.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct-horse",
		})

		s.Nil(resp)
		var appErr *model.AppError
		s.ErrorAs(err, &appErr)
		s.Equal("AUTHENTICATION_FAILED", appErr.Detail.Code)
	})

	s.Run("Failure - account not verified", func() {
		s.SetupTest()
		inactive := *activeUser
		inactive.IsActive = false
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "aisha@example.com").
			Return(&inactive, nil).Once()

		resp, err := s.authService.Login(context.Background(), &model.LoginRequest{
			Email:    "aisha@example.com",
			Password: "correct-horse",
		})

		s.Nil(resp)
		var appErr *model.AppError
		s.ErrorAs(err, &appErr)
		s.Equal("ACCOUNT_NOT_ACTIVE", appErr.Detail.Code)
	})
}

func (s *AuthServiceTestSuite) TestVerifyAccount() {
	s.Run("Success", func() {
		s.SetupTest()
		userID := uuid.New()
		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "tok").
			Return(&model.UserVerificationToken{Token: "tok", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()
		s.mockUserRepo.On("Activate", mock.Anything, mock.Anything, userID).Return(nil).Once()
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "tok").Return(nil).Once()

		s.NoError(s.authService.VerifyAccount(context.Background(), "tok"))
	})

	s.Run("Failure - expired token is deleted", func() {
		s.SetupTest()
		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "tok").
			Return(&model.UserVerificationToken{Token: "tok", UserID: uuid.New(), ExpiresAt: time.Now().Add(-time.Minute)}, nil).Once()
		s.mockTokenRepo.On("DeleteVerificationToken", mock.Anything, mock.Anything, "tok").Return(nil).Once()

		err := s.authService.VerifyAccount(context.Background(), "tok")

		var appErr *model.AppError
		s.ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Detail.Code)
		s.mockTokenRepo.AssertExpectations(s.T())
	})

	s.Run("Failure - unknown token", func() {
		s.SetupTest()
		s.mockTokenRepo.On("FindVerificationToken", mock.Anything, mock.Anything, "tok").
			Return(nil, model.ErrNotFound).Once()

		err := s.authService.VerifyAccount(context.Background(), "tok")

		var appErr *model.AppError
		s.ErrorAs(err, &appErr)
		s.Equal("INVALID_TOKEN", appErr.Detail.Code)
	})
}

func (s *AuthServiceTestSuite) TestRequestPasswordReset() {
	s.Run("Unknown address is silently ignored", func() {
		s.SetupTest()
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").
			Return(nil, model.ErrNotFound).Once()

		s.NoError(s.authService.RequestPasswordReset(context.Background(), "nobody@example.com"))
		s.mockMailer.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("Known address gets a reset mail", func() {
		s.SetupTest()
		user := &model.User{UserID: uuid.New(), Email: "aisha@example.com", IsActive: true}
		s.mockUserRepo.On("FindByEmail", mock.Anything, mock.Anything, "aisha@example.com").
			Return(user, nil).Once()
		s.mockTokenRepo.On("CreatePasswordResetToken", mock.Anything, mock.Anything, mock.MatchedBy(func(t *model.PasswordResetToken) bool {
			return t.UserID == user.UserID && time.Until(t.ExpiresAt) <= time.Hour
		})).Return(nil).Once()
		s.mockMailer.On("Send", mock.Anything, "aisha@example.com", mock.Anything, mock.Anything).
			Return(nil).Once()

		s.NoError(s.authService.RequestPasswordReset(context.Background(), "aisha@example.com"))
		s.mockMailer.AssertExpectations(s.T())
	})
}
