package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hifz_keep/internal/model"
	"hifz_keep/internal/repository/mocks"
	"hifz_keep/internal/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBCohort(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func upcomingCohort(capacity int) *model.Cohort {
	return &model.Cohort{
		CohortID:     uuid.New(),
		Name:         "Ramadan Intensive",
		StartDate:    schedule.Day(time.Now().AddDate(0, 0, 7)),
		DurationDays: 30,
		Capacity:     capacity,
	}
}

func Test_cohortService_Enroll(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(m *mocks.CohortRepository, cohortID uuid.UUID)
		wantCode  string
	}{
		{
			name: "success",
			setupMock: func(m *mocks.CohortRepository, cohortID uuid.UUID) {
				c := upcomingCohort(10)
				c.CohortID = cohortID
				m.On("FindByID", mock.Anything, mock.Anything, cohortID).Return(c, nil).Once()
				m.On("FindEnrollment", mock.Anything, mock.Anything, cohortID, userID).
					Return(nil, model.ErrNotFound).Once()
				m.On("CountEnrollments", mock.Anything, mock.Anything, cohortID).
					Return(int64(3), nil).Once()
				m.On("CreateEnrollment", mock.Anything, mock.Anything, mock.MatchedBy(func(e *model.CohortEnrollment) bool {
					return e.CohortID == cohortID && e.UserID == userID && e.EnrollmentID != uuid.Nil
				})).Return(nil).Once()
			},
		},
		{
			name: "cohort not found",
			setupMock: func(m *mocks.CohortRepository, cohortID uuid.UUID) {
				m.On("FindByID", mock.Anything, mock.Anything, cohortID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantCode: "NOT_FOUND",
		},
		{
			name: "cohort already started",
			setupMock: func(m *mocks.CohortRepository, cohortID uuid.UUID) {
				c := upcomingCohort(10)
				c.CohortID = cohortID
				c.StartDate = schedule.Day(time.Now().AddDate(0, 0, -1))
				m.On("FindByID", mock.Anything, mock.Anything, cohortID).Return(c, nil).Once()
			},
			wantCode: "COHORT_STARTED",
		},
		{
			name: "already enrolled",
			setupMock: func(m *mocks.CohortRepository, cohortID uuid.UUID) {
				c := upcomingCohort(10)
				c.CohortID = cohortID
				m.On("FindByID", mock.Anything, mock.Anything, cohortID).Return(c, nil).Once()
				m.On("FindEnrollment", mock.Anything, mock.Anything, cohortID, userID).
					Return(&model.CohortEnrollment{EnrollmentID: uuid.New(), CohortID: cohortID, UserID: userID}, nil).Once()
			},
			wantCode: "ALREADY_ENROLLED",
		},
		{
			name: "cohort full",
			setupMock: func(m *mocks.CohortRepository, cohortID uuid.UUID) {
				c := upcomingCohort(5)
				c.CohortID = cohortID
				m.On("FindByID", mock.Anything, mock.Anything, cohortID).Return(c, nil).Once()
				m.On("FindEnrollment", mock.Anything, mock.Anything, cohortID, userID).
					Return(nil, model.ErrNotFound).Once()
				m.On("CountEnrollments", mock.Anything, mock.Anything, cohortID).
					Return(int64(5), nil).Once()
			},
			wantCode: "COHORT_FULL",
		},
		{
			name: "unique index fires under a concurrent enroll",
			setupMock: func(m *mocks.CohortRepository, cohortID uuid.UUID) {
				c := upcomingCohort(10)
				c.CohortID = cohortID
				m.On("FindByID", mock.Anything, mock.Anything, cohortID).Return(c, nil).Once()
				m.On("FindEnrollment", mock.Anything, mock.Anything, cohortID, userID).
					Return(nil, model.ErrNotFound).Once()
				m.On("CountEnrollments", mock.Anything, mock.Anything, cohortID).
					Return(int64(3), nil).Once()
				m.On("CreateEnrollment", mock.Anything, mock.Anything, mock.AnythingOfType("*model.CohortEnrollment")).
					Return(model.ErrConflict).Once()
			},
			wantCode: "ALREADY_ENROLLED",
		},
		{
			name: "count error",
			setupMock: func(m *mocks.CohortRepository, cohortID uuid.UUID) {
				c := upcomingCohort(10)
				c.CohortID = cohortID
				m.On("FindByID", mock.Anything, mock.Anything, cohortID).Return(c, nil).Once()
				m.On("FindEnrollment", mock.Anything, mock.Anything, cohortID, userID).
					Return(nil, model.ErrNotFound).Once()
				m.On("CountEnrollments", mock.Anything, mock.Anything, cohortID).
					Return(int64(0), errors.New("db down")).Once()
			},
			wantCode: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBCohort(t)
			cohortRepo := mocks.NewCohortRepository(t)
			cohortID := uuid.New()
			tt.setupMock(cohortRepo, cohortID)

			svc := NewCohortService(db, cohortRepo)
			resp, err := svc.Enroll(context.Background(), userID, cohortID)

			if tt.wantCode != "" {
				require.Error(t, err)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Detail.Code)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, cohortID, resp.CohortID)
			assert.Equal(t, "Ramadan Intensive", resp.CohortName)
			assert.NotEqual(t, uuid.Nil, resp.EnrollmentID)
		})
	}
}

func Test_cohortService_CreateCohort(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := setupTestDBCohort(t)
		cohortRepo := mocks.NewCohortRepository(t)
		cohortRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(c *model.Cohort) bool {
			return c.Name == "Nawawi Camp" && c.Capacity == 20 &&
				c.StartDate.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
		})).Return(nil).Once()

		svc := NewCohortService(db, cohortRepo)
		resp, err := svc.CreateCohort(context.Background(), &model.CreateCohortRequest{
			Name:         "Nawawi Camp",
			StartDate:    "2026-10-01",
			DurationDays: 40,
			Capacity:     20,
		})

		require.NoError(t, err)
		assert.Equal(t, "2026-10-01", resp.StartDate)
		assert.Equal(t, int64(0), resp.Enrolled)
	})

	t.Run("malformed start date", func(t *testing.T) {
		db := setupTestDBCohort(t)
		cohortRepo := mocks.NewCohortRepository(t)

		svc := NewCohortService(db, cohortRepo)
		_, err := svc.CreateCohort(context.Background(), &model.CreateCohortRequest{
			Name:         "x",
			StartDate:    "Oct 1st",
			DurationDays: 40,
			Capacity:     20,
		})

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
	})
}

func Test_cohortService_ListMyEnrollments(t *testing.T) {
	userID := uuid.New()
	db := setupTestDBCohort(t)
	cohortRepo := mocks.NewCohortRepository(t)

	cohort := upcomingCohort(10)
	enrollments := []*model.CohortEnrollment{
		{
			EnrollmentID: uuid.New(),
			CohortID:     cohort.CohortID,
			UserID:       userID,
			EnrolledAt:   time.Now(),
			Cohort:       cohort,
		},
		// Orphaned row is skipped, not fatal.
		{
			EnrollmentID: uuid.New(),
			CohortID:     uuid.New(),
			UserID:       userID,
			EnrolledAt:   time.Now(),
		},
	}
	cohortRepo.On("FindEnrollmentsByUser", mock.Anything, mock.Anything, userID).
		Return(enrollments, nil).Once()

	svc := NewCohortService(db, cohortRepo)
	resp, err := svc.ListMyEnrollments(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, cohort.Name, resp[0].CohortName)
}
