package service

import (
	"context"
	"errors"
	"time"

	"hifz_keep/internal/middleware"
	"hifz_keep/internal/model"
	"hifz_keep/internal/repository"
	"hifz_keep/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CohortService interface {
	CreateCohort(ctx context.Context, req *model.CreateCohortRequest) (*model.CohortResponse, error)
	ListUpcomingCohorts(ctx context.Context) ([]*model.CohortResponse, error)
	Enroll(ctx context.Context, userID, cohortID uuid.UUID) (*model.EnrollmentResponse, error)
	ListMyEnrollments(ctx context.Context, userID uuid.UUID) ([]*model.EnrollmentResponse, error)
}

type cohortService struct {
	db         *gorm.DB
	cohortRepo repository.CohortRepository
}

func NewCohortService(db *gorm.DB, cohortRepo repository.CohortRepository) CohortService {
	return &cohortService{db: db, cohortRepo: cohortRepo}
}

func (s *cohortService) CreateCohort(ctx context.Context, req *model.CreateCohortRequest) (*model.CohortResponse, error) {
	logger := middleware.GetLogger(ctx)

	startDate, err := time.Parse(model.DateLayout, req.StartDate)
	if err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "start_date must be a YYYY-MM-DD date.", "start_date", model.ErrInvalidInput)
	}

	cohort := &model.Cohort{
		CohortID:     uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    schedule.Day(startDate),
		DurationDays: req.DurationDays,
		Capacity:     req.Capacity,
	}
	if err := s.cohortRepo.Create(ctx, s.db, cohort); err != nil {
		logger.Error("Error creating cohort", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create the cohort.", "", err)
	}

	logger.Info("Cohort created", "cohort_id", cohort.CohortID, "start_date", req.StartDate)
	return newCohortResponse(cohort, 0), nil
}

func (s *cohortService) ListUpcomingCohorts(ctx context.Context) ([]*model.CohortResponse, error) {
	logger := middleware.GetLogger(ctx)

	cohorts, err := s.cohortRepo.ListUpcoming(ctx, s.db, time.Now())
	if err != nil {
		logger.Error("Error listing cohorts", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list cohorts.", "", err)
	}

	responses := make([]*model.CohortResponse, 0, len(cohorts))
	for _, c := range cohorts {
		enrolled, err := s.cohortRepo.CountEnrollments(ctx, s.db, c.CohortID)
		if err != nil {
			logger.Error("Error counting enrollments", "error", err, "cohort_id", c.CohortID)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list cohorts.", "", err)
		}
		responses = append(responses, newCohortResponse(c, enrolled))
	}
	return responses, nil
}

func (s *cohortService) Enroll(ctx context.Context, userID, cohortID uuid.UUID) (*model.EnrollmentResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "cohort_id", cohortID)

	var enrollment *model.CohortEnrollment
	var cohort *model.Cohort

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := s.cohortRepo.FindByID(ctx, tx, cohortID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "Cohort not found.", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to enroll.", "", err)
		}
		cohort = c

		if !time.Now().Before(c.StartDate) {
			return model.NewAppError("COHORT_STARTED", "This cohort has already started.", "", model.ErrForbidden)
		}

		if _, err := s.cohortRepo.FindEnrollment(ctx, tx, cohortID, userID); err == nil {
			return model.NewAppError("ALREADY_ENROLLED", "You are already enrolled in this cohort.", "", model.ErrConflict)
		} else if !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to enroll.", "", err)
		}

		enrolled, err := s.cohortRepo.CountEnrollments(ctx, tx, cohortID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to enroll.", "", err)
		}
		if enrolled >= int64(c.Capacity) {
			return model.NewAppError("COHORT_FULL", "This cohort is full.", "", model.ErrConflict)
		}

		e := &model.CohortEnrollment{
			EnrollmentID: uuid.New(),
			CohortID:     cohortID,
			UserID:       userID,
			EnrolledAt:   time.Now(),
		}
		if err := s.cohortRepo.CreateEnrollment(ctx, tx, e); err != nil {
			// Unique index may fire under a concurrent enroll.
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("ALREADY_ENROLLED", "You are already enrolled in this cohort.", "", model.ErrConflict)
			}
			logger.Error("Error creating enrollment", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to enroll.", "", err)
		}
		enrollment = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Enrolled in cohort")
	return &model.EnrollmentResponse{
		EnrollmentID: enrollment.EnrollmentID,
		CohortID:     cohort.CohortID,
		CohortName:   cohort.Name,
		StartDate:    cohort.StartDate.Format(model.DateLayout),
		EnrolledAt:   enrollment.EnrolledAt,
	}, nil
}

func (s *cohortService) ListMyEnrollments(ctx context.Context, userID uuid.UUID) ([]*model.EnrollmentResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	enrollments, err := s.cohortRepo.FindEnrollmentsByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Error listing enrollments", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to list enrollments.", "", err)
	}

	responses := make([]*model.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Cohort == nil {
			logger.Warn("Enrollment with missing cohort, skipping", "enrollment_id", e.EnrollmentID)
			continue
		}
		responses = append(responses, &model.EnrollmentResponse{
			EnrollmentID: e.EnrollmentID,
			CohortID:     e.CohortID,
			CohortName:   e.Cohort.Name,
			StartDate:    e.Cohort.StartDate.Format(model.DateLayout),
			EnrolledAt:   e.EnrolledAt,
		})
	}
	return responses, nil
}

func newCohortResponse(c *model.Cohort, enrolled int64) *model.CohortResponse {
	return &model.CohortResponse{
		CohortID:     c.CohortID,
		Name:         c.Name,
		Description:  c.Description,
		StartDate:    c.StartDate.Format(model.DateLayout),
		DurationDays: c.DurationDays,
		Capacity:     c.Capacity,
		Enrolled:     enrolled,
	}
}
