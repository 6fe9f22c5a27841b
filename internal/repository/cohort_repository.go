package repository

import (
	"context"
	"errors"
	"time"

	"hifz_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CohortRepository interface {
	Create(ctx context.Context, tx *gorm.DB, cohort *model.Cohort) error
	FindByID(ctx context.Context, db *gorm.DB, cohortID uuid.UUID) (*model.Cohort, error)
	ListUpcoming(ctx context.Context, db *gorm.DB, after time.Time) ([]*model.Cohort, error)
	CountEnrollments(ctx context.Context, db *gorm.DB, cohortID uuid.UUID) (int64, error)
	CreateEnrollment(ctx context.Context, tx *gorm.DB, enrollment *model.CohortEnrollment) error
	FindEnrollment(ctx context.Context, db *gorm.DB, cohortID, userID uuid.UUID) (*model.CohortEnrollment, error)
	FindEnrollmentsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.CohortEnrollment, error)
}

type gormCohortRepository struct{}

func NewGormCohortRepository() CohortRepository {
	return &gormCohortRepository{}
}

func (r *gormCohortRepository) Create(ctx context.Context, tx *gorm.DB, cohort *model.Cohort) error {
	return tx.WithContext(ctx).Create(cohort).Error
}

func (r *gormCohortRepository) FindByID(ctx context.Context, db *gorm.DB, cohortID uuid.UUID) (*model.Cohort, error) {
	var cohort model.Cohort
	result := db.WithContext(ctx).Where("cohort_id = ?", cohortID).First(&cohort)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &cohort, nil
}

func (r *gormCohortRepository) ListUpcoming(ctx context.Context, db *gorm.DB, after time.Time) ([]*model.Cohort, error) {
	var cohorts []*model.Cohort
	result := db.WithContext(ctx).
		Where("start_date > ?", after).
		Order("start_date ASC").
		Find(&cohorts)
	if result.Error != nil {
		return nil, result.Error
	}
	return cohorts, nil
}

func (r *gormCohortRepository) CountEnrollments(ctx context.Context, db *gorm.DB, cohortID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.CohortEnrollment{}).Where("cohort_id = ?", cohortID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *gormCohortRepository) CreateEnrollment(ctx context.Context, tx *gorm.DB, enrollment *model.CohortEnrollment) error {
	result := tx.WithContext(ctx).Create(enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormCohortRepository) FindEnrollment(ctx context.Context, db *gorm.DB, cohortID, userID uuid.UUID) (*model.CohortEnrollment, error) {
	var enrollment model.CohortEnrollment
	result := db.WithContext(ctx).Where("cohort_id = ? AND user_id = ?", cohortID, userID).First(&enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &enrollment, nil
}

func (r *gormCohortRepository) FindEnrollmentsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.CohortEnrollment, error) {
	var enrollments []*model.CohortEnrollment
	result := db.WithContext(ctx).
		Preload("Cohort").
		Where("user_id = ?", userID).
		Order("enrolled_at DESC").
		Find(&enrollments)
	if result.Error != nil {
		return nil, result.Error
	}
	return enrollments, nil
}
