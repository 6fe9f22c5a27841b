package repository

import (
	"context"
	"errors"

	"hifz_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	Upsert(ctx context.Context, tx *gorm.DB, progress *model.MemorizationProgress) error
	FindByKey(ctx context.Context, db *gorm.DB, userID, hadithID, planID uuid.UUID) (*model.MemorizationProgress, error)
	CountByPlan(ctx context.Context, db *gorm.DB, userID, planID uuid.UUID, statuses ...model.ProgressStatus) (int64, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

// Upsert inserts the progress row or, on conflict with the unique
// (user, hadith, plan) key, overwrites status, confidence and note in place.
func (r *gormProgressRepository) Upsert(ctx context.Context, tx *gorm.DB, progress *model.MemorizationProgress) error {
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "hadith_id"}, {Name: "plan_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"status", "confidence", "note", "updated_at"}),
	}).Create(progress).Error
}

func (r *gormProgressRepository) FindByKey(ctx context.Context, db *gorm.DB, userID, hadithID, planID uuid.UUID) (*model.MemorizationProgress, error) {
	var progress model.MemorizationProgress
	result := db.WithContext(ctx).
		Where("user_id = ? AND hadith_id = ? AND plan_id = ?", userID, hadithID, planID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &progress, nil
}

// CountByPlan counts the user's progress rows for the plan, restricted to
// the given statuses when any are passed.
func (r *gormProgressRepository) CountByPlan(ctx context.Context, db *gorm.DB, userID, planID uuid.UUID, statuses ...model.ProgressStatus) (int64, error) {
	var count int64
	query := db.WithContext(ctx).Model(&model.MemorizationProgress{}).
		Where("user_id = ? AND plan_id = ?", userID, planID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
