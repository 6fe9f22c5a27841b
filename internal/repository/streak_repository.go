package repository

import (
	"context"
	"errors"

	"hifz_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreakRepository interface {
	Find(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Streak, error)
	// FindForUpdate must run inside a transaction; it takes a row lock so
	// concurrent requests for the same user serialize instead of losing
	// updates.
	FindForUpdate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*model.Streak, error)
	Save(ctx context.Context, tx *gorm.DB, streak *model.Streak) error
}

type gormStreakRepository struct{}

func NewGormStreakRepository() StreakRepository {
	return &gormStreakRepository{}
}

func (r *gormStreakRepository) Find(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.Streak, error) {
	var streak model.Streak
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&streak)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &streak, nil
}

func (r *gormStreakRepository) FindForUpdate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*model.Streak, error) {
	var streak model.Streak
	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&streak)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &streak, nil
}

func (r *gormStreakRepository) Save(ctx context.Context, tx *gorm.DB, streak *model.Streak) error {
	return tx.WithContext(ctx).Save(streak).Error
}
