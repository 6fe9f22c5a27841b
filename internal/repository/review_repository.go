package repository

import (
	"context"
	"errors"
	"time"

	"hifz_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, entries []model.ReviewEntry) error
	DeletePending(ctx context.Context, tx *gorm.DB, userID, planID, hadithID uuid.UUID) error
	FindDueByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time, limit int) ([]*model.ReviewEntry, error)
	FindByID(ctx context.Context, db *gorm.DB, userID, reviewID uuid.UUID) (*model.ReviewEntry, error)
	Complete(ctx context.Context, tx *gorm.DB, userID, reviewID uuid.UUID, reviewedAt time.Time) error
	UserIDsWithDueReviews(ctx context.Context, db *gorm.DB, today time.Time) ([]uuid.UUID, error)
	CountDueByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time) (int64, error)
}

type gormReviewRepository struct{}

func NewGormReviewRepository() ReviewRepository {
	return &gormReviewRepository{}
}

func (r *gormReviewRepository) CreateBatch(ctx context.Context, tx *gorm.DB, entries []model.ReviewEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&entries).Error
}

// DeletePending removes not-yet-completed obligations for one plan item so a
// repeated memorize does not multiply them. Completed entries stay.
func (r *gormReviewRepository) DeletePending(ctx context.Context, tx *gorm.DB, userID, planID, hadithID uuid.UUID) error {
	return tx.WithContext(ctx).
		Where("user_id = ? AND plan_id = ? AND hadith_id = ? AND status = ?",
			userID, planID, hadithID, model.ReviewPending).
		Delete(&model.ReviewEntry{}).Error
}

func (r *gormReviewRepository) FindDueByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time, limit int) ([]*model.ReviewEntry, error) {
	var entries []*model.ReviewEntry
	result := db.WithContext(ctx).
		Preload("Hadith").
		Joins("JOIN hadiths ON hadiths.hadith_id = review_schedule.hadith_id AND hadiths.deleted_at IS NULL").
		Where("review_schedule.user_id = ? AND review_schedule.status = ? AND review_schedule.scheduled_for <= ?",
			userID, model.ReviewPending, today).
		Order("review_schedule.scheduled_for ASC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

func (r *gormReviewRepository) FindByID(ctx context.Context, db *gorm.DB, userID, reviewID uuid.UUID) (*model.ReviewEntry, error) {
	var entry model.ReviewEntry
	result := db.WithContext(ctx).Where("review_id = ? AND user_id = ?", reviewID, userID).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &entry, nil
}

func (r *gormReviewRepository) Complete(ctx context.Context, tx *gorm.DB, userID, reviewID uuid.UUID, reviewedAt time.Time) error {
	result := tx.WithContext(ctx).Model(&model.ReviewEntry{}).
		Where("review_id = ? AND user_id = ? AND status = ?", reviewID, userID, model.ReviewPending).
		Updates(map[string]interface{}{
			"status":      model.ReviewCompleted,
			"reviewed_at": reviewedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormReviewRepository) UserIDsWithDueReviews(ctx context.Context, db *gorm.DB, today time.Time) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	result := db.WithContext(ctx).Model(&model.ReviewEntry{}).
		Distinct("user_id").
		Where("status = ? AND scheduled_for <= ?", model.ReviewPending, today).
		Pluck("user_id", &userIDs)
	if result.Error != nil {
		return nil, result.Error
	}
	return userIDs, nil
}

func (r *gormReviewRepository) CountDueByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, today time.Time) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.ReviewEntry{}).
		Where("user_id = ? AND status = ? AND scheduled_for <= ?", userID, model.ReviewPending, today).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
