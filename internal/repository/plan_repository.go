package repository

import (
	"context"
	"errors"

	"hifz_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanRepository interface {
	Create(ctx context.Context, tx *gorm.DB, plan *model.MemorizationPlan) error
	CreateItems(ctx context.Context, tx *gorm.DB, items []model.PlanHadith) error
	FindByID(ctx context.Context, db *gorm.DB, userID, planID uuid.UUID) (*model.MemorizationPlan, error)
	FindByIDWithItems(ctx context.Context, db *gorm.DB, userID, planID uuid.UUID) (*model.MemorizationPlan, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.MemorizationPlan, error)
	CountItems(ctx context.Context, db *gorm.DB, planID uuid.UUID) (int64, error)
	FindItem(ctx context.Context, db *gorm.DB, planID, hadithID uuid.UUID) (*model.PlanHadith, error)
	Update(ctx context.Context, tx *gorm.DB, userID, planID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID, planID uuid.UUID) error
}

type gormPlanRepository struct{}

func NewGormPlanRepository() PlanRepository {
	return &gormPlanRepository{}
}

func (r *gormPlanRepository) Create(ctx context.Context, tx *gorm.DB, plan *model.MemorizationPlan) error {
	return tx.WithContext(ctx).Create(plan).Error
}

func (r *gormPlanRepository) CreateItems(ctx context.Context, tx *gorm.DB, items []model.PlanHadith) error {
	if len(items) == 0 {
		return nil
	}
	// Bulk insert in one statement; the plan transaction rolls everything
	// back if any row fails.
	return tx.WithContext(ctx).CreateInBatches(items, 100).Error
}

func (r *gormPlanRepository) FindByID(ctx context.Context, db *gorm.DB, userID, planID uuid.UUID) (*model.MemorizationPlan, error) {
	var plan model.MemorizationPlan
	result := db.WithContext(ctx).Where("plan_id = ? AND user_id = ?", planID, userID).First(&plan)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &plan, nil
}

func (r *gormPlanRepository) FindByIDWithItems(ctx context.Context, db *gorm.DB, userID, planID uuid.UUID) (*model.MemorizationPlan, error) {
	var plan model.MemorizationPlan
	result := db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("plan_hadiths.position ASC")
		}).
		Preload("Items.Hadith").
		Where("plan_id = ? AND user_id = ?", planID, userID).
		First(&plan)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &plan, nil
}

func (r *gormPlanRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.MemorizationPlan, error) {
	var plans []*model.MemorizationPlan
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans)
	if result.Error != nil {
		return nil, result.Error
	}
	return plans, nil
}

func (r *gormPlanRepository) CountItems(ctx context.Context, db *gorm.DB, planID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.PlanHadith{}).Where("plan_id = ?", planID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *gormPlanRepository) FindItem(ctx context.Context, db *gorm.DB, planID, hadithID uuid.UUID) (*model.PlanHadith, error) {
	var item model.PlanHadith
	result := db.WithContext(ctx).Where("plan_id = ? AND hadith_id = ?", planID, hadithID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &item, nil
}

func (r *gormPlanRepository) Update(ctx context.Context, tx *gorm.DB, userID, planID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.MemorizationPlan{}).
		Where("plan_id = ? AND user_id = ?", planID, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPlanRepository) Delete(ctx context.Context, tx *gorm.DB, userID, planID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("plan_id = ? AND user_id = ?", planID, userID).Delete(&model.MemorizationPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	// Items are hard-deleted with the plan; they carry no history of their own.
	return tx.WithContext(ctx).Where("plan_id = ?", planID).Delete(&model.PlanHadith{}).Error
}
