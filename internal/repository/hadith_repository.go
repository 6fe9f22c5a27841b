package repository

import (
	"context"
	"errors"

	"hifz_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HadithRepository interface {
	Create(ctx context.Context, tx *gorm.DB, hadith *model.Hadith) error
	FindByID(ctx context.Context, db *gorm.DB, hadithID uuid.UUID) (*model.Hadith, error)
	FindByIDs(ctx context.Context, db *gorm.DB, hadithIDs []uuid.UUID) ([]*model.Hadith, error)
	List(ctx context.Context, db *gorm.DB, q model.ListHadithsQuery) ([]*model.Hadith, int64, error)
	Update(ctx context.Context, tx *gorm.DB, hadithID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, hadithID uuid.UUID) error
	CheckDuplicate(ctx context.Context, db *gorm.DB, collection string, number int) (bool, error)
}

type gormHadithRepository struct{}

func NewGormHadithRepository() HadithRepository {
	return &gormHadithRepository{}
}

func (r *gormHadithRepository) Create(ctx context.Context, tx *gorm.DB, hadith *model.Hadith) error {
	result := tx.WithContext(ctx).Create(hadith)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormHadithRepository) FindByID(ctx context.Context, db *gorm.DB, hadithID uuid.UUID) (*model.Hadith, error) {
	var hadith model.Hadith
	result := db.WithContext(ctx).Where("hadith_id = ?", hadithID).First(&hadith)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &hadith, nil
}

func (r *gormHadithRepository) FindByIDs(ctx context.Context, db *gorm.DB, hadithIDs []uuid.UUID) ([]*model.Hadith, error) {
	var hadiths []*model.Hadith
	result := db.WithContext(ctx).Where("hadith_id IN ?", hadithIDs).Find(&hadiths)
	if result.Error != nil {
		return nil, result.Error
	}
	return hadiths, nil
}

func (r *gormHadithRepository) List(ctx context.Context, db *gorm.DB, q model.ListHadithsQuery) ([]*model.Hadith, int64, error) {
	query := db.WithContext(ctx).Model(&model.Hadith{})
	if q.Collection != "" {
		query = query.Where("collection = ?", q.Collection)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hadiths []*model.Hadith
	offset := (q.Page - 1) * q.PerPage
	result := query.
		Order("collection ASC, number ASC").
		Offset(offset).
		Limit(q.PerPage).
		Find(&hadiths)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return hadiths, total, nil
}

func (r *gormHadithRepository) Update(ctx context.Context, tx *gorm.DB, hadithID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.Hadith{}).Where("hadith_id = ?", hadithID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormHadithRepository) Delete(ctx context.Context, tx *gorm.DB, hadithID uuid.UUID) error {
	result := tx.WithContext(ctx).Where("hadith_id = ?", hadithID).Delete(&model.Hadith{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormHadithRepository) CheckDuplicate(ctx context.Context, db *gorm.DB, collection string, number int) (bool, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Hadith{}).
		Where("collection = ? AND number = ?", collection, number).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
