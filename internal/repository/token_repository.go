package repository

import (
	"context"
	"errors"

	"hifz_keep/internal/model"

	"gorm.io/gorm"
)

type TokenRepository interface {
	CreateVerificationToken(ctx context.Context, tx *gorm.DB, token *model.UserVerificationToken) error
	FindVerificationToken(ctx context.Context, db *gorm.DB, token string) (*model.UserVerificationToken, error)
	DeleteVerificationToken(ctx context.Context, tx *gorm.DB, token string) error
	CreatePasswordResetToken(ctx context.Context, tx *gorm.DB, token *model.PasswordResetToken) error
	FindPasswordResetToken(ctx context.Context, db *gorm.DB, token string) (*model.PasswordResetToken, error)
	DeletePasswordResetToken(ctx context.Context, tx *gorm.DB, token string) error
}

type gormTokenRepository struct{}

func NewGormTokenRepository() TokenRepository {
	return &gormTokenRepository{}
}

func (r *gormTokenRepository) CreateVerificationToken(ctx context.Context, tx *gorm.DB, token *model.UserVerificationToken) error {
	return tx.WithContext(ctx).Create(token).Error
}

func (r *gormTokenRepository) FindVerificationToken(ctx context.Context, db *gorm.DB, token string) (*model.UserVerificationToken, error) {
	var t model.UserVerificationToken
	result := db.WithContext(ctx).Where("token = ?", token).First(&t)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &t, nil
}

func (r *gormTokenRepository) DeleteVerificationToken(ctx context.Context, tx *gorm.DB, token string) error {
	return tx.WithContext(ctx).Where("token = ?", token).Delete(&model.UserVerificationToken{}).Error
}

func (r *gormTokenRepository) CreatePasswordResetToken(ctx context.Context, tx *gorm.DB, token *model.PasswordResetToken) error {
	return tx.WithContext(ctx).Create(token).Error
}

func (r *gormTokenRepository) FindPasswordResetToken(ctx context.Context, db *gorm.DB, token string) (*model.PasswordResetToken, error) {
	var t model.PasswordResetToken
	result := db.WithContext(ctx).Where("token = ?", token).First(&t)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &t, nil
}

func (r *gormTokenRepository) DeletePasswordResetToken(ctx context.Context, tx *gorm.DB, token string) error {
	return tx.WithContext(ctx).Where("token = ?", token).Delete(&model.PasswordResetToken{}).Error
}
