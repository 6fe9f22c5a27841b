package model

import (
	"time"

	"github.com/google/uuid"
)

// UserVerificationToken activates a freshly registered account.
type UserVerificationToken struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (UserVerificationToken) TableName() string {
	return "user_verification_tokens"
}

// PasswordResetToken authorizes a single password reset.
type PasswordResetToken struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
