package model

import (
	"time"

	"github.com/google/uuid"
)

type ProgressStatus string

const (
	ProgressNew       ProgressStatus = "new"
	ProgressMemorized ProgressStatus = "memorized"
	ProgressReviewed  ProgressStatus = "reviewed"
)

// MemorizationProgress marks a user's completion state for one hadith within
// a plan. One row per (user, hadith, plan); memorize upserts in place.
type MemorizationProgress struct {
	ProgressID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"progress_id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_user_hadith_plan,unique" json:"-"`
	HadithID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_user_hadith_plan,unique" json:"hadith_id"`
	PlanID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_user_hadith_plan,unique" json:"plan_id"`
	Status     ProgressStatus `gorm:"not null;default:new" json:"status"`
	Confidence int            `gorm:"not null;default:0" json:"confidence"`
	Note       string         `json:"note"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	Hadith *Hadith `gorm:"foreignKey:HadithID;references:HadithID" json:"-"`
}

func (MemorizationProgress) TableName() string {
	return "memorization_progress"
}

type MemorizeRequest struct {
	Confidence int    `json:"confidence" validate:"required,min=1,max=5"`
	Note       string `json:"note" validate:"omitempty,max=1000"`
}

type MemorizeResponse struct {
	ProgressID    uuid.UUID      `json:"progress_id"`
	Status        ProgressStatus `json:"status"`
	Confidence    int            `json:"confidence"`
	ReviewsQueued int            `json:"reviews_queued"`
}
