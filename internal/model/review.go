package model

import (
	"time"

	"github.com/google/uuid"
)

type ReviewType string

const (
	ReviewShort  ReviewType = "short"
	ReviewMedium ReviewType = "medium"
	ReviewLong   ReviewType = "long"
)

type ReviewStatus string

const (
	ReviewPending   ReviewStatus = "pending"
	ReviewCompleted ReviewStatus = "completed"
)

// ReviewEntry is a scheduled future obligation to re-study a memorized
// hadith. Three are created per memorize event at fixed offsets.
type ReviewEntry struct {
	ReviewID     uuid.UUID    `gorm:"type:uuid;primaryKey" json:"review_id"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"-"`
	PlanID       uuid.UUID    `gorm:"type:uuid;not null;index" json:"plan_id"`
	HadithID     uuid.UUID    `gorm:"type:uuid;not null" json:"hadith_id"`
	ReviewType   ReviewType   `gorm:"not null" json:"review_type"`
	ScheduledFor time.Time    `gorm:"not null;index" json:"-"`
	Status       ReviewStatus `gorm:"not null;default:pending;index" json:"status"`
	ReviewedAt   *time.Time   `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`

	Hadith *Hadith `gorm:"foreignKey:HadithID;references:HadithID" json:"-"`
}

func (ReviewEntry) TableName() string {
	return "review_schedule"
}

type DueReviewResponse struct {
	ReviewID     uuid.UUID  `json:"review_id"`
	HadithID     uuid.UUID  `json:"hadith_id"`
	PlanID       uuid.UUID  `json:"plan_id"`
	ReviewType   ReviewType `json:"review_type"`
	ScheduledFor string     `json:"scheduled_for"`
	ArabicText   string     `json:"arabic_text"`
	Translation  string     `json:"translation"`
	Collection   string     `json:"collection"`
	Number       int        `json:"number"`
}
