package model

import (
	"time"

	"github.com/google/uuid"
)

// Streak holds one row per user: the running consecutive-day count, the
// longest-ever count, and the date activity was last recorded.
// Longest never decreases.
type Streak struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Current          int       `gorm:"not null;default:0" json:"current"`
	Longest          int       `gorm:"not null;default:0" json:"longest"`
	LastActivityDate time.Time `gorm:"not null" json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

func (Streak) TableName() string {
	return "memorization_streaks"
}

type StreakResponse struct {
	Current          int    `json:"current"`
	Longest          int    `json:"longest"`
	LastActivityDate string `json:"last_activity_date"`
}

func NewStreakResponse(s *Streak) *StreakResponse {
	return &StreakResponse{
		Current:          s.Current,
		Longest:          s.Longest,
		LastActivityDate: s.LastActivityDate.Format(DateLayout),
	}
}
