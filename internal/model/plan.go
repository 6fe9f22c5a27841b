package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

type PlanStatus string

const (
	PlanActive    PlanStatus = "active"
	PlanCompleted PlanStatus = "completed"
	PlanArchived  PlanStatus = "archived"
)

// MemorizationPlan is a user's campaign to memorize a set of hadiths over a
// date range at a fixed daily pace.
type MemorizationPlan struct {
	PlanID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"plan_id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `json:"description"`
	StartDate     time.Time      `gorm:"not null" json:"-"`
	EndDate       time.Time      `gorm:"not null" json:"-"`
	HadithsPerDay int            `gorm:"not null" json:"hadiths_per_day"`
	Status        PlanStatus     `gorm:"not null;default:active" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Items []PlanHadith `gorm:"foreignKey:PlanID" json:"-"`
}

func (MemorizationPlan) TableName() string {
	return "memorization_plans"
}

// PlanHadith assigns one hadith to a calendar date within a plan.
type PlanHadith struct {
	PlanHadithID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	PlanID        uuid.UUID `gorm:"type:uuid;not null;index:idx_plan_position,unique" json:"-"`
	HadithID      uuid.UUID `gorm:"type:uuid;not null" json:"hadith_id"`
	Position      int       `gorm:"not null;index:idx_plan_position,unique" json:"position"`
	ScheduledDate time.Time `gorm:"not null;index" json:"-"`

	Hadith *Hadith `gorm:"foreignKey:HadithID;references:HadithID" json:"-"`
}

func (PlanHadith) TableName() string {
	return "plan_hadiths"
}

type CreatePlanRequest struct {
	Name          string      `json:"name" validate:"required,min=1,max=100"`
	Description   string      `json:"description" validate:"omitempty,max=500"`
	StartDate     string      `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string      `json:"end_date" validate:"required,datetime=2006-01-02"`
	HadithsPerDay int         `json:"hadiths_per_day" validate:"required,min=1"`
	HadithIDs     []uuid.UUID `json:"hadith_ids" validate:"required,min=1,dive,required"`
}

type PatchPlanRequest struct {
	Name   *string     `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Status *PlanStatus `json:"status,omitempty" validate:"omitempty,oneof=active completed archived"`
}

type PlanResponse struct {
	PlanID        uuid.UUID  `json:"plan_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date"`
	HadithsPerDay int        `json:"hadiths_per_day"`
	Status        PlanStatus `json:"status"`
	ItemCount     int        `json:"item_count"`
	CreatedAt     time.Time  `json:"created_at"`
}

type PlanItemResponse struct {
	HadithID      uuid.UUID `json:"hadith_id"`
	Position      int       `json:"position"`
	ScheduledDate string    `json:"scheduled_date"`
	Hadith        *Hadith   `json:"hadith,omitempty"`
}

type PlanDetailResponse struct {
	PlanResponse
	Items []*PlanItemResponse `json:"items"`
}

// PlanProgressResponse summarizes how far a plan has come.
type PlanProgressResponse struct {
	PlanID    uuid.UUID `json:"plan_id"`
	Total     int64     `json:"total"`
	Memorized int64     `json:"memorized"`
	Percent   float64   `json:"percent"`
}

func NewPlanResponse(p *MemorizationPlan, itemCount int) *PlanResponse {
	return &PlanResponse{
		PlanID:        p.PlanID,
		Name:          p.Name,
		Description:   p.Description,
		StartDate:     p.StartDate.Format(DateLayout),
		EndDate:       p.EndDate.Format(DateLayout),
		HadithsPerDay: p.HadithsPerDay,
		Status:        p.Status,
		ItemCount:     itemCount,
		CreatedAt:     p.CreatedAt,
	}
}
