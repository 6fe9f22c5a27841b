package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cohort is a time-boxed group enrollment batch for a memorization camp,
// sharing a start date and participant roster.
type Cohort struct {
	CohortID     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"cohort_id"`
	Name         string         `gorm:"not null" json:"name"`
	Description  string         `json:"description"`
	StartDate    time.Time      `gorm:"not null;index" json:"-"`
	DurationDays int            `gorm:"not null" json:"duration_days"`
	Capacity     int            `gorm:"not null" json:"capacity"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Enrollments []CohortEnrollment `gorm:"foreignKey:CohortID" json:"-"`
}

func (Cohort) TableName() string {
	return "cohorts"
}

// CohortEnrollment joins a user to a cohort. Unique per (cohort, user).
type CohortEnrollment struct {
	EnrollmentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"enrollment_id"`
	CohortID     uuid.UUID `gorm:"type:uuid;not null;index:idx_cohort_user,unique" json:"cohort_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_cohort_user,unique" json:"-"`
	EnrolledAt   time.Time `gorm:"not null" json:"enrolled_at"`

	Cohort *Cohort `gorm:"foreignKey:CohortID;references:CohortID" json:"-"`
}

func (CohortEnrollment) TableName() string {
	return "cohort_enrollments"
}

type CreateCohortRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Description  string `json:"description" validate:"omitempty,max=500"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	DurationDays int    `json:"duration_days" validate:"required,min=1,max=365"`
	Capacity     int    `json:"capacity" validate:"required,min=1"`
}

type CohortResponse struct {
	CohortID     uuid.UUID `json:"cohort_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StartDate    string    `json:"start_date"`
	DurationDays int       `json:"duration_days"`
	Capacity     int       `json:"capacity"`
	Enrolled     int64     `json:"enrolled"`
}

type EnrollmentResponse struct {
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	CohortID     uuid.UUID `json:"cohort_id"`
	CohortName   string    `json:"cohort_name"`
	StartDate    string    `json:"start_date"`
	EnrolledAt   time.Time `json:"enrolled_at"`
}
