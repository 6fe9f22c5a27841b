package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hadith is one narration with its text and authentication grade.
type Hadith struct {
	HadithID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"hadith_id"`
	Collection  string         `gorm:"not null;index:idx_collection_number,unique" json:"collection"`
	Number      int            `gorm:"not null;index:idx_collection_number,unique" json:"number"`
	ArabicText  string         `gorm:"not null" json:"arabic_text"`
	Translation string         `json:"translation"`
	Narrator    string         `json:"narrator"`
	Grade       string         `json:"grade"`
	Topic       string         `gorm:"index" json:"topic"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Hadith) TableName() string {
	return "hadiths"
}

type CreateHadithRequest struct {
	Collection  string `json:"collection" validate:"required,min=1,max=100"`
	Number      int    `json:"number" validate:"required,min=1"`
	ArabicText  string `json:"arabic_text" validate:"required"`
	Translation string `json:"translation" validate:"omitempty"`
	Narrator    string `json:"narrator" validate:"omitempty,max=200"`
	Grade       string `json:"grade" validate:"omitempty,oneof=sahih hasan daif mawdu"`
	Topic       string `json:"topic" validate:"omitempty,max=100"`
}

type UpdateHadithRequest struct {
	ArabicText  *string `json:"arabic_text,omitempty" validate:"omitempty,min=1"`
	Translation *string `json:"translation,omitempty"`
	Narrator    *string `json:"narrator,omitempty" validate:"omitempty,max=200"`
	Grade       *string `json:"grade,omitempty" validate:"omitempty,oneof=sahih hasan daif mawdu"`
	Topic       *string `json:"topic,omitempty" validate:"omitempty,max=100"`
}

// ListHadithsQuery carries paging and filter parameters.
type ListHadithsQuery struct {
	Collection string
	Page       int
	PerPage    int
}

type HadithListResponse struct {
	Hadiths []*Hadith `json:"hadiths"`
	Total   int64     `json:"total"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
}
