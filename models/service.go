package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Service struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	Title            string    `gorm:"not null"`
	Slug             string    `gorm:"uniqueIndex;not null"`
	ShortDescription string    `gorm:"type:text;not null"`
	FullDescription  string    `gorm:"type:text;not null"`
	Icon             string    `gorm:"not null"` // icon class name, e.g. "fas fa-laptop-code"
	Image            string
	Technologies     string `gorm:"type:text;not null"` // comma-separated
	ProcessSteps     string `gorm:"type:text"`          // one step per line
	PricingInfo      string `gorm:"default:'Request Quote'"`
	MetaDescription  string
	DisplayOrder     int  `gorm:"default:0"`
	IsActive         bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Derive the slug from the title when none was supplied. The slug is
// never regenerated afterwards, so renaming a service keeps its URL.
func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Slug == "" {
		s.Slug = slug.Make(s.Title)
	}
	return
}
