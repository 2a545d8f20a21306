package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type BlogPost struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Title      string    `gorm:"not null"`
	Slug       string    `gorm:"uniqueIndex;not null"`
	Excerpt    string    `gorm:"type:text;not null"`
	Content    string    `gorm:"type:text;not null"`
	Category   string
	CoverImage string
	Author     string

	IsPublished bool `gorm:"default:false"`
	// Set the first time the post is published, then left untouched.
	PublishedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	return
}
