package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Name     string    `gorm:"not null"`
	Position string    `gorm:"not null"`
	Bio      string    `gorm:"type:text"`
	Photo    string    `gorm:"not null"`

	LinkedinURL string
	GithubURL   string
	TwitterURL  string

	Skills string `gorm:"type:text"` // comma-separated

	DisplayOrder int  `gorm:"default:0"`
	IsActive     bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
