package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const (
	ProjectStatusCompleted   = "completed"
	ProjectStatusOngoing     = "ongoing"
	ProjectStatusMaintenance = "maintenance"
)

type Portfolio struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key"`
	Title            string    `gorm:"not null"`
	Slug             string    `gorm:"uniqueIndex;not null"`
	ClientName       string
	ClientCompany    string
	ShortDescription string `gorm:"type:text;not null"`
	Challenge        string `gorm:"type:text;not null"` // problem the client faced
	Solution         string `gorm:"type:text;not null"`
	Result           string `gorm:"type:text;not null"`

	Thumbnail string `gorm:"not null"`
	Image1    string
	Image2    string
	Image3    string

	Technologies string `gorm:"type:text;not null"` // comma-separated
	LiveURL      string
	GithubURL    string

	Status      string    `gorm:"type:varchar(20);default:'completed'"`
	ProjectDate time.Time `gorm:"not null"`

	Featured     bool `gorm:"default:false"` // show on homepage
	DisplayOrder int  `gorm:"default:0"`
	IsActive     bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Testimonials []Testimonial `gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
}

func (p *Portfolio) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	return
}
