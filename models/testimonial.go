package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TestimonialSourceFiverr = "fiverr"
	TestimonialSourceUpwork = "upwork"
	TestimonialSourceDirect = "direct"
	TestimonialSourceOther  = "other"
)

type Testimonial struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientName     string    `gorm:"not null"`
	ClientPosition string    `gorm:"not null"` // e.g. CEO, Founder
	ClientCompany  string    `gorm:"not null"`
	ClientCountry  string
	ClientPhoto    string

	Review string `gorm:"type:text;not null"`
	Rating int    `gorm:"default:5"` // 1-5

	// Optional link to the portfolio item the review is about. Cleared,
	// not cascaded, when the portfolio item is deleted.
	ProjectID *uuid.UUID `gorm:"type:uuid;index"`
	Project   *Portfolio `gorm:"foreignKey:ProjectID"`

	VideoURL  string
	Source    string `gorm:"type:varchar(20);default:'direct'"`
	SourceURL string

	Featured     bool `gorm:"default:false"` // show on homepage
	DisplayOrder int  `gorm:"default:0"`
	IsActive     bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
