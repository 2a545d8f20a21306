package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const (
	EmploymentTypeFullTime   = "full_time"
	EmploymentTypePartTime   = "part_time"
	EmploymentTypeContract   = "contract"
	EmploymentTypeInternship = "internship"
)

type JobOpening struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Title      string    `gorm:"not null"`
	Slug       string    `gorm:"uniqueIndex;not null"`
	Department string
	Location   string

	EmploymentType string `gorm:"type:varchar(20);default:'full_time'"`
	Description    string `gorm:"type:text;not null"`
	Requirements   string `gorm:"type:text"` // one requirement per line
	SalaryRange    string
	ApplyURL       string

	IsActive bool      `gorm:"default:true"`
	PostedAt time.Time `gorm:"autoCreateTime"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (j *JobOpening) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Slug == "" {
		j.Slug = slug.Make(j.Title)
	}
	return
}
