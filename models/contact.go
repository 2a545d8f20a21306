package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InquiryTypeConsultation = "consultation"
	InquiryTypeQuote        = "quote"
	InquiryTypeSupport      = "support"
	InquiryTypeGeneral      = "general"
)

const (
	ContactStatusNew        = "new"
	ContactStatusInProgress = "in_progress"
	ContactStatusResponded  = "responded"
	ContactStatusClosed     = "closed"
)

type Contact struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Name    string    `gorm:"not null"`
	Email   string    `gorm:"not null"`
	Phone   string
	Company string

	InquiryType string `gorm:"type:varchar(20);default:'general'"`
	Subject     string `gorm:"not null"`
	Message     string `gorm:"type:text;not null"`

	Budget   string
	Timeline string

	// Workflow status, managed by admins only. Submitters always start at "new".
	Status string `gorm:"type:varchar(20);default:'new'"`

	SubmittedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time

	AdminNotes string `gorm:"type:text"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
