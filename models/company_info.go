package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// companyInfoKey is the fixed identity of the singleton row.
const companyInfoKey = "company-info"

const (
	DefaultCompanyName = "Your Company Name"
	DefaultTagline     = "We build scalable web, mobile & AI-powered solutions"
)

type CompanyInfo struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	SingletonKey string    `gorm:"uniqueIndex;not null"`

	CompanyName string `gorm:"not null"`
	Tagline     string
	AboutShort  string `gorm:"type:text"` // short description for homepage
	AboutFull   string `gorm:"type:text"`

	Mission string `gorm:"type:text"`
	Vision  string `gorm:"type:text"`
	Values  string `gorm:"type:text"` // one value per line

	Email   string
	Phone   string
	Address string `gorm:"type:text"`

	FacebookURL  string
	TwitterURL   string
	LinkedinURL  string
	GithubURL    string
	InstagramURL string

	WhatsappNumber   string // with country code, e.g. +1234567890
	TelegramUsername string

	CalendlyURL     string
	GoogleMapsEmbed string `gorm:"type:text"`

	MetaDescription string
	MetaKeywords    string `gorm:"type:text"`

	UpdatedAt time.Time
}

// LoadCompanyInfo returns the singleton row, creating it with defaults on
// first access. The insert goes through ON CONFLICT DO NOTHING on the
// singleton key, so two concurrent first reads still end up with one row.
func LoadCompanyInfo(db *gorm.DB) (*CompanyInfo, error) {
	seed := CompanyInfo{
		ID:           uuid.New(),
		SingletonKey: companyInfoKey,
		CompanyName:  DefaultCompanyName,
		Tagline:      DefaultTagline,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "singleton_key"}},
		DoNothing: true,
	}).Create(&seed).Error; err != nil {
		return nil, err
	}

	var info CompanyInfo
	if err := db.Where("singleton_key = ?", companyInfoKey).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}
