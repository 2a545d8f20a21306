package serializers

import (
	"devforge-backend/models"

	"github.com/google/uuid"
)

type CompanyInfoResponse struct {
	ID               uuid.UUID `json:"id"`
	CompanyName      string    `json:"company_name"`
	Tagline          string    `json:"tagline"`
	AboutShort       string    `json:"about_short"`
	AboutFull        string    `json:"about_full"`
	Mission          string    `json:"mission"`
	Vision           string    `json:"vision"`
	Values           string    `json:"values"`
	ValuesList       []string  `json:"values_list"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	FacebookURL      string    `json:"facebook_url"`
	TwitterURL       string    `json:"twitter_url"`
	LinkedinURL      string    `json:"linkedin_url"`
	GithubURL        string    `json:"github_url"`
	InstagramURL     string    `json:"instagram_url"`
	WhatsappNumber   string    `json:"whatsapp_number"`
	TelegramUsername string    `json:"telegram_username"`
	CalendlyURL      string    `json:"calendly_url"`
	GoogleMapsEmbed  string    `json:"google_maps_embed"`
	MetaDescription  string    `json:"meta_description"`
	MetaKeywords     string    `json:"meta_keywords"`
}

func NewCompanyInfoResponse(m models.CompanyInfo) CompanyInfoResponse {
	return CompanyInfoResponse{
		ID:               m.ID,
		CompanyName:      m.CompanyName,
		Tagline:          m.Tagline,
		AboutShort:       m.AboutShort,
		AboutFull:        m.AboutFull,
		Mission:          m.Mission,
		Vision:           m.Vision,
		Values:           m.Values,
		ValuesList:       SplitLines(m.Values),
		Email:            m.Email,
		Phone:            m.Phone,
		Address:          m.Address,
		FacebookURL:      m.FacebookURL,
		TwitterURL:       m.TwitterURL,
		LinkedinURL:      m.LinkedinURL,
		GithubURL:        m.GithubURL,
		InstagramURL:     m.InstagramURL,
		WhatsappNumber:   m.WhatsappNumber,
		TelegramUsername: m.TelegramUsername,
		CalendlyURL:      m.CalendlyURL,
		GoogleMapsEmbed:  m.GoogleMapsEmbed,
		MetaDescription:  m.MetaDescription,
		MetaKeywords:     m.MetaKeywords,
	}
}
