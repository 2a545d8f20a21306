package serializers

import (
	"time"

	"devforge-backend/models"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description"`
	FullDescription  string    `json:"full_description"`
	Icon             string    `json:"icon"`
	Image            string    `json:"image"`
	Technologies     string    `json:"technologies"`
	TechnologiesList []string  `json:"technologies_list"`
	ProcessSteps     string    `json:"process_steps"`
	ProcessStepsList []string  `json:"process_steps_list"`
	PricingInfo      string    `json:"pricing_info"`
	MetaDescription  string    `json:"meta_description"`
	Order            int       `json:"order"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewServiceResponse(m models.Service) ServiceResponse {
	return ServiceResponse{
		ID:               m.ID,
		Title:            m.Title,
		Slug:             m.Slug,
		ShortDescription: m.ShortDescription,
		FullDescription:  m.FullDescription,
		Icon:             m.Icon,
		Image:            m.Image,
		Technologies:     m.Technologies,
		TechnologiesList: SplitCSV(m.Technologies),
		ProcessSteps:     m.ProcessSteps,
		ProcessStepsList: SplitLines(m.ProcessSteps),
		PricingInfo:      m.PricingInfo,
		MetaDescription:  m.MetaDescription,
		Order:            m.DisplayOrder,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func NewServiceListResponse(items []models.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewServiceResponse(m))
	}
	return out
}
