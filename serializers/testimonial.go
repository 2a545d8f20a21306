package serializers

import (
	"time"

	"devforge-backend/models"

	"github.com/google/uuid"
)

type TestimonialResponse struct {
	ID             uuid.UUID  `json:"id"`
	ClientName     string     `json:"client_name"`
	ClientPosition string     `json:"client_position"`
	ClientCompany  string     `json:"client_company"`
	ClientCountry  string     `json:"client_country"`
	ClientPhoto    string     `json:"client_photo"`
	Review         string     `json:"review"`
	Rating         int        `json:"rating"`
	Project        *uuid.UUID `json:"project"`
	ProjectTitle   string     `json:"project_title"`
	VideoURL       string     `json:"video_url"`
	Source         string     `json:"source"`
	SourceURL      string     `json:"source_url"`
	Featured       bool       `json:"featured"`
	Order          int        `json:"order"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
}

// NewTestimonialResponse shapes a testimonial. The project title is
// denormalized from the preloaded portfolio item when one is linked.
func NewTestimonialResponse(m models.Testimonial) TestimonialResponse {
	resp := TestimonialResponse{
		ID:             m.ID,
		ClientName:     m.ClientName,
		ClientPosition: m.ClientPosition,
		ClientCompany:  m.ClientCompany,
		ClientCountry:  m.ClientCountry,
		ClientPhoto:    m.ClientPhoto,
		Review:         m.Review,
		Rating:         m.Rating,
		Project:        m.ProjectID,
		VideoURL:       m.VideoURL,
		Source:         m.Source,
		SourceURL:      m.SourceURL,
		Featured:       m.Featured,
		Order:          m.DisplayOrder,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
	if m.Project != nil {
		resp.ProjectTitle = m.Project.Title
	}
	return resp
}

func NewTestimonialListResponse(items []models.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewTestimonialResponse(m))
	}
	return out
}
