package serializers

import (
	"time"

	"devforge-backend/models"

	"github.com/google/uuid"
)

type JobOpeningResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Department       string    `json:"department"`
	Location         string    `json:"location"`
	EmploymentType   string    `json:"employment_type"`
	Description      string    `json:"description"`
	Requirements     string    `json:"requirements"`
	RequirementsList []string  `json:"requirements_list"`
	SalaryRange      string    `json:"salary_range"`
	ApplyURL         string    `json:"apply_url"`
	IsActive         bool      `json:"is_active"`
	PostedAt         time.Time `json:"posted_at"`
}

func NewJobOpeningResponse(m models.JobOpening) JobOpeningResponse {
	return JobOpeningResponse{
		ID:               m.ID,
		Title:            m.Title,
		Slug:             m.Slug,
		Department:       m.Department,
		Location:         m.Location,
		EmploymentType:   m.EmploymentType,
		Description:      m.Description,
		Requirements:     m.Requirements,
		RequirementsList: SplitLines(m.Requirements),
		SalaryRange:      m.SalaryRange,
		ApplyURL:         m.ApplyURL,
		IsActive:         m.IsActive,
		PostedAt:         m.PostedAt,
	}
}

func NewJobOpeningListResponse(items []models.JobOpening) []JobOpeningResponse {
	out := make([]JobOpeningResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewJobOpeningResponse(m))
	}
	return out
}
