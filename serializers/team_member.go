package serializers

import (
	"devforge-backend/models"

	"github.com/google/uuid"
)

type TeamMemberResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	Bio         string    `json:"bio"`
	Photo       string    `json:"photo"`
	LinkedinURL string    `json:"linkedin_url"`
	GithubURL   string    `json:"github_url"`
	TwitterURL  string    `json:"twitter_url"`
	Skills      string    `json:"skills"`
	SkillsList  []string  `json:"skills_list"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"is_active"`
}

func NewTeamMemberResponse(m models.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:          m.ID,
		Name:        m.Name,
		Position:    m.Position,
		Bio:         m.Bio,
		Photo:       m.Photo,
		LinkedinURL: m.LinkedinURL,
		GithubURL:   m.GithubURL,
		TwitterURL:  m.TwitterURL,
		Skills:      m.Skills,
		SkillsList:  SplitCSV(m.Skills),
		Order:       m.DisplayOrder,
		IsActive:    m.IsActive,
	}
}

func NewTeamMemberListResponse(items []models.TeamMember) []TeamMemberResponse {
	out := make([]TeamMemberResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewTeamMemberResponse(m))
	}
	return out
}
