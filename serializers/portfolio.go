package serializers

import (
	"time"

	"devforge-backend/models"

	"github.com/google/uuid"
)

// PortfolioResponse is the detail shape, embedding the item's active
// testimonials.
type PortfolioResponse struct {
	ID               uuid.UUID             `json:"id"`
	Title            string                `json:"title"`
	Slug             string                `json:"slug"`
	ClientName       string                `json:"client_name"`
	ClientCompany    string                `json:"client_company"`
	ShortDescription string                `json:"short_description"`
	Challenge        string                `json:"challenge"`
	Solution         string                `json:"solution"`
	Result           string                `json:"result"`
	Thumbnail        string                `json:"thumbnail"`
	Image1           string                `json:"image1"`
	Image2           string                `json:"image2"`
	Image3           string                `json:"image3"`
	Technologies     string                `json:"technologies"`
	TechnologiesList []string              `json:"technologies_list"`
	LiveURL          string                `json:"live_url"`
	GithubURL        string                `json:"github_url"`
	Status           string                `json:"status"`
	ProjectDate      string                `json:"project_date"`
	Featured         bool                  `json:"featured"`
	Order            int                   `json:"order"`
	IsActive         bool                  `json:"is_active"`
	Testimonials     []TestimonialResponse `json:"testimonials"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// PortfolioListResponse is the reduced shape for list views: no
// case-study body, no extra images, no embedded testimonials.
type PortfolioListResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ClientCompany    string    `json:"client_company"`
	ShortDescription string    `json:"short_description"`
	Thumbnail        string    `json:"thumbnail"`
	Technologies     string    `json:"technologies"`
	TechnologiesList []string  `json:"technologies_list"`
	LiveURL          string    `json:"live_url"`
	Status           string    `json:"status"`
	ProjectDate      string    `json:"project_date"`
	Featured         bool      `json:"featured"`
}

const projectDateLayout = "2006-01-02"

func NewPortfolioResponse(m models.Portfolio) PortfolioResponse {
	testimonials := make([]TestimonialResponse, 0, len(m.Testimonials))
	for _, t := range m.Testimonials {
		tr := NewTestimonialResponse(t)
		if tr.ProjectTitle == "" {
			tr.ProjectTitle = m.Title
		}
		testimonials = append(testimonials, tr)
	}

	return PortfolioResponse{
		ID:               m.ID,
		Title:            m.Title,
		Slug:             m.Slug,
		ClientName:       m.ClientName,
		ClientCompany:    m.ClientCompany,
		ShortDescription: m.ShortDescription,
		Challenge:        m.Challenge,
		Solution:         m.Solution,
		Result:           m.Result,
		Thumbnail:        m.Thumbnail,
		Image1:           m.Image1,
		Image2:           m.Image2,
		Image3:           m.Image3,
		Technologies:     m.Technologies,
		TechnologiesList: SplitCSV(m.Technologies),
		LiveURL:          m.LiveURL,
		GithubURL:        m.GithubURL,
		Status:           m.Status,
		ProjectDate:      m.ProjectDate.Format(projectDateLayout),
		Featured:         m.Featured,
		Order:            m.DisplayOrder,
		IsActive:         m.IsActive,
		Testimonials:     testimonials,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func NewPortfolioListItem(m models.Portfolio) PortfolioListResponse {
	return PortfolioListResponse{
		ID:               m.ID,
		Title:            m.Title,
		Slug:             m.Slug,
		ClientCompany:    m.ClientCompany,
		ShortDescription: m.ShortDescription,
		Thumbnail:        m.Thumbnail,
		Technologies:     m.Technologies,
		TechnologiesList: SplitCSV(m.Technologies),
		LiveURL:          m.LiveURL,
		Status:           m.Status,
		ProjectDate:      m.ProjectDate.Format(projectDateLayout),
		Featured:         m.Featured,
	}
}

func NewPortfolioListResponse(items []models.Portfolio) []PortfolioListResponse {
	out := make([]PortfolioListResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewPortfolioListItem(m))
	}
	return out
}
