package serializers

import (
	"time"

	"devforge-backend/models"

	"github.com/google/uuid"
)

type BlogPostResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	CoverImage  string     `json:"cover_image"`
	Author      string     `json:"author"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewBlogPostResponse(m models.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Excerpt:     m.Excerpt,
		Content:     m.Content,
		Category:    m.Category,
		CoverImage:  m.CoverImage,
		Author:      m.Author,
		IsPublished: m.IsPublished,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func NewBlogPostListResponse(items []models.BlogPost) []BlogPostResponse {
	out := make([]BlogPostResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewBlogPostResponse(m))
	}
	return out
}
