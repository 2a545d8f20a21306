package serializers

import (
	"time"

	"devforge-backend/models"

	"github.com/google/uuid"
)

type ContactResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company"`
	InquiryType string    `json:"inquiry_type"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Budget      string    `json:"budget"`
	Timeline    string    `json:"timeline"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func NewContactResponse(m models.Contact) ContactResponse {
	return ContactResponse{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Company:     m.Company,
		InquiryType: m.InquiryType,
		Subject:     m.Subject,
		Message:     m.Message,
		Budget:      m.Budget,
		Timeline:    m.Timeline,
		Status:      m.Status,
		SubmittedAt: m.SubmittedAt,
	}
}

func NewContactListResponse(items []models.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewContactResponse(m))
	}
	return out
}
