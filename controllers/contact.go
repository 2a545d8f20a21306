// controllers/contact.go
package controllers

import (
	"errors"
	"net/http"

	"devforge-backend/config"
	"devforge-backend/models"
	"devforge-backend/serializers"
	"devforge-backend/services"
	"devforge-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactNotifier, when set, is pinged after each persisted submission.
// Notification failures never fail the request.
var ContactNotifier *services.NotificationService

// CreateContactInput defines the public contact form payload. It carries
// no status field; submissions always start at "new".
type CreateContactInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"` // free-form text, stored as submitted
	Company     string `json:"company"`
	InquiryType string `json:"inquiry_type" binding:"omitempty,oneof=consultation quote support general"`
	Subject     string `json:"subject" binding:"required"`
	Message     string `json:"message" binding:"required"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
}

// UpdateContactInput is the admin-side payload: workflow status and notes only.
type UpdateContactInput struct {
	Status     *string `json:"status" binding:"omitempty,oneof=new in_progress responded closed"`
	AdminNotes *string `json:"admin_notes"`
}

// CreateContact accepts a public contact form submission
func CreateContact(c *gin.Context) {
	var input CreateContactInput
	if !bindJSON(c, &input) {
		return
	}

	inquiryType := input.InquiryType
	if inquiryType == "" {
		inquiryType = models.InquiryTypeGeneral
	}

	contact := models.Contact{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Company:     input.Company,
		InquiryType: inquiryType,
		Subject:     input.Subject,
		Message:     input.Message,
		Budget:      input.Budget,
		Timeline:    input.Timeline,
		Status:      models.ContactStatusNew,
	}

	if err := config.DB.Create(&contact).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	if ContactNotifier != nil {
		go ContactNotifier.NotifyNewContact(contact)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for contacting us! We will get back to you soon.",
		"data":    serializers.NewContactResponse(contact),
	})
}

// GetContacts lists all submissions, newest first
func GetContacts(c *gin.Context) {
	q := config.DB.Model(&models.Contact{}).Order("submitted_at DESC")
	q = utils.ApplyPagination(c, q)

	var contacts []models.Contact
	if err := q.Find(&contacts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve submissions")
		return
	}

	c.JSON(http.StatusOK, serializers.NewContactListResponse(contacts))
}

// UpdateContact lets an admin move a submission through the workflow
func UpdateContact(c *gin.Context) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact ID format")
		return
	}

	var input UpdateContactInput
	if !bindJSON(c, &input) {
		return
	}

	var contact models.Contact
	if err := config.DB.First(&contact, "id = ?", contactID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Contact submission not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Status != nil {
		contact.Status = *input.Status
	}
	if input.AdminNotes != nil {
		contact.AdminNotes = *input.AdminNotes
	}

	if err := config.DB.Save(&contact).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update submission")
		return
	}

	c.JSON(http.StatusOK, serializers.NewContactResponse(contact))
}
