// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"devforge-backend/config"
	"devforge-backend/models"
	"devforge-backend/serializers"
	"devforge-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var serviceOrderingFields = map[string]string{
	"order":      "display_order",
	"title":      "title",
	"created_at": "created_at",
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Title            string `json:"title" binding:"required"`
	Slug             string `json:"slug"`
	ShortDescription string `json:"short_description" binding:"required"`
	FullDescription  string `json:"full_description" binding:"required"`
	Icon             string `json:"icon" binding:"required"`
	Image            string `json:"image"`
	Technologies     string `json:"technologies" binding:"required"`
	ProcessSteps     string `json:"process_steps"`
	PricingInfo      string `json:"pricing_info"`
	MetaDescription  string `json:"meta_description"`
	Order            *int   `json:"order"`
	IsActive         *bool  `json:"is_active"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service.
// The slug is immutable and intentionally not updatable.
type UpdateServiceInput struct {
	Title            *string `json:"title"`
	ShortDescription *string `json:"short_description"`
	FullDescription  *string `json:"full_description"`
	Icon             *string `json:"icon"`
	Image            *string `json:"image"`
	Technologies     *string `json:"technologies"`
	ProcessSteps     *string `json:"process_steps"`
	PricingInfo      *string `json:"pricing_info"`
	MetaDescription  *string `json:"meta_description"`
	Order            *int    `json:"order"`
	IsActive         *bool   `json:"is_active"`
}

// GetServices retrieves all active services
func GetServices(c *gin.Context) {
	q := config.DB.Where("is_active = ?", true)
	q = utils.ApplySearch(q, c.Query("search"), "title", "short_description", "technologies")

	if clause, ok := utils.OrderingClause(c.Query("ordering"), serviceOrderingFields); ok {
		q = q.Order(clause)
	} else {
		q = q.Order("display_order ASC, title ASC")
	}
	q = utils.ApplyPagination(c, q)

	var items []models.Service
	if err := q.Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, serializers.NewServiceListResponse(items))
}

// GetService retrieves an active service by slug
func GetService(c *gin.Context) {
	var item models.Service
	if err := config.DB.Where("slug = ? AND is_active = ?", c.Param("slug"), true).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, serializers.NewServiceResponse(item))
}

// CreateService creates a new service
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if !bindJSON(c, &input) {
		return
	}

	// A caller-supplied slug is normalized too, so it can never carry
	// characters that do not belong in a URL.
	slugValue := input.Slug
	if slugValue == "" {
		slugValue = input.Title
	}
	slugValue = slug.Make(slugValue)
	if conflict := slugTaken(c, &models.Service{}, slugValue); conflict {
		return
	}

	item := models.Service{
		Title:            input.Title,
		Slug:             slugValue,
		ShortDescription: input.ShortDescription,
		FullDescription:  input.FullDescription,
		Icon:             input.Icon,
		Image:            input.Image,
		Technologies:     input.Technologies,
		ProcessSteps:     input.ProcessSteps,
		PricingInfo:      input.PricingInfo,
		MetaDescription:  input.MetaDescription,
		IsActive:         true,
	}
	if item.PricingInfo == "" {
		item.PricingInfo = "Request Quote"
	}
	if input.Order != nil {
		item.DisplayOrder = *input.Order
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, serializers.NewServiceResponse(item))
}

// UpdateService updates an existing service. The slug never changes,
// even when the title does.
func UpdateService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if !bindJSON(c, &input) {
		return
	}

	var item models.Service
	if err := config.DB.First(&item, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.ShortDescription != nil {
		item.ShortDescription = *input.ShortDescription
	}
	if input.FullDescription != nil {
		item.FullDescription = *input.FullDescription
	}
	if input.Icon != nil {
		item.Icon = *input.Icon
	}
	if input.Image != nil {
		item.Image = *input.Image
	}
	if input.Technologies != nil {
		item.Technologies = *input.Technologies
	}
	if input.ProcessSteps != nil {
		item.ProcessSteps = *input.ProcessSteps
	}
	if input.PricingInfo != nil {
		item.PricingInfo = *input.PricingInfo
	}
	if input.MetaDescription != nil {
		item.MetaDescription = *input.MetaDescription
	}
	if input.Order != nil {
		item.DisplayOrder = *input.Order
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, serializers.NewServiceResponse(item))
}

// DeleteService removes a service
func DeleteService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Delete(&models.Service{}, "id = ?", serviceID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
