// controllers/testimonial.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"devforge-backend/config"
	"devforge-backend/models"
	"devforge-backend/serializers"
	"devforge-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var testimonialOrderingFields = map[string]string{
	"rating":     "rating",
	"created_at": "created_at",
	"order":      "display_order",
}

const testimonialDefaultOrder = "featured DESC, display_order ASC, created_at DESC"

// CreateTestimonialInput defines the expected JSON structure for creating a testimonial
type CreateTestimonialInput struct {
	ClientName     string     `json:"client_name" binding:"required"`
	ClientPosition string     `json:"client_position" binding:"required"`
	ClientCompany  string     `json:"client_company" binding:"required"`
	ClientCountry  string     `json:"client_country"`
	ClientPhoto    string     `json:"client_photo"`
	Review         string     `json:"review" binding:"required"`
	Rating         *int       `json:"rating" binding:"omitempty,min=1,max=5"`
	Project        *uuid.UUID `json:"project"`
	VideoURL       string     `json:"video_url"`
	Source         string     `json:"source" binding:"omitempty,oneof=fiverr upwork direct other"`
	SourceURL      string     `json:"source_url"`
	Featured       *bool      `json:"featured"`
	Order          *int       `json:"order"`
	IsActive       *bool      `json:"is_active"`
}

// UpdateTestimonialInput defines the expected JSON structure for updating a testimonial
type UpdateTestimonialInput struct {
	ClientName     *string    `json:"client_name"`
	ClientPosition *string    `json:"client_position"`
	ClientCompany  *string    `json:"client_company"`
	ClientCountry  *string    `json:"client_country"`
	ClientPhoto    *string    `json:"client_photo"`
	Review         *string    `json:"review"`
	Rating         *int       `json:"rating" binding:"omitempty,min=1,max=5"`
	Project        *uuid.UUID `json:"project"`
	ClearProject   bool       `json:"clear_project"`
	VideoURL       *string    `json:"video_url"`
	Source         *string    `json:"source" binding:"omitempty,oneof=fiverr upwork direct other"`
	SourceURL      *string    `json:"source_url"`
	Featured       *bool      `json:"featured"`
	Order          *int       `json:"order"`
	IsActive       *bool      `json:"is_active"`
}

// GetTestimonials retrieves all active testimonials
func GetTestimonials(c *gin.Context) {
	q := config.DB.Preload("Project").Where("is_active = ?", true)

	if v := c.Query("rating"); v != "" {
		if rating, err := strconv.Atoi(v); err == nil {
			q = q.Where("rating = ?", rating)
		}
	}
	if v := c.Query("featured"); v != "" {
		if featured, err := strconv.ParseBool(v); err == nil {
			q = q.Where("featured = ?", featured)
		}
	}
	if source := c.Query("source"); source != "" {
		q = q.Where("source = ?", source)
	}

	if clause, ok := utils.OrderingClause(c.Query("ordering"), testimonialOrderingFields); ok {
		q = q.Order(clause)
	} else {
		q = q.Order(testimonialDefaultOrder)
	}
	q = utils.ApplyPagination(c, q)

	var items []models.Testimonial
	if err := q.Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve testimonials")
		return
	}

	c.JSON(http.StatusOK, serializers.NewTestimonialListResponse(items))
}

// GetFeaturedTestimonials retrieves the homepage subset, capped at 6
func GetFeaturedTestimonials(c *gin.Context) {
	var items []models.Testimonial
	if err := config.DB.Preload("Project").
		Where("is_active = ? AND featured = ?", true, true).
		Order(testimonialDefaultOrder).
		Limit(featuredLimit).
		Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve testimonials")
		return
	}

	c.JSON(http.StatusOK, serializers.NewTestimonialListResponse(items))
}

// GetTestimonial retrieves an active testimonial by ID
func GetTestimonial(c *gin.Context) {
	testimonialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid testimonial ID format")
		return
	}

	var item models.Testimonial
	if err := config.DB.Preload("Project").
		Where("id = ? AND is_active = ?", testimonialID, true).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Testimonial not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, serializers.NewTestimonialResponse(item))
}

// resolveProject checks that a referenced portfolio item exists, writing
// the field error when it does not.
func resolveProject(c *gin.Context, projectID uuid.UUID) bool {
	var project models.Portfolio
	if err := config.DB.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithFieldErrors(c, http.StatusBadRequest, map[string]string{
				"project": "Portfolio item not found",
			})
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return false
	}
	return true
}

// CreateTestimonial creates a new testimonial
func CreateTestimonial(c *gin.Context) {
	var input CreateTestimonialInput
	if !bindJSON(c, &input) {
		return
	}

	if input.Project != nil && !resolveProject(c, *input.Project) {
		return
	}

	item := models.Testimonial{
		ClientName:     input.ClientName,
		ClientPosition: input.ClientPosition,
		ClientCompany:  input.ClientCompany,
		ClientCountry:  input.ClientCountry,
		ClientPhoto:    input.ClientPhoto,
		Review:         input.Review,
		Rating:         5,
		ProjectID:      input.Project,
		VideoURL:       input.VideoURL,
		Source:         input.Source,
		SourceURL:      input.SourceURL,
		IsActive:       true,
	}
	if item.Source == "" {
		item.Source = models.TestimonialSourceDirect
	}
	if input.Rating != nil {
		item.Rating = *input.Rating
	}
	if input.Featured != nil {
		item.Featured = *input.Featured
	}
	if input.Order != nil {
		item.DisplayOrder = *input.Order
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create testimonial")
		return
	}

	if item.ProjectID != nil {
		config.DB.Preload("Project").First(&item, "id = ?", item.ID)
	}
	c.JSON(http.StatusCreated, serializers.NewTestimonialResponse(item))
}

// UpdateTestimonial updates an existing testimonial
func UpdateTestimonial(c *gin.Context) {
	testimonialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid testimonial ID format")
		return
	}

	var input UpdateTestimonialInput
	if !bindJSON(c, &input) {
		return
	}

	var item models.Testimonial
	if err := config.DB.First(&item, "id = ?", testimonialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Testimonial not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ClientName != nil {
		item.ClientName = *input.ClientName
	}
	if input.ClientPosition != nil {
		item.ClientPosition = *input.ClientPosition
	}
	if input.ClientCompany != nil {
		item.ClientCompany = *input.ClientCompany
	}
	if input.ClientCountry != nil {
		item.ClientCountry = *input.ClientCountry
	}
	if input.ClientPhoto != nil {
		item.ClientPhoto = *input.ClientPhoto
	}
	if input.Review != nil {
		item.Review = *input.Review
	}
	if input.Rating != nil {
		item.Rating = *input.Rating
	}
	if input.ClearProject {
		item.ProjectID = nil
		item.Project = nil
	} else if input.Project != nil {
		if !resolveProject(c, *input.Project) {
			return
		}
		item.ProjectID = input.Project
		item.Project = nil
	}
	if input.VideoURL != nil {
		item.VideoURL = *input.VideoURL
	}
	if input.Source != nil {
		item.Source = *input.Source
	}
	if input.SourceURL != nil {
		item.SourceURL = *input.SourceURL
	}
	if input.Featured != nil {
		item.Featured = *input.Featured
	}
	if input.Order != nil {
		item.DisplayOrder = *input.Order
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update testimonial")
		return
	}

	if item.ProjectID != nil {
		config.DB.Preload("Project").First(&item, "id = ?", item.ID)
	}
	c.JSON(http.StatusOK, serializers.NewTestimonialResponse(item))
}

// DeleteTestimonial removes a testimonial
func DeleteTestimonial(c *gin.Context) {
	testimonialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid testimonial ID format")
		return
	}

	result := config.DB.Delete(&models.Testimonial{}, "id = ?", testimonialID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete testimonial")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Testimonial not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}
