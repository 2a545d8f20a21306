// controllers/job_opening.go
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

// CreateJobOpeningInput defines the expected JSON structure for creating a job opening
type CreateJobOpeningInput struct {
	Title          string `json:"title" binding:"required"`
	Slug           string `json:"slug"`
	Department     string `json:"department"`
	Location       string `json:"location"`
	EmploymentType string `json:"employment_type" binding:"omitempty,oneof=full_time part_time contract internship"`
	Description    string `json:"description" binding:"required"`
	Requirements   string `json:"requirements"`
	SalaryRange    string `json:"salary_range"`
	ApplyURL       string `json:"apply_url"`
	IsActive       *bool  `json:"is_active"`
}

// UpdateJobOpeningInput defines the expected JSON structure for updating a job opening
type UpdateJobOpeningInput struct {
	Title          *string `json:"title"`
	Department     *string `json:"department"`
	Location       *string `json:"location"`
	EmploymentType *string `json:"employment_type" binding:"omitempty,oneof=full_time part_time contract internship"`
	Description    *string `json:"description"`
	Requirements   *string `json:"requirements"`
	SalaryRange    *string `json:"salary_range"`
	ApplyURL       *string `json:"apply_url"`
	IsActive       *bool   `json:"is_active"`
}

// GetJobOpenings retrieves all active job openings, newest first
func GetJobOpenings(c *gin.Context) {
	q := config.DB.Where("is_active = ?", true).Order("posted_at DESC")
	q = utils.ApplyPagination(c, q)

	var jobs []models.JobOpening
	if err := q.Find(&jobs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve job openings")
		return
	}

	c.JSON(http.StatusOK, serializers.NewJobOpeningListResponse(jobs))
}

// GetJobOpening retrieves an active job opening by slug
func GetJobOpening(c *gin.Context) {
	var job models.JobOpening
	if err := config.DB.Where("slug = ? AND is_active = ?", c.Param("slug"), true).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job opening not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, serializers.NewJobOpeningResponse(job))
}

// CreateJobOpening creates a new job opening
func CreateJobOpening(c *gin.Context) {
	var input CreateJobOpeningInput
	if !bindJSON(c, &input) {
		return
	}

	slugValue := input.Slug
	if slugValue == "" {
		slugValue = input.Title
	}
	slugValue = slug.Make(slugValue)
	if slugTaken(c, &models.JobOpening{}, slugValue) {
		return
	}

	job := models.JobOpening{
		Title:          input.Title,
		Slug:           slugValue,
		Department:     input.Department,
		Location:       input.Location,
		EmploymentType: input.EmploymentType,
		Description:    input.Description,
		Requirements:   input.Requirements,
		SalaryRange:    input.SalaryRange,
		ApplyURL:       input.ApplyURL,
		IsActive:       true,
	}
	if job.EmploymentType == "" {
		job.EmploymentType = models.EmploymentTypeFullTime
	}
	if input.IsActive != nil {
		job.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&job).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create job opening")
		return
	}

	c.JSON(http.StatusCreated, serializers.NewJobOpeningResponse(job))
}

// UpdateJobOpening updates an existing job opening
func UpdateJobOpening(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid job opening ID format")
		return
	}

	var input UpdateJobOpeningInput
	if !bindJSON(c, &input) {
		return
	}

	var job models.JobOpening
	if err := config.DB.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Job opening not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Department != nil {
		job.Department = *input.Department
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.EmploymentType != nil {
		job.EmploymentType = *input.EmploymentType
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Requirements != nil {
		job.Requirements = *input.Requirements
	}
	if input.SalaryRange != nil {
		job.SalaryRange = *input.SalaryRange
	}
	if input.ApplyURL != nil {
		job.ApplyURL = *input.ApplyURL
	}
	if input.IsActive != nil {
		job.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&job).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update job opening")
		return
	}

	c.JSON(http.StatusOK, serializers.NewJobOpeningResponse(job))
}

// DeleteJobOpening removes a job opening
func DeleteJobOpening(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid job opening ID format")
		return
	}

	result := config.DB.Delete(&models.JobOpening{}, "id = ?", jobID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete job opening")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Job opening not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job opening deleted successfully"})
}
