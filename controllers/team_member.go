// controllers/team_member.go
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
	"gorm.io/gorm"
)

// CreateTeamMemberInput defines the expected JSON structure for creating a team member
type CreateTeamMemberInput struct {
	Name        string `json:"name" binding:"required"`
	Position    string `json:"position" binding:"required"`
	Bio         string `json:"bio"`
	Photo       string `json:"photo" binding:"required"`
	LinkedinURL string `json:"linkedin_url"`
	GithubURL   string `json:"github_url"`
	TwitterURL  string `json:"twitter_url"`
	Skills      string `json:"skills"`
	Order       *int   `json:"order"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateTeamMemberInput defines the expected JSON structure for updating a team member
type UpdateTeamMemberInput struct {
	Name        *string `json:"name"`
	Position    *string `json:"position"`
	Bio         *string `json:"bio"`
	Photo       *string `json:"photo"`
	LinkedinURL *string `json:"linkedin_url"`
	GithubURL   *string `json:"github_url"`
	TwitterURL  *string `json:"twitter_url"`
	Skills      *string `json:"skills"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"is_active"`
}

// GetTeamMembers retrieves all active team members
func GetTeamMembers(c *gin.Context) {
	q := config.DB.Where("is_active = ?", true).Order("display_order ASC, name ASC")
	q = utils.ApplyPagination(c, q)

	var members []models.TeamMember
	if err := q.Find(&members).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve team members")
		return
	}

	c.JSON(http.StatusOK, serializers.NewTeamMemberListResponse(members))
}

// GetTeamMember retrieves an active team member by ID
func GetTeamMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid team member ID format")
		return
	}

	var member models.TeamMember
	if err := config.DB.Where("id = ? AND is_active = ?", memberID, true).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, serializers.NewTeamMemberResponse(member))
}

// CreateTeamMember creates a new team member
func CreateTeamMember(c *gin.Context) {
	var input CreateTeamMemberInput
	if !bindJSON(c, &input) {
		return
	}

	member := models.TeamMember{
		Name:        input.Name,
		Position:    input.Position,
		Bio:         input.Bio,
		Photo:       input.Photo,
		LinkedinURL: input.LinkedinURL,
		GithubURL:   input.GithubURL,
		TwitterURL:  input.TwitterURL,
		Skills:      input.Skills,
		IsActive:    true,
	}
	if input.Order != nil {
		member.DisplayOrder = *input.Order
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create team member")
		return
	}

	c.JSON(http.StatusCreated, serializers.NewTeamMemberResponse(member))
}

// UpdateTeamMember updates an existing team member
func UpdateTeamMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid team member ID format")
		return
	}

	var input UpdateTeamMemberInput
	if !bindJSON(c, &input) {
		return
	}

	var member models.TeamMember
	if err := config.DB.First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Position != nil {
		member.Position = *input.Position
	}
	if input.Bio != nil {
		member.Bio = *input.Bio
	}
	if input.Photo != nil {
		member.Photo = *input.Photo
	}
	if input.LinkedinURL != nil {
		member.LinkedinURL = *input.LinkedinURL
	}
	if input.GithubURL != nil {
		member.GithubURL = *input.GithubURL
	}
	if input.TwitterURL != nil {
		member.TwitterURL = *input.TwitterURL
	}
	if input.Skills != nil {
		member.Skills = *input.Skills
	}
	if input.Order != nil {
		member.DisplayOrder = *input.Order
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update team member")
		return
	}

	c.JSON(http.StatusOK, serializers.NewTeamMemberResponse(member))
}

// DeleteTeamMember removes a team member
func DeleteTeamMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid team member ID format")
		return
	}

	result := config.DB.Delete(&models.TeamMember{}, "id = ?", memberID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete team member")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Team member not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
}
