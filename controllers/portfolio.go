// controllers/portfolio.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"devforge-backend/config"
	"devforge-backend/models"
	"devforge-backend/serializers"
	"devforge-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const projectDateLayout = "2006-01-02"

var portfolioOrderingFields = map[string]string{
	"project_date": "project_date",
	"order":        "display_order",
}

// portfolioDefaultOrder puts featured items first, then the operator's
// manual ordering, then the most recent projects.
const portfolioDefaultOrder = "featured DESC, display_order ASC, project_date DESC"

// CreatePortfolioInput defines the expected JSON structure for creating a portfolio item
type CreatePortfolioInput struct {
	Title            string `json:"title" binding:"required"`
	Slug             string `json:"slug"`
	ClientName       string `json:"client_name"`
	ClientCompany    string `json:"client_company"`
	ShortDescription string `json:"short_description" binding:"required"`
	Challenge        string `json:"challenge" binding:"required"`
	Solution         string `json:"solution" binding:"required"`
	Result           string `json:"result" binding:"required"`
	Thumbnail        string `json:"thumbnail" binding:"required"`
	Image1           string `json:"image1"`
	Image2           string `json:"image2"`
	Image3           string `json:"image3"`
	Technologies     string `json:"technologies" binding:"required"`
	LiveURL          string `json:"live_url"`
	GithubURL        string `json:"github_url"`
	Status           string `json:"status" binding:"omitempty,oneof=completed ongoing maintenance"`
	ProjectDate      string `json:"project_date" binding:"required,datetime=2006-01-02"`
	Featured         *bool  `json:"featured"`
	Order            *int   `json:"order"`
	IsActive         *bool  `json:"is_active"`
}

// UpdatePortfolioInput defines the expected JSON structure for updating a
// portfolio item. The slug is immutable.
type UpdatePortfolioInput struct {
	Title            *string `json:"title"`
	ClientName       *string `json:"client_name"`
	ClientCompany    *string `json:"client_company"`
	ShortDescription *string `json:"short_description"`
	Challenge        *string `json:"challenge"`
	Solution         *string `json:"solution"`
	Result           *string `json:"result"`
	Thumbnail        *string `json:"thumbnail"`
	Image1           *string `json:"image1"`
	Image2           *string `json:"image2"`
	Image3           *string `json:"image3"`
	Technologies     *string `json:"technologies"`
	LiveURL          *string `json:"live_url"`
	GithubURL        *string `json:"github_url"`
	Status           *string `json:"status" binding:"omitempty,oneof=completed ongoing maintenance"`
	ProjectDate      *string `json:"project_date" binding:"omitempty,datetime=2006-01-02"`
	Featured         *bool   `json:"featured"`
	Order            *int    `json:"order"`
	IsActive         *bool   `json:"is_active"`
}

func activePortfolioQuery(c *gin.Context) *gorm.DB {
	q := config.DB.Where("is_active = ?", true)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if v := c.Query("featured"); v != "" {
		if featured, err := strconv.ParseBool(v); err == nil {
			q = q.Where("featured = ?", featured)
		}
	}

	return utils.ApplySearch(q, c.Query("search"),
		"title", "client_company", "technologies", "short_description")
}

// GetPortfolioItems retrieves all active portfolio items in the reduced
// list shape
func GetPortfolioItems(c *gin.Context) {
	q := activePortfolioQuery(c)

	if clause, ok := utils.OrderingClause(c.Query("ordering"), portfolioOrderingFields); ok {
		q = q.Order(clause)
	} else {
		q = q.Order(portfolioDefaultOrder)
	}
	q = utils.ApplyPagination(c, q)

	var items []models.Portfolio
	if err := q.Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve portfolio items")
		return
	}

	c.JSON(http.StatusOK, serializers.NewPortfolioListResponse(items))
}

// GetFeaturedPortfolio retrieves the homepage subset: featured items in
// default order, capped at 6
func GetFeaturedPortfolio(c *gin.Context) {
	var items []models.Portfolio
	if err := config.DB.
		Where("is_active = ? AND featured = ?", true, true).
		Order(portfolioDefaultOrder).
		Limit(featuredLimit).
		Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve portfolio items")
		return
	}

	c.JSON(http.StatusOK, serializers.NewPortfolioListResponse(items))
}

// GetPortfolioItem retrieves an active portfolio item by slug, with its
// active testimonials embedded
func GetPortfolioItem(c *gin.Context) {
	var item models.Portfolio
	err := config.DB.
		Preload("Testimonials", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).
				Order("featured DESC, display_order ASC, created_at DESC")
		}).
		Where("slug = ? AND is_active = ?", c.Param("slug"), true).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Portfolio item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, serializers.NewPortfolioResponse(item))
}

// CreatePortfolioItem creates a new portfolio item
func CreatePortfolioItem(c *gin.Context) {
	var input CreatePortfolioInput
	if !bindJSON(c, &input) {
		return
	}

	projectDate, err := time.Parse(projectDateLayout, input.ProjectDate)
	if err != nil {
		utils.RespondWithFieldErrors(c, http.StatusBadRequest, map[string]string{
			"project_date": "Date must be in " + projectDateLayout + " format",
		})
		return
	}

	slugValue := input.Slug
	if slugValue == "" {
		slugValue = input.Title
	}
	slugValue = slug.Make(slugValue)
	if slugTaken(c, &models.Portfolio{}, slugValue) {
		return
	}

	item := models.Portfolio{
		Title:            input.Title,
		Slug:             slugValue,
		ClientName:       input.ClientName,
		ClientCompany:    input.ClientCompany,
		ShortDescription: input.ShortDescription,
		Challenge:        input.Challenge,
		Solution:         input.Solution,
		Result:           input.Result,
		Thumbnail:        input.Thumbnail,
		Image1:           input.Image1,
		Image2:           input.Image2,
		Image3:           input.Image3,
		Technologies:     input.Technologies,
		LiveURL:          input.LiveURL,
		GithubURL:        input.GithubURL,
		Status:           input.Status,
		ProjectDate:      projectDate,
		IsActive:         true,
	}
	if item.Status == "" {
		item.Status = models.ProjectStatusCompleted
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
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create portfolio item")
		return
	}

	c.JSON(http.StatusCreated, serializers.NewPortfolioResponse(item))
}

// UpdatePortfolioItem updates an existing portfolio item
func UpdatePortfolioItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid portfolio ID format")
		return
	}

	var input UpdatePortfolioInput
	if !bindJSON(c, &input) {
		return
	}

	var item models.Portfolio
	if err := config.DB.First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Portfolio item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.ClientName != nil {
		item.ClientName = *input.ClientName
	}
	if input.ClientCompany != nil {
		item.ClientCompany = *input.ClientCompany
	}
	if input.ShortDescription != nil {
		item.ShortDescription = *input.ShortDescription
	}
	if input.Challenge != nil {
		item.Challenge = *input.Challenge
	}
	if input.Solution != nil {
		item.Solution = *input.Solution
	}
	if input.Result != nil {
		item.Result = *input.Result
	}
	if input.Thumbnail != nil {
		item.Thumbnail = *input.Thumbnail
	}
	if input.Image1 != nil {
		item.Image1 = *input.Image1
	}
	if input.Image2 != nil {
		item.Image2 = *input.Image2
	}
	if input.Image3 != nil {
		item.Image3 = *input.Image3
	}
	if input.Technologies != nil {
		item.Technologies = *input.Technologies
	}
	if input.LiveURL != nil {
		item.LiveURL = *input.LiveURL
	}
	if input.GithubURL != nil {
		item.GithubURL = *input.GithubURL
	}
	if input.Status != nil {
		item.Status = *input.Status
	}
	if input.ProjectDate != nil {
		projectDate, err := time.Parse(projectDateLayout, *input.ProjectDate)
		if err != nil {
			utils.RespondWithFieldErrors(c, http.StatusBadRequest, map[string]string{
				"project_date": "Date must be in " + projectDateLayout + " format",
			})
			return
		}
		item.ProjectDate = projectDate
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
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update portfolio item")
		return
	}

	c.JSON(http.StatusOK, serializers.NewPortfolioResponse(item))
}

// DeletePortfolioItem removes a portfolio item. Testimonials that point
// at it keep their data; the reference is cleared, not cascaded.
func DeletePortfolioItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid portfolio ID format")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Testimonial{}).
			Where("project_id = ?", itemID).
			Update("project_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Portfolio{}, "id = ?", itemID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Portfolio item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete portfolio item")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted successfully"})
}
