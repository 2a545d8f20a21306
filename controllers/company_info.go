// controllers/company_info.go
package controllers

import (
	"net/http"

	"devforge-backend/config"
	"devforge-backend/models"
	"devforge-backend/serializers"
	"devforge-backend/utils"

	"github.com/gin-gonic/gin"
)

// UpdateCompanyInfoInput defines the admin payload for the singleton.
// Everything is optional; omitted fields keep their value.
type UpdateCompanyInfoInput struct {
	CompanyName      *string `json:"company_name"`
	Tagline          *string `json:"tagline"`
	AboutShort       *string `json:"about_short"`
	AboutFull        *string `json:"about_full"`
	Mission          *string `json:"mission"`
	Vision           *string `json:"vision"`
	Values           *string `json:"values"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Phone            *string `json:"phone"`
	Address          *string `json:"address"`
	FacebookURL      *string `json:"facebook_url"`
	TwitterURL       *string `json:"twitter_url"`
	LinkedinURL      *string `json:"linkedin_url"`
	GithubURL        *string `json:"github_url"`
	InstagramURL     *string `json:"instagram_url"`
	WhatsappNumber   *string `json:"whatsapp_number"`
	TelegramUsername *string `json:"telegram_username"`
	CalendlyURL      *string `json:"calendly_url"`
	GoogleMapsEmbed  *string `json:"google_maps_embed"`
	MetaDescription  *string `json:"meta_description"`
	MetaKeywords     *string `json:"meta_keywords"`
}

// GetCompanyInfo returns the singleton company record, creating it with
// defaults on first access. A single object is returned, never an array.
func GetCompanyInfo(c *gin.Context) {
	info, err := models.LoadCompanyInfo(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load company info")
		return
	}

	c.JSON(http.StatusOK, serializers.NewCompanyInfoResponse(*info))
}

// UpdateCompanyInfo updates the singleton company record
func UpdateCompanyInfo(c *gin.Context) {
	var input UpdateCompanyInfoInput
	if !bindJSON(c, &input) {
		return
	}

	// The whatsapp number feeds wa.me links, which need a real number
	// with a country code. The plain phone field stays free-form.
	if input.WhatsappNumber != nil && *input.WhatsappNumber != "" &&
		!utils.ValidatePhone(*input.WhatsappNumber) {
		utils.RespondWithFieldErrors(c, http.StatusBadRequest, map[string]string{
			"whatsapp_number": "Invalid phone number format",
		})
		return
	}

	info, err := models.LoadCompanyInfo(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load company info")
		return
	}

	if input.CompanyName != nil {
		info.CompanyName = *input.CompanyName
	}
	if input.Tagline != nil {
		info.Tagline = *input.Tagline
	}
	if input.AboutShort != nil {
		info.AboutShort = *input.AboutShort
	}
	if input.AboutFull != nil {
		info.AboutFull = *input.AboutFull
	}
	if input.Mission != nil {
		info.Mission = *input.Mission
	}
	if input.Vision != nil {
		info.Vision = *input.Vision
	}
	if input.Values != nil {
		info.Values = *input.Values
	}
	if input.Email != nil {
		info.Email = *input.Email
	}
	if input.Phone != nil {
		info.Phone = *input.Phone
	}
	if input.Address != nil {
		info.Address = *input.Address
	}
	if input.FacebookURL != nil {
		info.FacebookURL = *input.FacebookURL
	}
	if input.TwitterURL != nil {
		info.TwitterURL = *input.TwitterURL
	}
	if input.LinkedinURL != nil {
		info.LinkedinURL = *input.LinkedinURL
	}
	if input.GithubURL != nil {
		info.GithubURL = *input.GithubURL
	}
	if input.InstagramURL != nil {
		info.InstagramURL = *input.InstagramURL
	}
	if input.WhatsappNumber != nil {
		info.WhatsappNumber = *input.WhatsappNumber
	}
	if input.TelegramUsername != nil {
		info.TelegramUsername = *input.TelegramUsername
	}
	if input.CalendlyURL != nil {
		info.CalendlyURL = *input.CalendlyURL
	}
	if input.GoogleMapsEmbed != nil {
		info.GoogleMapsEmbed = *input.GoogleMapsEmbed
	}
	if input.MetaDescription != nil {
		info.MetaDescription = *input.MetaDescription
	}
	if input.MetaKeywords != nil {
		info.MetaKeywords = *input.MetaKeywords
	}

	if err := config.DB.Save(info).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update company info")
		return
	}

	c.JSON(http.StatusOK, serializers.NewCompanyInfoResponse(*info))
}
