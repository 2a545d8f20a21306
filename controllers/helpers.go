// controllers/helpers.go
package controllers

import (
	"errors"
	"net/http"

	"devforge-backend/config"
	"devforge-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// featuredLimit caps the homepage "featured" views.
const featuredLimit = 6

// slugTaken reports whether the slug is already used by a row of the given
// model, writing the 409 (or 500) response when it is. Collisions are a
// hard failure; no suffix is appended.
func slugTaken(c *gin.Context, model interface{}, slugValue string) bool {
	err := config.DB.Where("slug = ?", slugValue).First(model).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Slug already in use: "+slugValue)
		return true
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return true
	}
	return false
}

// bindJSON binds the request body and writes the per-field 400 response
// on validation failure. Returns false when the request was rejected.
func bindJSON(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		fields := utils.BindingErrorFields(err)
		if len(fields) == 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return false
		}
		utils.RespondWithFieldErrors(c, http.StatusBadRequest, fields)
		return false
	}
	return true
}
