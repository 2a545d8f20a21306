// utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondWithError sends a JSON error body with the given status code
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondWithFieldErrors sends a validation failure listing every bad field,
// so the caller can display messages next to the offending inputs
func RespondWithFieldErrors(c *gin.Context, code int, fields map[string]string) {
	c.JSON(code, gin.H{
		"error":  "Validation failed",
		"fields": fields,
	})
}
