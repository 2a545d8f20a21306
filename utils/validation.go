// utils/validation.go
package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// BindingErrorFields flattens gin binding errors into a per-field message map,
// keyed by the snake_case field name used in the JSON payload. Every invalid
// field is reported, not just the first one.
func BindingErrorFields(err error) map[string]string {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fields
	}

	for _, fe := range verrs {
		fields[ToSnakeCase(fe.Field())] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "oneof":
		return "Value must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "min":
		return "Value must be at least " + fe.Param()
	case "max":
		return "Value must be at most " + fe.Param()
	case "datetime":
		return "Date must be in " + fe.Param() + " format"
	case "url":
		return "Enter a valid URL"
	default:
		return "Invalid value"
	}
}

// ToSnakeCase converts a Go struct field name into its JSON counterpart,
// e.g. "InquiryType" -> "inquiry_type", "LiveURL" -> "live_url"
func ToSnakeCase(name string) string {
	runes := []rune(name)
	var sb strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			boundary := i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1])))
			if boundary {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
