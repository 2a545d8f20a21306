package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Name":           "name",
		"InquiryType":    "inquiry_type",
		"ClientPosition": "client_position",
		"LiveURL":        "live_url",
		"GithubURL":      "github_url",
		"ID":             "id",
	}
	for in, want := range cases {
		if got := ToSnakeCase(in); got != want {
			t.Errorf("ToSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+14155552671", "+44 20 7946 0958", "(415) 555-2671", "4155552671"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("expected %q to be valid", phone)
		}
	}

	invalid := []string{"abc", "+0123456", "1", "+1 555 CALL NOW"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}

func TestBindingErrorFieldsReportsEveryField(t *testing.T) {
	type form struct {
		Name        string `validate:"required"`
		Email       string `validate:"required,email"`
		InquiryType string `validate:"oneof=general quote support"`
		Rating      int    `validate:"min=1,max=5"`
	}

	v := validator.New()
	err := v.Struct(form{Email: "nope", InquiryType: "spam", Rating: 9})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	fields := BindingErrorFields(err)
	for _, key := range []string{"name", "email", "inquiry_type", "rating"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("expected %q in field errors, got %v", key, fields)
		}
	}
}

func TestBindingErrorFieldsNonValidatorError(t *testing.T) {
	fields := BindingErrorFields(errInvalidJSON{})
	if len(fields) != 0 {
		t.Fatalf("expected no fields for a non-validator error, got %v", fields)
	}
}

type errInvalidJSON struct{}

func (errInvalidJSON) Error() string { return "invalid character" }
