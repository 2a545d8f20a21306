package controllers_test

import (
	"net/http"
	"testing"

	"devforge-backend/config"
	"devforge-backend/models"
)

func seedJobOpening(t *testing.T, title string) models.JobOpening {
	t.Helper()
	job := models.JobOpening{
		Title:          title,
		Department:     "Engineering",
		Location:       "Remote",
		EmploymentType: models.EmploymentTypeFullTime,
		Description:    "Description for " + title,
		Requirements:   "3+ years of Go\nSQL experience",
		IsActive:       true,
	}
	if err := config.DB.Create(&job).Error; err != nil {
		t.Fatalf("failed to seed job opening: %v", err)
	}
	return job
}

func TestGetJobOpeningBySlug(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()

	seedJobOpening(t, "Senior Go Engineer")

	w := performRequest(router, http.MethodGet, "/api/jobs/senior-go-engineer", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Title            string   `json:"title"`
		RequirementsList []string `json:"requirements_list"`
	}
	decodeJSON(t, w, &resp)
	if resp.Title != "Senior Go Engineer" {
		t.Fatalf("expected job by derived slug, got %q", resp.Title)
	}
	if len(resp.RequirementsList) != 2 || resp.RequirementsList[1] != "SQL experience" {
		t.Fatalf("expected requirements split per line, got %v", resp.RequirementsList)
	}
}

func TestGetJobOpeningsExcludesClosed(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()

	seedJobOpening(t, "Open Role")
	closed := seedJobOpening(t, "Closed Role")
	deactivate(t, &models.JobOpening{}, closed.ID)

	w := performRequest(router, http.MethodGet, "/api/jobs", nil, nil)
	var list []struct {
		Title string `json:"title"`
	}
	decodeJSON(t, w, &list)
	if len(list) != 1 || list[0].Title != "Open Role" {
		t.Fatalf("expected only the open role, got %v", list)
	}

	w = performRequest(router, http.MethodGet, "/api/jobs/closed-role", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for closed role, got %d", w.Code)
	}
}

func TestCreateJobOpeningRejectsBadEmploymentType(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()
	headers := adminHeaders(t)

	payload := map[string]any{
		"title":           "Intern",
		"description":     "Summer internship",
		"employment_type": "gig",
	}
	w := performRequest(router, http.MethodPost, "/api/admin/jobs", payload, headers)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	decodeJSON(t, w, &resp)
	if _, ok := resp.Fields["employment_type"]; !ok {
		t.Fatalf("expected employment_type in validation errors, got %v", resp.Fields)
	}
}

func TestCreateJobOpeningDefaultsEmploymentType(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()
	headers := adminHeaders(t)

	payload := map[string]any{
		"title":       "Backend Developer",
		"description": "Build APIs",
	}
	w := performRequest(router, http.MethodPost, "/api/admin/jobs", payload, headers)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		EmploymentType string `json:"employment_type"`
		PostedAt       string `json:"posted_at"`
	}
	decodeJSON(t, w, &resp)
	if resp.EmploymentType != models.EmploymentTypeFullTime {
		t.Fatalf("expected full_time default, got %q", resp.EmploymentType)
	}
	if resp.PostedAt == "" {
		t.Fatal("expected posted_at to be set on creation")
	}
}
