package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"devforge-backend/config"
	"devforge-backend/models"
)

func seedPortfolio(t *testing.T, title string, featured bool, order int, projectDate time.Time) models.Portfolio {
	t.Helper()
	item := models.Portfolio{
		Title:            title,
		ShortDescription: "Short " + title,
		Challenge:        "Challenge",
		Solution:         "Solution",
		Result:           "Result",
		Thumbnail:        "/media/" + title + ".png",
		Technologies:     "Go, React",
		Status:           models.ProjectStatusCompleted,
		ProjectDate:      projectDate,
		Featured:         featured,
		DisplayOrder:     order,
		IsActive:         true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed portfolio item: %v", err)
	}
	return item
}

func TestGetFeaturedPortfolioCapAndOrder(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		seedPortfolio(t, fmt.Sprintf("Featured %d", i), true, i, base.AddDate(0, i, 0))
	}
	seedPortfolio(t, "Not Featured", false, 0, base)

	w := performRequest(router, http.MethodGet, "/api/portfolio/featured", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var list []struct {
		Title    string `json:"title"`
		Featured bool   `json:"featured"`
	}
	decodeJSON(t, w, &list)

	if len(list) != 6 {
		t.Fatalf("expected the featured view to cap at 6, got %d", len(list))
	}
	for i, item := range list {
		if !item.Featured {
			t.Fatalf("non-featured item in featured view: %+v", item)
		}
		want := fmt.Sprintf("Featured %d", i)
		if item.Title != want {
			t.Fatalf("unexpected order at %d: got %q, want %q", i, item.Title, want)
		}
	}
}

func TestPortfolioListUsesReducedProjection(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()

	seedPortfolio(t, "Shop Rebuild", false, 0, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	w := performRequest(router, http.MethodGet, "/api/portfolio", nil, nil)
	var raw []map[string]json.RawMessage
	decodeJSON(t, w, &raw)
	if len(raw) != 1 {
		t.Fatalf("expected 1 item, got %d", len(raw))
	}

	for _, forbidden := range []string{"challenge", "solution", "result", "testimonials"} {
		if _, ok := raw[0][forbidden]; ok {
			t.Fatalf("list projection must not contain %q", forbidden)
		}
	}
	for _, required := range []string{"title", "slug", "thumbnail", "technologies_list", "project_date"} {
		if _, ok := raw[0][required]; !ok {
			t.Fatalf("list projection missing %q", required)
		}
	}
}

func TestPortfolioDetailEmbedsActiveTestimonials(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()

	item := seedPortfolio(t, "Fintech Platform", false, 0, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	active := models.Testimonial{
		ClientName:     "Maria",
		ClientPosition: "CTO",
		ClientCompany:  "FinCo",
		Review:         "Great work",
		Rating:         5,
		Source:         models.TestimonialSourceDirect,
		ProjectID:      &item.ID,
		IsActive:       true,
	}
	if err := config.DB.Create(&active).Error; err != nil {
		t.Fatalf("failed to seed testimonial: %v", err)
	}
	hidden := models.Testimonial{
		ClientName:     "Ghost",
		ClientPosition: "CEO",
		ClientCompany:  "GoneCo",
		Review:         "Hidden",
		Rating:         4,
		Source:         models.TestimonialSourceDirect,
		ProjectID:      &item.ID,
		IsActive:       true,
	}
	if err := config.DB.Create(&hidden).Error; err != nil {
		t.Fatalf("failed to seed testimonial: %v", err)
	}
	deactivate(t, &models.Testimonial{}, hidden.ID)

	w := performRequest(router, http.MethodGet, "/api/portfolio/"+item.Slug, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Challenge    string `json:"challenge"`
		Testimonials []struct {
			ClientName   string `json:"client_name"`
			ProjectTitle string `json:"project_title"`
		} `json:"testimonials"`
	}
	decodeJSON(t, w, &resp)

	if resp.Challenge != "Challenge" {
		t.Fatalf("detail projection should include the case study, got %q", resp.Challenge)
	}
	if len(resp.Testimonials) != 1 {
		t.Fatalf("expected only the active testimonial embedded, got %d", len(resp.Testimonials))
	}
	if resp.Testimonials[0].ClientName != "Maria" {
		t.Fatalf("unexpected embedded testimonial: %+v", resp.Testimonials[0])
	}
	if resp.Testimonials[0].ProjectTitle != "Fintech Platform" {
		t.Fatalf("expected denormalized project_title, got %q", resp.Testimonials[0].ProjectTitle)
	}
}

func TestPortfolioStatusFilter(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()

	completed := seedPortfolio(t, "Done", false, 0, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ongoing := seedPortfolio(t, "Running", false, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err := config.DB.Model(&models.Portfolio{}).Where("id = ?", ongoing.ID).
		Update("status", models.ProjectStatusOngoing).Error; err != nil {
		t.Fatalf("failed to update status: %v", err)
	}

	w := performRequest(router, http.MethodGet, "/api/portfolio?status=completed", nil, nil)
	var list []struct {
		ID string `json:"id"`
	}
	decodeJSON(t, w, &list)
	if len(list) != 1 || list[0].ID != completed.ID.String() {
		t.Fatalf("expected only the completed item, got %+v", list)
	}
}

func TestCreatePortfolioValidatesInput(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()
	headers := adminHeaders(t)

	payload := map[string]any{
		"title":        "Broken",
		"status":       "abandoned",
		"project_date": "01/02/2024",
	}
	w := performRequest(router, http.MethodPost, "/api/admin/portfolio", payload, headers)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	decodeJSON(t, w, &resp)
	for _, field := range []string{"short_description", "challenge", "solution", "result", "thumbnail", "technologies", "status", "project_date"} {
		if _, ok := resp.Fields[field]; !ok {
			t.Fatalf("expected field %q in validation errors, got %v", field, resp.Fields)
		}
	}
}

func TestDeletePortfolioClearsTestimonialReference(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()
	headers := adminHeaders(t)

	item := seedPortfolio(t, "Old Project", false, 0, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))
	testimonial := models.Testimonial{
		ClientName:     "Nadia",
		ClientPosition: "Founder",
		ClientCompany:  "OldCo",
		Review:         "Solid delivery",
		Rating:         5,
		Source:         models.TestimonialSourceUpwork,
		ProjectID:      &item.ID,
		IsActive:       true,
	}
	if err := config.DB.Create(&testimonial).Error; err != nil {
		t.Fatalf("failed to seed testimonial: %v", err)
	}

	w := performRequest(router, http.MethodDelete, "/api/admin/portfolio/"+item.ID.String(), nil, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var orphan models.Testimonial
	if err := config.DB.First(&orphan, "id = ?", testimonial.ID).Error; err != nil {
		t.Fatalf("testimonial must survive portfolio deletion: %v", err)
	}
	if orphan.ProjectID != nil {
		t.Fatalf("expected the project reference to be cleared, got %v", orphan.ProjectID)
	}
}
