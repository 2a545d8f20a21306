package controllers_test

import (
	"net/http"
	"testing"

	"devforge-backend/config"
	"devforge-backend/models"
)

func seedService(t *testing.T, title string, order int) models.Service {
	t.Helper()
	item := models.Service{
		Title:            title,
		ShortDescription: "Short " + title,
		FullDescription:  "Full " + title,
		Icon:             "fas fa-laptop-code",
		Technologies:     "React, Node.js, Go",
		DisplayOrder:     order,
		IsActive:         true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}
	return item
}

func TestGetServicesOrderingIsStable(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()

	seedService(t, "Zeta", 2)
	seedService(t, "Alpha", 1)
	seedService(t, "Beta", 1)

	expect := []string{"Alpha", "Beta", "Zeta"}
	for i := 0; i < 2; i++ {
		w := performRequest(router, http.MethodGet, "/api/services", nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		var list []struct {
			Title string `json:"title"`
		}
		decodeJSON(t, w, &list)
		if len(list) != 3 {
			t.Fatalf("expected 3 services, got %d", len(list))
		}
		for j, want := range expect {
			if list[j].Title != want {
				t.Fatalf("run %d: unexpected order at %d: got %q, want %q", i, j, list[j].Title, want)
			}
		}
	}
}

func TestGetServicesExcludesInactive(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()

	active := seedService(t, "Visible", 0)
	hidden := seedService(t, "Hidden", 1)
	deactivate(t, &models.Service{}, hidden.ID)

	w := performRequest(router, http.MethodGet, "/api/services", nil, nil)
	var list []struct {
		ID string `json:"id"`
	}
	decodeJSON(t, w, &list)
	if len(list) != 1 || list[0].ID != active.ID.String() {
		t.Fatalf("expected only the active service, got %+v", list)
	}

	// Deactivation hides the row but keeps its data.
	var count int64
	config.DB.Model(&models.Service{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 persisted rows, got %d", count)
	}
}

func TestGetServicesSearchMatchesTechnologies(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()

	seedService(t, "Web Development", 0)
	other := models.Service{
		Title:            "Mobile Apps",
		ShortDescription: "Cross platform",
		FullDescription:  "Full",
		Icon:             "fas fa-mobile",
		Technologies:     "Flutter, Dart",
		IsActive:         true,
	}
	if err := config.DB.Create(&other).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}

	w := performRequest(router, http.MethodGet, "/api/services?search=NODE", nil, nil)
	var list []struct {
		Title string `json:"title"`
	}
	decodeJSON(t, w, &list)
	if len(list) != 1 || list[0].Title != "Web Development" {
		t.Fatalf("expected search to match technologies case-insensitively, got %+v", list)
	}
}

func TestGetServiceBySlug(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()

	item := seedService(t, "Cloud Migration", 0)
	if item.Slug != "cloud-migration" {
		t.Fatalf("expected derived slug cloud-migration, got %q", item.Slug)
	}

	w := performRequest(router, http.MethodGet, "/api/services/cloud-migration", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp struct {
		TechnologiesList []string `json:"technologies_list"`
	}
	decodeJSON(t, w, &resp)
	want := []string{"React", "Node.js", "Go"}
	if len(resp.TechnologiesList) != len(want) {
		t.Fatalf("unexpected technologies_list: %v", resp.TechnologiesList)
	}
	for i := range want {
		if resp.TechnologiesList[i] != want[i] {
			t.Fatalf("unexpected technologies_list: %v", resp.TechnologiesList)
		}
	}

	missing := performRequest(router, http.MethodGet, "/api/services/unknown-slug", nil, nil)
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", missing.Code)
	}
}

func TestCreateServiceRequiresAuth(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()

	payload := map[string]any{"title": "SEO"}
	w := performRequest(router, http.MethodPost, "/api/admin/services", payload, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestCreateServiceDuplicateSlugConflicts(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()
	headers := adminHeaders(t)

	payload := map[string]any{
		"title":             "DevOps Consulting",
		"short_description": "Pipelines",
		"full_description":  "Full pipelines",
		"icon":              "fas fa-cogs",
		"technologies":      "Docker, Kubernetes",
	}
	first := performRequest(router, http.MethodPost, "/api/admin/services", payload, headers)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", first.Code, first.Body.String())
	}

	// Same title derives the same slug: hard conflict, no suffixing.
	second := performRequest(router, http.MethodPost, "/api/admin/services", payload, headers)
	if second.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d: %s", second.Code, second.Body.String())
	}

	var count int64
	config.DB.Model(&models.Service{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single persisted service, got %d", count)
	}
}

func TestCreateServiceNormalizesSuppliedSlug(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()
	headers := adminHeaders(t)

	payload := map[string]any{
		"title":             "API Development",
		"slug":              "Hello World!",
		"short_description": "APIs",
		"full_description":  "Full APIs",
		"icon":              "fas fa-code",
		"technologies":      "Go",
	}
	w := performRequest(router, http.MethodPost, "/api/admin/services", payload, headers)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Slug string `json:"slug"`
	}
	decodeJSON(t, w, &resp)
	if resp.Slug != "hello-world" {
		t.Fatalf("expected supplied slug to be normalized, got %q", resp.Slug)
	}

	w = performRequest(router, http.MethodGet, "/api/services/hello-world", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected service reachable at normalized slug, got %d", w.Code)
	}
}

func TestUpdateServiceKeepsSlug(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()
	headers := adminHeaders(t)

	item := seedService(t, "API Design", 0)

	payload := map[string]any{"title": "API Architecture"}
	w := performRequest(router, http.MethodPut, "/api/admin/services/"+item.ID.String(), payload, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Service
	if err := config.DB.First(&updated, "id = ?", item.ID).Error; err != nil {
		t.Fatalf("failed to reload service: %v", err)
	}
	if updated.Title != "API Architecture" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if updated.Slug != "api-design" {
		t.Fatalf("expected slug to stay api-design, got %q", updated.Slug)
	}
}

func TestDeleteService(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()
	headers := adminHeaders(t)

	item := seedService(t, "Legacy Rescue", 0)

	w := performRequest(router, http.MethodDelete, "/api/admin/services/"+item.ID.String(), nil, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	again := performRequest(router, http.MethodDelete, "/api/admin/services/"+item.ID.String(), nil, headers)
	if again.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", again.Code)
	}
}
