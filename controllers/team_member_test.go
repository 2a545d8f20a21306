package controllers_test

import (
	"net/http"
	"testing"

	"devforge-backend/config"
	"devforge-backend/models"
)

func seedTeamMember(t *testing.T, name string, order int) models.TeamMember {
	t.Helper()
	member := models.TeamMember{
		Name:         name,
		Position:     "Engineer",
		Photo:        "/media/" + name + ".png",
		Skills:       "Go, React",
		DisplayOrder: order,
		IsActive:     true,
	}
	if err := config.DB.Create(&member).Error; err != nil {
		t.Fatalf("failed to seed team member: %v", err)
	}
	return member
}

func TestGetTeamMembersOrderWithNameTieBreak(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()

	seedTeamMember(t, "Zoe", 1)
	seedTeamMember(t, "Amir", 2)
	seedTeamMember(t, "Bea", 2)

	w := performRequest(router, http.MethodGet, "/api/team", nil, nil)
	var list []struct {
		Name       string   `json:"name"`
		SkillsList []string `json:"skills_list"`
	}
	decodeJSON(t, w, &list)
	if len(list) != 3 {
		t.Fatalf("expected 3 members, got %d", len(list))
	}
	got := []string{list[0].Name, list[1].Name, list[2].Name}
	want := []string{"Zoe", "Amir", "Bea"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	if len(list[0].SkillsList) != 2 || list[0].SkillsList[0] != "Go" {
		t.Fatalf("expected comma-split skills, got %v", list[0].SkillsList)
	}
}

func TestGetTeamMembersExcludesInactive(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()

	seedTeamMember(t, "Kept", 0)
	hidden := seedTeamMember(t, "Hidden", 1)
	deactivate(t, &models.TeamMember{}, hidden.ID)

	w := performRequest(router, http.MethodGet, "/api/team", nil, nil)
	var list []struct {
		Name string `json:"name"`
	}
	decodeJSON(t, w, &list)
	if len(list) != 1 || list[0].Name != "Kept" {
		t.Fatalf("expected only the active member, got %v", list)
	}

	w = performRequest(router, http.MethodGet, "/api/team/"+hidden.ID.String(), nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for inactive member, got %d", w.Code)
	}
}

func TestCreateTeamMemberRequiresPhoto(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()
	headers := adminHeaders(t)

	payload := map[string]any{
		"name":     "Noa",
		"position": "Designer",
	}
	w := performRequest(router, http.MethodPost, "/api/admin/team", payload, headers)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	decodeJSON(t, w, &resp)
	if _, ok := resp.Fields["photo"]; !ok {
		t.Fatalf("expected photo in validation errors, got %v", resp.Fields)
	}
}

func TestUpdateTeamMemberPartial(t *testing.T) {
	router, cleanup := setupTestDB(t)
	defer cleanup()
	headers := adminHeaders(t)

	member := seedTeamMember(t, "Iris", 0)

	payload := map[string]any{"position": "Lead Engineer"}
	w := performRequest(router, http.MethodPut, "/api/admin/team/"+member.ID.String(), payload, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var saved models.TeamMember
	if err := config.DB.First(&saved, "id = ?", member.ID).Error; err != nil {
		t.Fatalf("failed to reload member: %v", err)
	}
	if saved.Position != "Lead Engineer" {
		t.Fatalf("expected updated position, got %q", saved.Position)
	}
	if saved.Name != "Iris" {
		t.Fatalf("expected name untouched, got %q", saved.Name)
	}
}
