package utils

import "testing"

func TestOrderingClause(t *testing.T) {
	allowed := map[string]string{
		"title":        "title",
		"project_date": "project_date",
		"order":        "display_order",
	}

	cases := []struct {
		param string
		want  string
		ok    bool
	}{
		{"title", "title ASC", true},
		{"-project_date", "project_date DESC", true},
		{"order", "display_order ASC", true},
		{"-order", "display_order DESC", true},
		{"", "", false},
		{"password", "", false},
		{"title; DROP TABLE services", "", false},
	}
	for _, tc := range cases {
		got, ok := OrderingClause(tc.param, allowed)
		if got != tc.want || ok != tc.ok {
			t.Errorf("OrderingClause(%q) = (%q, %v), want (%q, %v)",
				tc.param, got, ok, tc.want, tc.ok)
		}
	}
}
