// Package serializers shapes stored rows into their API-facing form.
// Delimited text columns stay opaque at rest; the list splits happen here.
package serializers

import "strings"

// SplitCSV turns a comma-separated text field into trimmed, non-empty items.
// "React, Node.js,  Go" -> ["React", "Node.js", "Go"]; "" -> [].
func SplitCSV(value string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// SplitLines turns a newline-delimited text field into trimmed, non-empty lines.
func SplitLines(value string) []string {
	items := make([]string, 0)
	for _, line := range strings.Split(value, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
