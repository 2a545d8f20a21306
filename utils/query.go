// utils/query.go
package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplySearch narrows the query to rows where any of the given columns
// contains the term, case-insensitively. An empty term is a no-op.
func ApplySearch(q *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return q
	}

	pattern := "%" + strings.ToLower(term) + "%"
	var sb strings.Builder
	args := make([]interface{}, 0, len(columns))
	for i, col := range columns {
		if i > 0 {
			sb.WriteString(" OR ")
		}
		sb.WriteString("LOWER(" + col + ") LIKE ?")
		args = append(args, pattern)
	}
	return q.Where(sb.String(), args...)
}

// OrderingClause translates a caller-supplied ordering parameter such as
// "-project_date" into an ORDER BY clause. Only fields present in the
// allowed map (API field name -> column) are accepted.
func OrderingClause(param string, allowed map[string]string) (string, bool) {
	field := strings.TrimSpace(param)
	desc := strings.HasPrefix(field, "-")
	field = strings.TrimPrefix(field, "-")

	col, ok := allowed[field]
	if !ok {
		return "", false
	}
	if desc {
		return col + " DESC", true
	}
	return col + " ASC", true
}

// ApplyPagination applies optional ?limit and ?offset query parameters.
// Absent or malformed values leave the query untouched.
func ApplyPagination(c *gin.Context, q *gorm.DB) *gorm.DB {
	if v := c.Query("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			q = q.Limit(limit)
		}
	}
	if v := c.Query("offset"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil && offset > 0 {
			q = q.Offset(offset)
		}
	}
	return q
}
