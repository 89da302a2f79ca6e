package model

import (
	"fmt"
	"strings"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// sortColumns maps accepted sort fields to their column names.
var sortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

// PageRequest describes one requested page of users.
type PageRequest struct {
	Page int    // zero-based
	Size int
	Sort string // "field,asc|desc"
}

// Normalize clamps page and size and reduces Sort to a known column
// and direction. Unknown fields fall back to id ascending.
func (r PageRequest) Normalize() PageRequest {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = defaultPageSize
	}
	if r.Size > maxPageSize {
		r.Size = maxPageSize
	}

	field, dir := "id", "asc"
	if parts := strings.SplitN(r.Sort, ",", 2); parts[0] != "" {
		if col, ok := sortColumns[strings.ToLower(strings.TrimSpace(parts[0]))]; ok {
			field = col
		}
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
			dir = "desc"
		}
	}
	r.Sort = field + "," + dir

	return r
}

// Offset returns the row offset for the requested page.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// OrderClause returns the Sort field as a SQL order-by expression.
// Only call on a normalized request.
func (r PageRequest) OrderClause() string {
	return strings.Replace(r.Sort, ",", " ", 1)
}

// CacheKey identifies the page in the users_page cache view.
func (r PageRequest) CacheKey() string {
	return fmt.Sprintf("users_page:p%d:s%d:%s", r.Page, r.Size, r.Sort)
}

// UserPage is one page of users plus paging metadata.
type UserPage struct {
	Items      []User `json:"items"`
	Page       int    `json:"page"`
	Size       int    `json:"size"`
	TotalItems int64  `json:"total_items"`
	TotalPages int    `json:"total_pages"`
}
