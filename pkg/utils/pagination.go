package utils

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// GetPaginationParams reads page/limit query parameters with sane defaults.
func GetPaginationParams(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}

var sortableColumns = map[string]bool{
	"id":         true,
	"title":      true,
	"amount":     true,
	"status":     true,
	"category":   true,
	"created_at": true,
	"updated_at": true,
	"first_name": true,
	"last_name":  true,
	"username":   true,
	"email":      true,
	"position":   true,
}

// AddSorting appends an ORDER BY clause built from whitelisted sortBy and
// sortOrder query parameters. Unknown columns are ignored.
func AddSorting(r *http.Request, query string) string {
	sortBy := strings.ToLower(r.URL.Query().Get("sortBy"))
	if !sortableColumns[sortBy] {
		return query
	}

	sortOrder := "ASC"
	if strings.EqualFold(r.URL.Query().Get("sortOrder"), "desc") {
		sortOrder = "DESC"
	}

	return fmt.Sprintf("%s ORDER BY %s %s", query, sortBy, sortOrder)
}
