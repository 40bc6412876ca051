package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/expenses/", nil)
	page, limit := GetPaginationParams(r)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestGetPaginationParams_ClampsBadInput(t *testing.T) {
	r := httptest.NewRequest("GET", "/expenses/?page=-3&limit=bogus", nil)
	page, limit := GetPaginationParams(r)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	r = httptest.NewRequest("GET", "/expenses/?page=2&limit=500", nil)
	page, limit = GetPaginationParams(r)
	assert.Equal(t, 2, page)
	assert.Equal(t, 100, limit)
}

func TestAddSorting_WhitelistsColumns(t *testing.T) {
	base := "SELECT id FROM expenses"

	r := httptest.NewRequest("GET", "/expenses/?sortBy=amount&sortOrder=desc", nil)
	assert.Equal(t, base+" ORDER BY amount DESC", AddSorting(r, base))

	r = httptest.NewRequest("GET", "/expenses/?sortBy=title", nil)
	assert.Equal(t, base+" ORDER BY title ASC", AddSorting(r, base))

	// Unknown columns are dropped rather than interpolated into SQL.
	r = httptest.NewRequest("GET", "/expenses/?sortBy=id;DROP+TABLE+expenses&sortOrder=desc", nil)
	assert.Equal(t, base, AddSorting(r, base))

	r = httptest.NewRequest("GET", "/expenses/", nil)
	assert.Equal(t, base, AddSorting(r, base))
}
