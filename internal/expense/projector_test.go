package expense

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ihumure/internal/models"
)

func mkExpense(id int, title, amount, description, status, createdAt string) models.Expense {
	amt, _ := decimal.NewFromString(amount)
	return models.Expense{
		ID:          id,
		Title:       title,
		Amount:      amt,
		Description: description,
		Status:      status,
		CreatedAt:   sql.NullString{String: createdAt, Valid: createdAt != ""},
	}
}

func ids(items []models.Expense) []int {
	out := make([]int, 0, len(items))
	for _, e := range items {
		out = append(out, e.ID)
	}
	return out
}

var projectorNow = time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)

func sampleSnapshot() []models.Expense {
	return []models.Expense{
		mkExpense(1, "Fuel", "42.5", "generator fuel", "APPROVED", "2025-06-15 00:01:00"),
		mkExpense(2, "Office Supplies", "120", "pens and paper", "PENDING", "2025-06-14 23:59:00"),
		mkExpense(3, "Office Supplies", "80", "printer ink", "PENDING", "2025-06-10 09:30:00"),
		mkExpense(4, "Venue Rental", "900", "community hall", "REJECTED", "2025-05-20 14:00:00"),
		mkExpense(5, "Transport", "15.75", "bus fare", "COMPLETED", "2025-06-01 08:00:00"),
	}
}

func TestProject_EmptySnapshot(t *testing.T) {
	page := Project(nil, projectorNow, Query{Page: 1, PerPage: 10})
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalItems)
	assert.Equal(t, 0, page.TotalPages)
}

func TestFilter_StatusIncludesRejected(t *testing.T) {
	out := Filter(sampleSnapshot(), projectorNow, Query{Status: "REJECTED"})
	require.Len(t, out, 1)
	assert.Equal(t, 4, out[0].ID)
}

func TestFilter_StatusAllIsNoop(t *testing.T) {
	assert.Len(t, Filter(sampleSnapshot(), projectorNow, Query{Status: "ALL"}), 5)
	assert.Len(t, Filter(sampleSnapshot(), projectorNow, Query{}), 5)
}

func TestFilter_TodayUsesCalendarDays(t *testing.T) {
	// Created at 00:01 today counts as TODAY even when "now" is 23:59;
	// created at 23:59 yesterday does not.
	out := Filter(sampleSnapshot(), projectorNow, Query{DateRange: DateToday})
	assert.Equal(t, []int{1}, ids(out))
}

func TestFilter_TrailingWindows(t *testing.T) {
	week := Filter(sampleSnapshot(), projectorNow, Query{DateRange: DateWeek, SortBy: "created_at", SortOrder: "asc"})
	assert.Equal(t, []int{3, 2, 1}, ids(week))

	month := Filter(sampleSnapshot(), projectorNow, Query{DateRange: DateMonth, SortBy: "created_at", SortOrder: "asc"})
	assert.Equal(t, []int{4, 5, 3, 2, 1}, ids(month))
}

func TestFilter_CustomRangeInclusive(t *testing.T) {
	q := Query{
		DateRange: DateCustom,
		StartDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC),
		SortBy:    "created_at",
		SortOrder: "asc",
	}
	// Bounds are truncated to days, so both the 2025-06-01 08:00 and the
	// 2025-06-14 23:59 rows are inside the range.
	out := Filter(sampleSnapshot(), projectorNow, q)
	assert.Equal(t, []int{5, 3, 2}, ids(out))
}

func TestQueryValidate_CustomRequiresBothBounds(t *testing.T) {
	q := Query{DateRange: DateCustom, StartDate: time.Now()}
	assert.ErrorIs(t, q.Validate(), ErrCustomRangeIncomplete)

	q = Query{DateRange: DateCustom, EndDate: time.Now()}
	assert.ErrorIs(t, q.Validate(), ErrCustomRangeIncomplete)

	q = Query{DateRange: DateCustom, StartDate: time.Now(), EndDate: time.Now()}
	assert.NoError(t, q.Validate())

	assert.NoError(t, Query{DateRange: DateAll}.Validate())
}

func TestFilter_SearchMatchesTitleOrDescription(t *testing.T) {
	byTitle := Filter(sampleSnapshot(), projectorNow, Query{Search: "fuel"})
	assert.Equal(t, []int{1}, ids(byTitle))

	byDescription := Filter(sampleSnapshot(), projectorNow, Query{Search: "PRINTER"})
	assert.Equal(t, []int{3}, ids(byDescription))

	assert.Empty(t, Filter(sampleSnapshot(), projectorNow, Query{Search: "helicopter"}))
}

func TestFilter_AmountSortIsNumeric(t *testing.T) {
	out := Filter(sampleSnapshot(), projectorNow, Query{SortBy: "amount", SortOrder: "asc"})
	assert.Equal(t, []int{5, 1, 3, 2, 4}, ids(out))
}

func TestFilter_TitleSortTieBreaksOnId(t *testing.T) {
	// Two rows share title "Office Supplies"; the id tie-break keeps their
	// relative order deterministic however often we sort.
	out := Filter(sampleSnapshot(), projectorNow, Query{SortBy: "title", SortOrder: "asc"})
	assert.Equal(t, []int{1, 2, 3, 5, 4}, ids(out))

	again := Filter(sampleSnapshot(), projectorNow, Query{SortBy: "title", SortOrder: "asc"})
	assert.Equal(t, ids(out), ids(again))
}

func TestFilter_DefaultSortIsNewestFirst(t *testing.T) {
	out := Filter(sampleSnapshot(), projectorNow, Query{})
	assert.Equal(t, []int{1, 2, 3, 5, 4}, ids(out))
}

func TestFilter_Idempotent(t *testing.T) {
	q := Query{Status: "PENDING", DateRange: DateMonth, Search: "office", SortBy: "amount", SortOrder: "desc"}
	first := Filter(sampleSnapshot(), projectorNow, q)
	second := Filter(sampleSnapshot(), projectorNow, q)
	assert.Equal(t, first, second)
}

func TestProject_PaginationBoundaries(t *testing.T) {
	snapshot := make([]models.Expense, 0, 7)
	for i := 1; i <= 7; i++ {
		snapshot = append(snapshot, mkExpense(i, "Item", "10", "", "PENDING", "2025-06-15 10:00:00"))
	}

	page := Project(snapshot, projectorNow, Query{Page: 1, PerPage: 3})
	assert.Equal(t, 3, len(page.Items))
	assert.Equal(t, 7, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)

	last := Project(snapshot, projectorNow, Query{Page: 3, PerPage: 3})
	assert.Equal(t, 1, len(last.Items))

	// A page past the end clamps to the last page instead of erroring.
	clamped := Project(snapshot, projectorNow, Query{Page: 99, PerPage: 3})
	assert.Equal(t, 3, clamped.Page)
	assert.Equal(t, last.Items, clamped.Items)

	even := Project(snapshot[:6], projectorNow, Query{Page: 2, PerPage: 3})
	assert.Equal(t, 2, even.TotalPages)
	assert.Equal(t, 3, len(even.Items))
}

func TestProject_DoesNotMutateSnapshot(t *testing.T) {
	snapshot := sampleSnapshot()
	Project(snapshot, projectorNow, Query{SortBy: "amount", SortOrder: "desc", Page: 1, PerPage: 2})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(snapshot))
}
