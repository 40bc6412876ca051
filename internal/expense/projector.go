package expense

import (
	"errors"
	"sort"
	"strings"
	"time"

	"ihumure/internal/models"
)

// DateRange selects which trailing window of createdAt values to keep.
type DateRange string

const (
	DateAll    DateRange = "ALL"
	DateToday  DateRange = "TODAY"
	DateWeek   DateRange = "WEEK"
	DateMonth  DateRange = "MONTH"
	DateCustom DateRange = "CUSTOM"
)

// Query is the full set of projection parameters. The zero value of Status
// and DateRange means "no filter".
type Query struct {
	Status    string
	DateRange DateRange
	StartDate time.Time
	EndDate   time.Time
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PerPage   int
}

// ErrCustomRangeIncomplete is returned when a CUSTOM date filter arrives with
// only one of its two bounds. The legacy dashboard silently skipped the filter
// in that case; here the request is refused so callers notice.
var ErrCustomRangeIncomplete = errors.New("custom date filter requires both start_date and end_date")

// Validate rejects queries that cannot be projected deterministically.
func (q Query) Validate() error {
	if q.DateRange == DateCustom && (q.StartDate.IsZero() || q.EndDate.IsZero()) {
		return ErrCustomRangeIncomplete
	}
	return nil
}

// Page is one page of the projected snapshot.
type Page struct {
	Items      []models.Expense
	TotalItems int
	TotalPages int
	Page       int
	PerPage    int
}

const createdAtLayout = "2006-01-02 15:04:05"

func createdAt(e models.Expense) time.Time {
	if !e.CreatedAt.Valid {
		return time.Time{}
	}
	if t, err := time.Parse(createdAtLayout, e.CreatedAt.String); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, e.CreatedAt.String); err == nil {
		return t
	}
	return time.Time{}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// matchesDate compares at calendar-day granularity: both sides are truncated
// to midnight before comparing, so an expense created at 23:59 today and one
// created at 00:01 today are both TODAY.
func matchesDate(e models.Expense, now time.Time, q Query) bool {
	if q.DateRange == "" || q.DateRange == DateAll {
		return true
	}
	day := truncateToDay(createdAt(e))
	today := truncateToDay(now)

	switch q.DateRange {
	case DateToday:
		return day.Equal(today)
	case DateWeek:
		return !day.Before(today.AddDate(0, 0, -7)) && !day.After(today)
	case DateMonth:
		return !day.Before(today.AddDate(0, 0, -30)) && !day.After(today)
	case DateCustom:
		start := truncateToDay(q.StartDate)
		end := truncateToDay(q.EndDate)
		return !day.Before(start) && !day.After(end)
	}
	return true
}

func matchesSearch(e models.Expense, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.Description), term)
}

func matchesStatus(e models.Expense, status string) bool {
	if status == "" || strings.EqualFold(status, "ALL") {
		return true
	}
	return strings.EqualFold(e.Status, status)
}

// less orders a before b for the given sort key, ascending. Ties fall back to
// id so the ordering is stable regardless of the runtime's sort.
func less(a, b models.Expense, sortBy string) bool {
	switch sortBy {
	case "amount":
		if cmp := a.Amount.Cmp(b.Amount); cmp != 0 {
			return cmp < 0
		}
	case "created_at", "":
		ta, tb := createdAt(a), createdAt(b)
		if !ta.Equal(tb) {
			return ta.Before(tb)
		}
	default:
		va := strings.ToLower(fieldString(a, sortBy))
		vb := strings.ToLower(fieldString(b, sortBy))
		if va != vb {
			return va < vb
		}
	}
	return a.ID < b.ID
}

func fieldString(e models.Expense, field string) string {
	switch field {
	case "title":
		return e.Title
	case "description":
		return e.Description
	case "status":
		return e.Status
	case "admin_name":
		return e.AdminName
	}
	return e.Title
}

// Filter applies the status, date, and search filters and sorts the result.
// The input slice is never mutated.
func Filter(snapshot []models.Expense, now time.Time, q Query) []models.Expense {
	out := make([]models.Expense, 0, len(snapshot))
	for _, e := range snapshot {
		if matchesStatus(e, q.Status) && matchesDate(e, now, q) && matchesSearch(e, q.Search) {
			out = append(out, e)
		}
	}

	desc := strings.EqualFold(q.SortOrder, "desc") || (q.SortOrder == "" && (q.SortBy == "" || q.SortBy == "created_at"))
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i], q.SortBy)
		}
		return less(out[i], out[j], q.SortBy)
	})
	return out
}

// Project filters, sorts, and slices the snapshot into one page. A page
// number past the end is clamped to the last page rather than erroring.
func Project(snapshot []models.Expense, now time.Time, q Query) Page {
	filtered := Filter(snapshot, now, q)

	perPage := q.PerPage
	if perPage < 1 {
		perPage = 10
	}

	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage

	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      filtered[start:end],
		TotalItems: total,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
	}
}
