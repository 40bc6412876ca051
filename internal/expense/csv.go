package expense

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"ihumure/internal/models"
)

// Header is the column set of an expense CSV export.
var Header = []string{"Title", "Amount", "Description", "Status", "Created Date"}

const exportDateLayout = "02 Jan 2006"

// WriteCSV writes the given rows as an RFC 4180 CSV document, header first.
// encoding/csv quotes fields containing commas, quotes, or newlines, so a
// hostile title cannot corrupt the export.
func WriteCSV(w io.Writer, rows []models.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range rows {
		record := []string{
			e.Title,
			e.Amount.String(),
			e.Description,
			e.Status,
			formatCreatedDate(e),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func formatCreatedDate(e models.Expense) string {
	t := createdAt(e)
	if t.IsZero() {
		return ""
	}
	return t.Format(exportDateLayout)
}

// ExportFilename names a download after the day it was generated, e.g.
// expenses_2025-06-15.csv.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("expenses_%s.csv", now.Format("2006-01-02"))
}
