package expense

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ihumure/internal/models"
)

func TestWriteCSV_PlainRow(t *testing.T) {
	rows := []models.Expense{
		mkExpense(1, "Fuel", "42.5", "", "APPROVED", "2025-01-01T00:00:00Z"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Title,Amount,Description,Status,Created Date", lines[0])
	assert.Equal(t, "Fuel,42.5,,APPROVED,01 Jan 2025", lines[1])
}

func TestWriteCSV_QuotesHostileFields(t *testing.T) {
	rows := []models.Expense{
		mkExpense(1, `Venue, hall "A"`, "900", "first\nsecond", "PENDING", "2025-06-15 10:00:00"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	// The export must survive a round trip through a conforming CSV reader.
	rec, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rec, 2)
	assert.Equal(t, `Venue, hall "A"`, rec[1][0])
	assert.Equal(t, "first\nsecond", rec[1][2])
}

func TestWriteCSV_EmptyListStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Title,Amount,Description,Status,Created Date\n", buf.String())
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "expenses_2025-06-15.csv", ExportFilename(now))
}
