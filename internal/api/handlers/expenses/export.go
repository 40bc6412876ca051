package expenses

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ihumure/internal/expense"
	"ihumure/internal/repositories/sqlconnect"
	"ihumure/pkg/utils"
)

// FUNC TO EXPORT THE FILTERED EXPENSE LIST AS CSV
func ExportExpensesCSVHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	q, err := parseProjectorQuery(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	snapshot, err := fetchSnapshot(ctx, db)
	if err != nil {
		utils.Logger.Errorf("error fetching expenses: %v", err)
		utils.WriteError(w, "error fetching expenses", http.StatusInternalServerError)
		return
	}

	// Export covers the whole filtered view, not just the current page.
	now := time.Now()
	rows := expense.Filter(snapshot, now, q)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", expense.ExportFilename(now)))

	if err := expense.WriteCSV(w, rows); err != nil {
		utils.Logger.Errorf("error writing CSV export: %v", err)
	}
}
