package expenses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ihumure/internal/expense"
	"ihumure/internal/models"
	"ihumure/internal/repositories/sqlconnect"
	"ihumure/pkg/utils"

	"github.com/shopspring/decimal"
)

// parseProjectorQuery maps the list/export query parameters onto a projector
// query. A CUSTOM range with a missing or malformed bound is an error here so
// the handler can refuse the request up front.
func parseProjectorQuery(r *http.Request) (expense.Query, error) {
	q := expense.Query{
		Status:    r.URL.Query().Get("status"),
		Search:    r.URL.Query().Get("search"),
		SortBy:    strings.ToLower(r.URL.Query().Get("sortBy")),
		SortOrder: r.URL.Query().Get("sortOrder"),
	}

	dateRange := strings.ToUpper(r.URL.Query().Get("date_range"))
	if dateRange == "" {
		dateRange = string(expense.DateAll)
	}
	switch expense.DateRange(dateRange) {
	case expense.DateAll, expense.DateToday, expense.DateWeek, expense.DateMonth, expense.DateCustom:
		q.DateRange = expense.DateRange(dateRange)
	default:
		return q, fmt.Errorf("invalid date_range %q", dateRange)
	}

	if start := r.URL.Query().Get("start_date"); start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return q, errors.New("start_date must be YYYY-MM-DD")
		}
		q.StartDate = t
	}
	if end := r.URL.Query().Get("end_date"); end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			return q, errors.New("end_date must be YYYY-MM-DD")
		}
		q.EndDate = t
	}

	if q.Status != "" && !strings.EqualFold(q.Status, "ALL") {
		if _, err := expense.ParseStatus(q.Status); err != nil {
			return q, err
		}
	}

	q.Page, q.PerPage = utils.GetPaginationParams(r)

	return q, q.Validate()
}

// fetchSnapshot loads every expense with its creator's display name. The
// projector works over this full snapshot, mirroring how the dashboard holds
// one fetched copy and derives every view from it.
func fetchSnapshot(ctx context.Context, db *sql.DB) ([]models.Expense, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT e.id, e.admin_id, CONCAT(a.first_name, ' ', a.last_name), e.title, e.amount, e.description, e.status, COALESCE(e.reason, ''), e.created_at, e.updated_at
		FROM expenses e
		JOIN admins a ON a.id = e.admin_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshot []models.Expense
	for rows.Next() {
		var e models.Expense
		err = rows.Scan(&e.ID, &e.AdminID, &e.AdminName, &e.Title, &e.Amount, &e.Description, &e.Status, &e.Reason, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		snapshot = append(snapshot, e)
	}
	return snapshot, rows.Err()
}

// FUNC TO CREATE AN EXPENSE REQUEST
func CreateExpenseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	idFloat, ok := r.Context().Value(utils.ContextKey("userId")).(float64)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	adminID := int(idFloat)

	type request struct {
		Title       string          `json:"title"`
		Amount      decimal.Decimal `json:"amount"`
		Description string          `json:"description"`
	}

	var req request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		utils.WriteError(w, "title is required", http.StatusBadRequest)
		return
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		utils.WriteError(w, "amount must be greater than 0", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ExecContext(ctx, `
		INSERT INTO expenses (admin_id, title, amount, description, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, adminID, req.Title, req.Amount, req.Description, expense.StatusPending, time.Now().Format("2006-01-02 15:04:05"))
	if err != nil {
		utils.Logger.Errorf("failed to create expense: %v", err)
		utils.WriteError(w, "failed to create expense", http.StatusInternalServerError)
		return
	}

	expenseID, _ := res.LastInsertId()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "expense request submitted",
		"data": map[string]interface{}{
			"id":     expenseID,
			"title":  req.Title,
			"amount": req.Amount,
			"status": expense.StatusPending,
		},
	})
}

// FUNC TO GET THE PROJECTED EXPENSE LIST
func GetAllExpensesHandler(w http.ResponseWriter, r *http.Request) {
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

	page := expense.Project(snapshot, time.Now(), q)
	if page.Items == nil {
		page.Items = []models.Expense{}
	}

	response := struct {
		Status     string           `json:"status"`
		Count      int              `json:"count"`
		Page       int              `json:"page"`
		PageSize   int              `json:"page_size"`
		TotalItems int              `json:"total_items"`
		TotalPages int              `json:"total_pages"`
		Data       []models.Expense `json:"data"`
	}{
		Status:     "success",
		Count:      len(page.Items),
		Page:       page.Page,
		PageSize:   page.PerPage,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		Data:       page.Items,
	}

	utils.WriteJSON(w, response)
}

// FUNC TO GET ONE EXPENSE BY ID
func GetExpenseByIdHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := r.PathValue("id")
	expenseID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.WriteError(w, "invalid expense ID", http.StatusBadRequest)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var e models.Expense
	err = db.QueryRowContext(ctx, `
		SELECT e.id, e.admin_id, CONCAT(a.first_name, ' ', a.last_name), e.title, e.amount, e.description, e.status, COALESCE(e.reason, ''), e.created_at, e.updated_at
		FROM expenses e
		JOIN admins a ON a.id = e.admin_id
		WHERE e.id = ?
	`, expenseID).Scan(&e.ID, &e.AdminID, &e.AdminName, &e.Title, &e.Amount, &e.Description, &e.Status, &e.Reason, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "expense not found", http.StatusNotFound)
			return
		}
		utils.WriteError(w, "failed to retrieve expense", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   e,
	})
}

// FUNC TO TRANSITION AN EXPENSE STATUS
func UpdateExpenseStatusHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := r.PathValue("id")
	expenseID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.WriteError(w, "invalid expense ID", http.StatusBadRequest)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	type request struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}

	var req request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	target, err := expense.ParseStatus(req.Status)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	reason := strings.TrimSpace(req.Reason)
	if target == expense.StatusRejected && reason == "" {
		utils.WriteError(w, "a reason is required to reject an expense", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		utils.Logger.Errorf("failed to start transaction: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var currentStr, title, creatorEmail, creatorFirstName string
	var amount decimal.Decimal
	err = tx.QueryRowContext(ctx, `
		SELECT e.status, e.title, e.amount, a.email, a.first_name
		FROM expenses e
		JOIN admins a ON a.id = e.admin_id
		WHERE e.id = ?
	`, expenseID).Scan(&currentStr, &title, &amount, &creatorEmail, &creatorFirstName)
	if err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			utils.WriteError(w, "expense not found", http.StatusNotFound)
			return
		}
		utils.WriteError(w, "failed to retrieve expense", http.StatusInternalServerError)
		return
	}

	current, err := expense.ParseStatus(currentStr)
	if err != nil {
		tx.Rollback()
		utils.Logger.Errorf("expense %d has corrupt status %q", expenseID, currentStr)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := expense.CheckTransition(current, target, reason); err != nil {
		tx.Rollback()
		utils.WriteError(w, err.Error(), http.StatusConflict)
		return
	}

	// The status guard in the WHERE clause makes the transition atomic: if a
	// concurrent session moved the expense first, zero rows are affected and
	// the request is refused instead of silently overwriting.
	var result sql.Result
	now := time.Now().Format("2006-01-02 15:04:05")
	if target == expense.StatusRejected {
		result, err = tx.ExecContext(ctx, "UPDATE expenses SET status = ?, reason = ?, updated_at = ? WHERE id = ? AND status = ?",
			target, reason, now, expenseID, current)
	} else {
		result, err = tx.ExecContext(ctx, "UPDATE expenses SET status = ?, updated_at = ? WHERE id = ? AND status = ?",
			target, now, expenseID, current)
	}
	if err != nil {
		tx.Rollback()
		utils.Logger.Errorf("failed to update expense status: %v", err)
		utils.WriteError(w, "failed to update expense status", http.StatusInternalServerError)
		return
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		tx.Rollback()
		utils.WriteError(w, "expense was modified by another session, please reload", http.StatusConflict)
		return
	}

	if err := tx.Commit(); err != nil {
		utils.WriteError(w, "failed to commit transaction", http.StatusInternalServerError)
		return
	}

	go func(email, firstName, title, amount string, status expense.Status, reason string) {
		if err := utils.SendExpenseDecisionEmail(email, firstName, title, amount, string(status), reason, time.Now()); err != nil {
			utils.Logger.Errorf("failed to send decision email to %s: %v", email, err)
		}
	}(creatorEmail, creatorFirstName, title, amount.String(), target, reason)

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": fmt.Sprintf("expense is now %s", target),
		"data": map[string]interface{}{
			"id":     expenseID,
			"status": target,
		},
	})
}

// FUNC TO EDIT AN EXPENSE (TITLE/AMOUNT/DESCRIPTION, INDEPENDENT OF STATUS)
func UpdateExpenseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := r.PathValue("id")
	expenseID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.WriteError(w, "invalid expense ID", http.StatusBadRequest)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	type request struct {
		Title       string          `json:"title"`
		Amount      decimal.Decimal `json:"amount"`
		Description string          `json:"description"`
	}

	var req request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		utils.WriteError(w, "title is required", http.StatusBadRequest)
		return
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		utils.WriteError(w, "amount must be greater than 0", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.ExecContext(ctx, `
		UPDATE expenses SET title = ?, amount = ?, description = ?, updated_at = ?
		WHERE id = ?
	`, req.Title, req.Amount, req.Description, time.Now().Format("2006-01-02 15:04:05"), expenseID)
	if err != nil {
		utils.Logger.Errorf("failed to update expense: %v", err)
		utils.WriteError(w, "failed to update expense", http.StatusInternalServerError)
		return
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		utils.WriteError(w, "expense not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "expense updated successfully",
	})
}

// FUNC TO DELETE AN EXPENSE (UNCONDITIONAL, ANY STATUS)
func DeleteExpenseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := r.PathValue("id")
	expenseID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.WriteError(w, "invalid expense ID", http.StatusBadRequest)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		utils.Logger.Errorf("failed to delete expense: %v", err)
		utils.WriteError(w, "failed to delete expense", http.StatusInternalServerError)
		return
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		utils.WriteError(w, "expense not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "expense deleted successfully",
	})
}
