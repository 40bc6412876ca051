package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ihumure/internal/models"
	"ihumure/internal/repositories/sqlconnect"
	"ihumure/pkg/utils"
)

// FUNC TO CREATE A REPORT
func CreateReportHandler(w http.ResponseWriter, r *http.Request) {
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
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
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
	if req.Title == "" || strings.TrimSpace(req.Content) == "" {
		utils.WriteError(w, "title and content are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ExecContext(ctx, `
		INSERT INTO reports (admin_id, title, content, category, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, adminID, req.Title, req.Content, req.Category, time.Now().Format("2006-01-02 15:04:05"))
	if err != nil {
		utils.Logger.Errorf("failed to create report: %v", err)
		utils.WriteError(w, "failed to create report", http.StatusInternalServerError)
		return
	}

	reportID, _ := res.LastInsertId()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "report created successfully",
		"data": map[string]interface{}{
			"id":    reportID,
			"title": req.Title,
		},
	})
}

// FUNC TO GET ALL REPORTS
func GetAllReportsHandler(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	page, limit := utils.GetPaginationParams(r)
	offset := (page - 1) * limit

	query := `
		SELECT r.id, r.admin_id, CONCAT(a.first_name, ' ', a.last_name), r.title, r.content, r.category, r.created_at, r.updated_at
		FROM reports r
		JOIN admins a ON a.id = r.admin_id
	`
	args := []interface{}{}

	if search := r.URL.Query().Get("search"); search != "" {
		query += " WHERE (r.title LIKE ? OR r.content LIKE ?)"
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}

	query = utils.AddSorting(r, query)

	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		utils.Logger.Errorf("error fetching reports: %v", err)
		utils.WriteError(w, "error fetching reports", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	var reportList []models.Report
	for rows.Next() {
		var report models.Report
		err = rows.Scan(&report.ID, &report.AdminID, &report.AdminName, &report.Title, &report.Content, &report.Category, &report.CreatedAt, &report.UpdatedAt)
		if err != nil {
			utils.Logger.Errorf("error fetching data: %v", err)
			utils.WriteError(w, "error fetching reports", http.StatusInternalServerError)
			return
		}
		reportList = append(reportList, report)
	}

	if len(reportList) == 0 {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"status":  "success",
			"message": "no reports found",
			"data":    []models.Report{},
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	response := struct {
		Status   string          `json:"status"`
		Count    int             `json:"count"`
		Page     int             `json:"page"`
		PageSize int             `json:"page_size"`
		Data     []models.Report `json:"data"`
	}{
		Status:   "success",
		Count:    len(reportList),
		Page:     page,
		PageSize: limit,
		Data:     reportList,
	}

	utils.WriteJSON(w, response)
}

// FUNC TO GET A REPORT WITH ITS REPLIES
func GetReportByIdHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := r.PathValue("id")
	reportID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.WriteError(w, "invalid report ID", http.StatusBadRequest)
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

	var report models.Report
	err = db.QueryRowContext(ctx, `
		SELECT r.id, r.admin_id, CONCAT(a.first_name, ' ', a.last_name), r.title, r.content, r.category, r.created_at, r.updated_at
		FROM reports r
		JOIN admins a ON a.id = r.admin_id
		WHERE r.id = ?
	`, reportID).Scan(&report.ID, &report.AdminID, &report.AdminName, &report.Title, &report.Content, &report.Category, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "report not found", http.StatusNotFound)
			return
		}
		utils.WriteError(w, "failed to retrieve report", http.StatusInternalServerError)
		return
	}

	rows, err := db.QueryContext(ctx, `
		SELECT rr.id, rr.report_id, rr.admin_id, CONCAT(a.first_name, ' ', a.last_name), rr.content, rr.created_at
		FROM report_replies rr
		JOIN admins a ON a.id = rr.admin_id
		WHERE rr.report_id = ?
		ORDER BY rr.created_at ASC
	`, reportID)
	if err != nil {
		utils.Logger.Errorf("error fetching replies: %v", err)
		utils.WriteError(w, "error fetching replies", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	replies := []models.ReportReply{}
	for rows.Next() {
		var reply models.ReportReply
		err = rows.Scan(&reply.ID, &reply.ReportID, &reply.AdminID, &reply.AdminName, &reply.Content, &reply.CreatedAt)
		if err != nil {
			utils.Logger.Errorf("error fetching data: %v", err)
			utils.WriteError(w, "error fetching replies", http.StatusInternalServerError)
			return
		}
		replies = append(replies, reply)
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"report":  report,
			"replies": replies,
		},
	})
}

// FUNC TO UPDATE A REPORT (AUTHOR ONLY)
func UpdateReportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := r.PathValue("id")
	reportID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.WriteError(w, "invalid report ID", http.StatusBadRequest)
		return
	}

	idFloat, ok := r.Context().Value(utils.ContextKey("userId")).(float64)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	adminID := int(idFloat)

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	type request struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
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
	if req.Title == "" || strings.TrimSpace(req.Content) == "" {
		utils.WriteError(w, "title and content are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var authorID int
	err = db.QueryRowContext(ctx, "SELECT admin_id FROM reports WHERE id = ?", reportID).Scan(&authorID)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "report not found", http.StatusNotFound)
			return
		}
		utils.WriteError(w, "failed to retrieve report", http.StatusInternalServerError)
		return
	}

	if authorID != adminID {
		utils.WriteError(w, "only the author can edit this report", http.StatusForbidden)
		return
	}

	_, err = db.ExecContext(ctx, `
		UPDATE reports SET title = ?, content = ?, category = ?, updated_at = ?
		WHERE id = ?
	`, req.Title, req.Content, req.Category, time.Now().Format("2006-01-02 15:04:05"), reportID)
	if err != nil {
		utils.Logger.Errorf("failed to update report: %v", err)
		utils.WriteError(w, "failed to update report", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "report updated successfully",
	})
}

// FUNC TO DELETE A REPORT
func DeleteReportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := r.PathValue("id")
	reportID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.WriteError(w, "invalid report ID", http.StatusBadRequest)
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

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		utils.Logger.Errorf("failed to start transaction: %v", err)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM report_replies WHERE report_id = ?", reportID); err != nil {
		tx.Rollback()
		utils.WriteError(w, "failed to delete report replies", http.StatusInternalServerError)
		return
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", reportID)
	if err != nil {
		tx.Rollback()
		utils.WriteError(w, "failed to delete report", http.StatusInternalServerError)
		return
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		tx.Rollback()
		utils.WriteError(w, "report not found", http.StatusNotFound)
		return
	}

	if err := tx.Commit(); err != nil {
		utils.WriteError(w, "failed to commit transaction", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "report deleted successfully",
	})
}

// FUNC TO REPLY TO A REPORT
func CreateReplyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := r.PathValue("id")
	reportID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.WriteError(w, "invalid report ID", http.StatusBadRequest)
		return
	}

	idFloat, ok := r.Context().Value(utils.ContextKey("userId")).(float64)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	adminID := int(idFloat)

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	type request struct {
		Content string `json:"content"`
	}

	var req request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Content) == "" {
		utils.WriteError(w, "reply content is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var reportTitle, authorEmail, authorName string
	err = db.QueryRowContext(ctx, `
		SELECT r.title, a.email, a.first_name
		FROM reports r
		JOIN admins a ON a.id = r.admin_id
		WHERE r.id = ?
	`, reportID).Scan(&reportTitle, &authorEmail, &authorName)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "report not found", http.StatusNotFound)
			return
		}
		utils.WriteError(w, "failed to retrieve report", http.StatusInternalServerError)
		return
	}

	var replierName string
	err = db.QueryRowContext(ctx, "SELECT CONCAT(first_name, ' ', last_name) FROM admins WHERE id = ?", adminID).Scan(&replierName)
	if err != nil {
		utils.WriteError(w, "failed to retrieve admin", http.StatusInternalServerError)
		return
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO report_replies (report_id, admin_id, content, created_at)
		VALUES (?, ?, ?, ?)
	`, reportID, adminID, req.Content, time.Now().Format("2006-01-02 15:04:05"))
	if err != nil {
		utils.Logger.Errorf("failed to create reply: %v", err)
		utils.WriteError(w, "failed to create reply", http.StatusInternalServerError)
		return
	}

	replyID, _ := res.LastInsertId()

	snippet := req.Content
	if len(snippet) > 200 {
		snippet = snippet[:200] + "…"
	}

	go func(email, authorName, reportTitle, replierName, snippet string) {
		if err := utils.SendReportReplyEmail(email, authorName, reportTitle, replierName, snippet); err != nil {
			utils.Logger.Errorf("failed to send reply notification to %s: %v", email, err)
		}
	}(authorEmail, authorName, reportTitle, replierName, snippet)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "reply added successfully",
		"data": map[string]interface{}{
			"id":        replyID,
			"report_id": reportID,
		},
	})
}
