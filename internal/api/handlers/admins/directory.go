package admins

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"ihumure/internal/models"
	"ihumure/internal/repositories/sqlconnect"
	"ihumure/pkg/utils"
)

// FUNC TO GET THE ADMIN DIRECTORY
func GetAllAdminsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
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
		SELECT id, first_name, last_name, email, username, phone, position, role, inactive_status
		FROM admins
	`
	query = utils.AddSorting(r, query)

	query += " LIMIT ? OFFSET ?"
	args := []interface{}{limit, offset}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		utils.Logger.Errorf("error fetching admins: %v", err)
		utils.WriteError(w, "error fetching admins", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	var adminList []models.Admin
	for rows.Next() {
		var admin models.Admin
		err = rows.Scan(&admin.ID, &admin.FirstName, &admin.LastName, &admin.Email, &admin.Username, &admin.Phone, &admin.Position, &admin.Role, &admin.InactiveStatus)
		if err != nil {
			utils.Logger.Errorf("error fetching data: %v", err)
			utils.WriteError(w, "error fetching admins", http.StatusInternalServerError)
			return
		}
		adminList = append(adminList, admin)
	}

	if len(adminList) == 0 {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"status":  "success",
			"message": "no admins found",
			"data":    []models.Admin{},
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	response := struct {
		Status   string         `json:"status"`
		Count    int            `json:"count"`
		Page     int            `json:"page"`
		PageSize int            `json:"page_size"`
		Data     []models.Admin `json:"data"`
	}{
		Status:   "success",
		Count:    len(adminList),
		Page:     page,
		PageSize: limit,
		Data:     adminList,
	}

	utils.WriteJSON(w, response)
}

// FUNC TO GET ONE ADMIN BY ID
func GetAdminByIdHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := r.PathValue("id")
	adminID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.WriteError(w, "invalid admin ID", http.StatusBadRequest)
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

	var admin models.Admin
	query := `
		SELECT id, first_name, last_name, email, username, phone, position, role, inactive_status
		FROM admins WHERE id = ?
	`
	err = db.QueryRowContext(ctx, query, adminID).Scan(&admin.ID, &admin.FirstName, &admin.LastName, &admin.Email, &admin.Username, &admin.Phone, &admin.Position, &admin.Role, &admin.InactiveStatus)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "admin not found", http.StatusNotFound)
			return
		}
		utils.WriteError(w, "failed to retrieve admin", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   admin,
	})
}

// FUNC TO UPDATE OWN PROFILE
func UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
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
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
		Position  string `json:"position"`
	}

	var req request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.FirstName == "" || req.LastName == "" {
		utils.WriteError(w, "first name and last name are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err := db.ExecContext(ctx, `
		UPDATE admins SET first_name = ?, last_name = ?, phone = ?, position = ?, updated_at = ?
		WHERE id = ?
	`, req.FirstName, req.LastName, req.Phone, req.Position, time.Now().Format("2006-01-02 15:04:05"), adminID)
	if err != nil {
		utils.Logger.Errorf("failed to update profile for admin %d: %v", adminID, err)
		utils.WriteError(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "profile updated successfully",
	})
}

// FUNC TO DEACTIVATE OR REACTIVATE AN ADMIN (SUPERADMIN ONLY)
func SetAdminStatusHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	role, ok := r.Context().Value(utils.ContextKey("role")).(string)
	if !ok || role != "superadmin" {
		utils.WriteError(w, "only a superadmin can change admin status", http.StatusForbidden)
		return
	}

	idStr := r.PathValue("id")
	adminID, err := strconv.Atoi(idStr)
	if err != nil {
		utils.WriteError(w, "invalid admin ID", http.StatusBadRequest)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	type request struct {
		Inactive bool `json:"inactive"`
	}

	var req request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := db.ExecContext(ctx, "UPDATE admins SET inactive_status = ? WHERE id = ?", req.Inactive, adminID)
	if err != nil {
		utils.Logger.Errorf("failed to update admin status: %v", err)
		utils.WriteError(w, "failed to update admin status", http.StatusInternalServerError)
		return
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		utils.WriteError(w, "admin not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "admin status updated successfully",
	})
}
