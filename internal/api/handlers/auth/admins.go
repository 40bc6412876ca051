package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"ihumure/internal/api/handlers"
	"ihumure/internal/models"
	"ihumure/internal/repositories/sqlconnect"
	"ihumure/pkg/utils"
)

// FUNC TO REGISTER ADMINS
func RegisterAdminsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	type request struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Username  string `json:"username"`
		Password  string `json:"password"`
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

	req.Username = strings.ToLower(req.Username)
	req.Email = strings.ToLower(req.Email)

	if err := handlers.CheckBlankFields(req); err != nil {
		utils.WriteError(w, "missing required fields", http.StatusBadRequest)
		return
	}

	// Generate OTP and expiry
	duration, err := strconv.Atoi(os.Getenv("OTP_TOKEN_EXP_DURATION"))
	if err != nil {
		utils.Logger.Error("failed to read OTP_TOKEN_EXP_DURATION")
		utils.WriteError(w, "failed to generate otp", http.StatusInternalServerError)
		return
	}

	mins := time.Duration(duration)
	expiryTime := time.Now().Add(mins * time.Minute)
	expiryStr := expiryTime.Format(time.RFC3339)

	otp, err := utils.GenerateSecureOTP()
	if err != nil {
		utils.Logger.Errorf("failed to generate otp: %v", err)
		utils.WriteError(w, "failed to generate otp", http.StatusInternalServerError)
		return
	}

	hashedPwd, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.WriteError(w, "error hashing password", http.StatusInternalServerError)
		return
	}

	res, err := db.Exec(`
		INSERT INTO admins (first_name, last_name, email, username, password, phone, position, role, otp, otp_expires)
		VALUES (?, ?, ?, ?, ?, ?, ?, 'admin', ?, ?)
	`, req.FirstName, req.LastName, req.Email, req.Username, hashedPwd, req.Phone, req.Position, otp, expiryStr)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			utils.WriteError(w, "email or username already exists", http.StatusConflict)
			return
		}
		utils.Logger.Errorf("failed to insert admin: %v", err)
		utils.WriteError(w, "error signing up", http.StatusInternalServerError)
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		utils.Logger.Errorf("failed to get last insert ID: %v", err)
		utils.WriteError(w, "error signing up", http.StatusInternalServerError)
		return
	}

	go func(email, username, otp string, expiry time.Time) {
		if err := utils.SendOTPEmail(email, username, otp, expiry); err != nil {
			utils.Logger.Errorf("failed to send OTP email to %s: %v", email, err)
		}
	}(req.Email, req.Username, otp, expiryTime)

	newAdmin := models.Admin{
		ID:        int(id),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Phone:     req.Phone,
		Position:  req.Position,
		Role:      "admin",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "OTP sent to your email for verification",
		"data":    newAdmin,
	})
}

// FUNC TO CONFIRM OTP
func ConfirmOtpHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	type request struct {
		Otp string `json:"otp"`
	}

	var otp request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&otp); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if otp.Otp == "" {
		utils.WriteError(w, "please enter otp", http.StatusBadRequest)
		return
	}

	var admin models.Admin
	query := "SELECT id, email, username FROM admins WHERE otp = ? AND otp_expires > ?"
	err := db.QueryRow(query, otp.Otp, time.Now().Format(time.RFC3339)).Scan(&admin.ID, &admin.Email, &admin.Username)
	if err != nil {
		utils.WriteError(w, "invalid or expired otp", http.StatusBadRequest)
		return
	}

	go func(email, username string) {
		if err := utils.SendWelcomeEmail(email, username); err != nil {
			utils.Logger.Errorf("failed to send welcome email to %s: %v", email, err)
		}
	}(admin.Email, admin.Username)

	updateQuery := "UPDATE admins SET otp = NULL, otp_expires = NULL, email_confirmed = ? WHERE id = ?"

	_, err = db.Exec(updateQuery, true, admin.ID)
	if err != nil {
		utils.WriteError(w, "could not verify otp", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "OTP verified successfully, Welcome onboard!",
	})
}

// FUNC TO RESEND OTP
func ResendOtpHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	type request struct {
		Email string `json:"email"`
	}

	var req request
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	req.Email = strings.ToLower(req.Email)
	if req.Email == "" {
		utils.WriteError(w, "please enter your email", http.StatusBadRequest)
		return
	}

	var admin models.Admin
	query := "SELECT id, email, username, email_confirmed FROM admins WHERE email = ?"
	err := db.QueryRow(query, req.Email).Scan(&admin.ID, &admin.Email, &admin.Username, &admin.EmailConfirmed)
	if err != nil {
		utils.WriteError(w, "admin not found", http.StatusNotFound)
		return
	}

	if admin.EmailConfirmed {
		utils.WriteError(w, "email already verified", http.StatusBadRequest)
		return
	}

	duration, err := strconv.Atoi(os.Getenv("OTP_TOKEN_EXP_DURATION"))
	if err != nil {
		utils.Logger.Error("failed to read OTP_TOKEN_EXP_DURATION")
		utils.WriteError(w, "failed to generate otp", http.StatusInternalServerError)
		return
	}

	mins := time.Duration(duration)
	expiryTime := time.Now().Add(mins * time.Minute)
	expiryStr := expiryTime.Format(time.RFC3339)

	otp, err := utils.GenerateSecureOTP()
	if err != nil {
		utils.Logger.Errorf("failed to generate otp: %v", err)
		utils.WriteError(w, "failed to generate otp", http.StatusInternalServerError)
		return
	}

	updatedQuery := "UPDATE admins SET otp = ?, otp_expires = ? WHERE id = ?"
	_, err = db.Exec(updatedQuery, otp, expiryStr, admin.ID)
	if err != nil {
		utils.Logger.Errorf("failed to update admin otp: %v", err)
		utils.WriteError(w, "could not update otp", http.StatusInternalServerError)
		return
	}

	go func(email, username, otp string, expiry time.Time) {
		if err := utils.SendOTPEmail(email, username, otp, expiry); err != nil {
			utils.Logger.Errorf("failed to send OTP email to %s: %v", email, err)
		}
	}(admin.Email, admin.Username, otp, expiryTime)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "New OTP sent to your email successfully",
	})
}

// FUNC TO LOGIN
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	type loginRequest struct {
		AccountID string `json:"account_id"`
		Password  string `json:"password"`
	}

	var req loginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.AccountID == "" || req.Password == "" {
		utils.WriteError(w, "email or username and password are required", http.StatusBadRequest)
		return
	}

	admin := &models.Admin{}

	query := "SELECT id, first_name, last_name, email, username, password, inactive_status, role FROM admins WHERE username = ? OR email = ?"
	err = db.QueryRow(query, req.AccountID, req.AccountID).Scan(&admin.ID, &admin.FirstName, &admin.LastName, &admin.Email, &admin.Username, &admin.Password, &admin.InactiveStatus, &admin.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "admin not found", http.StatusNotFound)
			return
		}
		utils.Logger.Error("database query error")
		utils.WriteError(w, "internal error", http.StatusInternalServerError)
		return
	}

	if admin.InactiveStatus {
		utils.WriteError(w, "admin account is not active", http.StatusForbidden)
		return
	}

	if err := utils.VerifyPassword(req.Password, admin.Password); err != nil {
		utils.WriteError(w, "incorrect password or account ID", http.StatusForbidden)
		return
	}

	tokenString, err := utils.SignToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		utils.Logger.Error("could not create login token")
		utils.WriteError(w, "error signing in", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "Bearer",
		Value:    tokenString,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		Expires:  time.Now().Add(24 * time.Hour),
		SameSite: http.SameSiteStrictMode,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	response := map[string]interface{}{
		"status":  "success",
		"message": "login successful",
		"token":   tokenString,
		"admin": map[string]interface{}{
			"id":        admin.ID,
			"firstName": admin.FirstName,
			"lastName":  admin.LastName,
			"email":     admin.Email,
			"username":  admin.Username,
			"role":      admin.Role,
		},
	}

	json.NewEncoder(w).Encode(response)
}

// FUNC FOR LOGOUT
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "Bearer",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		Expires:  time.Unix(0, 0),
		SameSite: http.SameSiteStrictMode,
	})

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"message": "logged out successfully"}`))
}

// FUNC TO UPDATE PASSWORD
func UpdatePasswordHandler(w http.ResponseWriter, r *http.Request) {
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

	var req models.UpdatePasswordRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "all fields are required", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.CurrentPassword == "" || req.NewPassword == "" {
		utils.WriteError(w, "please enter all fields", http.StatusBadRequest)
		return
	}

	var adminRole string
	var username string
	var adminPassword string

	err := db.QueryRow("SELECT password, username, role FROM admins WHERE id = ?", adminID).Scan(&adminPassword, &username, &adminRole)
	if err != nil {
		utils.WriteError(w, "admin not found", http.StatusNotFound)
		return
	}

	err = utils.VerifyPassword(req.CurrentPassword, adminPassword)
	if err != nil {
		utils.WriteError(w, "the password you entered does not match the current password", http.StatusBadRequest)
		return
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.Logger.Error("failed to hash password")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	currentTime := time.Now().Format(time.RFC3339)

	_, err = db.Exec("UPDATE admins SET password = ?, password_changed_at = ? WHERE id = ?", hashedPassword, currentTime, adminID)
	if err != nil {
		utils.WriteError(w, "failed to update password", http.StatusInternalServerError)
		return
	}

	token, err := utils.SignToken(adminID, username, adminRole)
	if err != nil {
		utils.Logger.Error("could not create token")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "Bearer",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		Expires:  time.Now().Add(24 * time.Hour),
		SameSite: http.SameSiteStrictMode,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	response := map[string]interface{}{
		"status":  "success",
		"message": "password updated successfully",
	}

	json.NewEncoder(w).Encode(response)
}

// FUNC FOR FORGOT PASSWORD
func ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var req struct {
		Email string `json:"email"`
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" {
		utils.WriteError(w, "please enter email", http.StatusBadRequest)
		return
	}

	var admin models.Admin
	err := db.QueryRow("SELECT id, username FROM admins WHERE email = ?", req.Email).Scan(&admin.ID, &admin.Username)
	if err != nil {
		utils.WriteError(w, "admin not found", http.StatusNotFound)
		return
	}

	duration, err := strconv.Atoi(os.Getenv("RESET_TOKEN_EXP_DURATION"))
	if err != nil {
		utils.ErrorHandler(err, "failed to send password reset email")
		utils.WriteError(w, "failed to send reset email", http.StatusInternalServerError)
		return
	}

	mins := time.Duration(duration)
	expiryTime := time.Now().Add(mins * time.Minute)
	expiry := expiryTime.Format(time.RFC3339)

	tokenBytes := make([]byte, 32)
	_, err = rand.Read(tokenBytes)
	if err != nil {
		utils.ErrorHandler(err, "failed to send password reset email")
		utils.WriteError(w, "failed to send reset email", http.StatusInternalServerError)
		return
	}

	token := hex.EncodeToString(tokenBytes)

	hashedToken := sha256.Sum256(tokenBytes)
	hashedTokenString := hex.EncodeToString(hashedToken[:])

	_, err = db.Exec("UPDATE admins SET password_reset_token = ?, password_token_expires = ? WHERE id = ?", hashedTokenString, expiry, admin.ID)
	if err != nil {
		utils.Logger.Error("failed to send password reset email")
		utils.WriteError(w, "failed to send reset email", http.StatusInternalServerError)
		return
	}

	resetUrl := fmt.Sprintf("%s/admins/resetpassword/reset/%s", os.Getenv("DASHBOARD_BASE_URL"), token)

	go func(email, username, resetURL string, expiry time.Time) {
		if err := utils.SendPasswordResetEmail(email, username, resetURL, expiry); err != nil {
			utils.Logger.Errorf("failed to send reset email to %s: %v", email, err)
		}
	}(req.Email, admin.Username, resetUrl, expiryTime)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "password reset token sent to email",
	})
}

// FUNC TO RESET PASSWORD
func ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token := r.PathValue("resetcode")

	type request struct {
		NewPassword     string `json:"new_password"`
		ConfirmPassword string `json:"confirm_password"`
	}

	var req request

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.WriteError(w, "invalid values in request", http.StatusBadRequest)
		return
	}

	if req.NewPassword == "" || req.ConfirmPassword == "" {
		utils.WriteError(w, "All fields are required", http.StatusBadRequest)
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		utils.WriteError(w, "Passwords should match", http.StatusBadRequest)
		return
	}

	bytes, err := hex.DecodeString(token)
	if err != nil {
		utils.WriteError(w, "invalid or expired reset code", http.StatusBadRequest)
		return
	}

	hashedToken := sha256.Sum256(bytes)
	hashedTokenString := hex.EncodeToString(hashedToken[:])

	var admin models.Admin

	query := "SELECT id, email FROM admins WHERE password_reset_token = ? AND password_token_expires > ?"
	err = db.QueryRow(query, hashedTokenString, time.Now().Format(time.RFC3339)).Scan(&admin.ID, &admin.Email)
	if err != nil {
		utils.WriteError(w, "invalid or expired reset code", http.StatusBadRequest)
		return
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.ErrorHandler(err, "internal error")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	updateQuery := "UPDATE admins SET password = ?, password_reset_token = NULL, password_token_expires = NULL, password_changed_at = ? WHERE id = ?"
	_, err = db.Exec(updateQuery, hashedPassword, time.Now().Format(time.RFC3339), admin.ID)
	if err != nil {
		utils.Logger.Error("Could not update password")
		utils.WriteError(w, "could not update password", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "password reset successfully",
	})
}
