package models

type Admin struct {
	ID                   int    `json:"id,omitempty" db:"id,omitempty"`
	FirstName            string `json:"first_name,omitempty" db:"first_name,omitempty"`
	LastName             string `json:"last_name,omitempty" db:"last_name,omitempty"`
	Email                string `json:"email,omitempty" db:"email,omitempty"`
	Username             string `json:"username,omitempty" db:"username,omitempty"`
	Password             string `json:"password,omitempty" db:"password,omitempty"`
	Phone                string `json:"phone,omitempty" db:"phone,omitempty"`
	Position             string `json:"position,omitempty" db:"position,omitempty"`
	Role                 string `json:"role,omitempty" db:"role,omitempty"`
	InactiveStatus       bool   `json:"inactive_status,omitempty" db:"inactive_status,omitempty"`
	EmailConfirmed       bool   `json:"email_confirmed,omitempty" db:"email_confirmed,omitempty"`
	Otp                  string `json:"otp,omitempty" db:"otp,omitempty"`
	OtpExpires           string `json:"otp_expires,omitempty" db:"otp_expires,omitempty"`
	PasswordResetToken   string `json:"password_reset_token,omitempty" db:"password_reset_token,omitempty"`
	PasswordTokenExpires string `json:"password_token_expires,omitempty" db:"password_token_expires,omitempty"`
	PasswordChangedAt    string `json:"password_changed_at,omitempty" db:"password_changed_at,omitempty"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
