package models

import "database/sql"

type Report struct {
	ID        int            `json:"id,omitempty" db:"id,omitempty"`
	AdminID   int            `json:"admin_id,omitempty" db:"admin_id,omitempty"`
	AdminName string         `json:"admin_name,omitempty" db:"admin_name,omitempty"`
	Title     string         `json:"title,omitempty" db:"title,omitempty"`
	Content   string         `json:"content,omitempty" db:"content,omitempty"`
	Category  string         `json:"category,omitempty" db:"category,omitempty"`
	CreatedAt sql.NullString `json:"created_at,omitempty" db:"created_at,omitempty"`
	UpdatedAt sql.NullString `json:"updated_at,omitempty" db:"updated_at,omitempty"`
}

type ReportReply struct {
	ID        int            `json:"id,omitempty" db:"id,omitempty"`
	ReportID  int            `json:"report_id,omitempty" db:"report_id,omitempty"`
	AdminID   int            `json:"admin_id,omitempty" db:"admin_id,omitempty"`
	AdminName string         `json:"admin_name,omitempty" db:"admin_name,omitempty"`
	Content   string         `json:"content,omitempty" db:"content,omitempty"`
	CreatedAt sql.NullString `json:"created_at,omitempty" db:"created_at,omitempty"`
}
