package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          int             `json:"id,omitempty" db:"id,omitempty"`
	AdminID     int             `json:"admin_id,omitempty" db:"admin_id,omitempty"`
	AdminName   string          `json:"admin_name,omitempty" db:"admin_name,omitempty"`
	Title       string          `json:"title,omitempty" db:"title,omitempty"`
	Amount      decimal.Decimal `json:"amount,omitempty" db:"amount,omitempty"`
	Description string          `json:"description,omitempty" db:"description,omitempty"`
	Status      string          `json:"status,omitempty" db:"status,omitempty"`
	Reason      string          `json:"reason,omitempty" db:"reason,omitempty"`
	CreatedAt   sql.NullString  `json:"created_at,omitempty" db:"created_at,omitempty"`
	UpdatedAt   sql.NullString  `json:"updated_at,omitempty" db:"updated_at,omitempty"`
}
