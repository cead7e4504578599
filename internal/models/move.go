package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Move is the database representation of a journal entry header.
type Move struct {
	MoveID       string    `db:"move_id"`
	CompanyID    string    `db:"company_id"`
	MoveDate     time.Time `db:"move_date"`
	CurrencyCode string    `db:"currency_code"`
	AuditFields
}

// MoveLine is the database representation of a journal entry line.
type MoveLine struct {
	LineID       string          `db:"line_id"`
	MoveID       string          `db:"move_id"`
	Sequence     int             `db:"sequence"`
	AccountID    string          `db:"account_id"`
	Name         string          `db:"name"`
	Debit        decimal.Decimal `db:"debit"`
	Credit       decimal.Decimal `db:"credit"`
	CurrencyCode string          `db:"currency_code"`
	AuditFields
}
