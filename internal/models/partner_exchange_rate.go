package models

import "github.com/shopspring/decimal"

// PartnerExchangeRate is the database representation of a custom partner rate.
type PartnerExchangeRate struct {
	RateID     string          `db:"rate_id"`
	Name       string          `db:"name"`
	CompanyID  string          `db:"company_id"`
	RateAmount decimal.Decimal `db:"rate_amount"`
	AuditFields
}
