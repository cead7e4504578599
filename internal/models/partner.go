package models

import "github.com/shopspring/decimal"

// Partner is the database representation of a business partner.
// RateAmount is populated by joining partner_exchange_rates; it is not a
// column on the partners table itself.
type Partner struct {
	PartnerID             string  `db:"partner_id"`
	CompanyID             string  `db:"company_id"`
	Name                  string  `db:"name"`
	PartnerType           string  `db:"partner_type"`
	PartnerExchangeRateID *string `db:"partner_exchange_rate_id"`
	AuditFields
	RateAmount decimal.Decimal `db:"rate_amount"`
}
