package domain

import "github.com/shopspring/decimal"

// PartnerExchangeRate is a named, company-scoped custom exchange rate that can
// be attached to business partners. The rate is expressed as payment-currency
// units per one company-currency unit.
type PartnerExchangeRate struct {
	RateID     string          `json:"rateID"`     // Primary Key (UUID)
	Name       string          `json:"name"`       // Unique display label within a company
	CompanyID  string          `json:"companyID"`  // FK -> Company.companyID
	RateAmount decimal.Decimal `json:"rateAmount"` // Positive; no upper bound enforced
	AuditFields
}
