package domain

import "github.com/shopspring/decimal"

// PartnerType classifies a business partner for payment processing.
type PartnerType string

const (
	Customer PartnerType = "CUSTOMER"
	Vendor   PartnerType = "VENDOR"
)

// Partner represents a business partner (customer or vendor) that payments are
// booked against. A partner may reference a PartnerExchangeRate; RateAmount is
// a read-through of the referenced rate, resolved when the partner is loaded,
// and zero when no rate is assigned.
type Partner struct {
	PartnerID             string      `json:"partnerID"` // Primary Key (UUID)
	CompanyID             string      `json:"companyID"` // FK -> Company.companyID
	Name                  string      `json:"name"`
	PartnerType           PartnerType `json:"partnerType"`
	PartnerExchangeRateID *string     `json:"partnerExchangeRateID,omitempty"` // FK -> PartnerExchangeRate.rateID, nullable
	AuditFields
	RateAmount decimal.Decimal `json:"rateAmount"` // Resolved from the referenced rate; not stored
}
