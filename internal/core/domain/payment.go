package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType indicates the direction of a payment.
type PaymentType string

const (
	Inbound  PaymentType = "INBOUND"
	Outbound PaymentType = "OUTBOUND"
)

// Payment represents a received or sent payment together with the custom
// exchange rate fields derived from its partner.
//
// ExchangeRate and PartnerExchangeRateID are snapshots taken when the payment's
// partner was last set; they do not track later edits to the rate registry.
type Payment struct {
	PaymentID          string      `json:"paymentID"` // Primary Key (UUID)
	CompanyID          string      `json:"companyID"` // FK -> Company.companyID
	PartnerID          *string     `json:"partnerID,omitempty"`
	PartnerType        PartnerType `json:"partnerType"`
	PaymentType        PaymentType `json:"paymentType"`
	IsInternalTransfer bool        `json:"isInternalTransfer"`
	Amount             decimal.Decimal `json:"amount"` // In payment currency, positive
	CurrencyCode       string          `json:"currencyCode"`
	PaymentDate        time.Time       `json:"paymentDate"`
	MoveID             string          `json:"moveID"` // FK -> Move.moveID, the backing journal entry

	// Gain/loss accounts, defaulted from the company at creation time but
	// independently editable afterwards.
	IncomeCurrencyExchangeAccountID  string `json:"incomeCurrencyExchangeAccountID"`
	ExpenseCurrencyExchangeAccountID string `json:"expenseCurrencyExchangeAccountID"`

	// Derived fields, refreshed by the payment service mutators.
	ExchangeRate           decimal.Decimal `json:"exchangeRate"`                    // Partner's custom rate; zero if no partner
	PartnerExchangeRateID  *string         `json:"partnerExchangeRateID,omitempty"` // Partner's rate reference
	ExchangeRateDifference decimal.Decimal `json:"exchangeRateDifference"`          // standard - custom, in company currency

	AuditFields
}
