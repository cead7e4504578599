package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the official (standard) conversion rate between two
// currencies effective from a specific date. This is the authoritative market
// rate the custom partner rates are compared against.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"` // Primary Key (UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"` // Units of To per one From
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
