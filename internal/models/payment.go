package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the database representation of a payment record.
type Payment struct {
	PaymentID                        string          `db:"payment_id"`
	CompanyID                        string          `db:"company_id"`
	PartnerID                        *string         `db:"partner_id"`
	PartnerType                      string          `db:"partner_type"`
	PaymentType                      string          `db:"payment_type"`
	IsInternalTransfer               bool            `db:"is_internal_transfer"`
	Amount                           decimal.Decimal `db:"amount"`
	CurrencyCode                     string          `db:"currency_code"`
	PaymentDate                      time.Time       `db:"payment_date"`
	MoveID                           string          `db:"move_id"`
	IncomeCurrencyExchangeAccountID  string          `db:"income_currency_exchange_account_id"`
	ExpenseCurrencyExchangeAccountID string          `db:"expense_currency_exchange_account_id"`
	ExchangeRate                     decimal.Decimal `db:"exchange_rate"`
	PartnerExchangeRateID            *string         `db:"partner_exchange_rate_id"`
	ExchangeRateDifference           decimal.Decimal `db:"exchange_rate_difference"`
	AuditFields
}
