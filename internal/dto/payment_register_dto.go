package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
)

// PaymentRegisterRequest defines the payload for previewing a prospective
// payment's exchange difference before the payment itself exists.
type PaymentRegisterRequest struct {
	CompanyID        string             `json:"companyID" binding:"required"`
	PartnerID        *string            `json:"partnerID,omitempty"`
	PartnerType      domain.PartnerType `json:"partnerType" binding:"required,oneof=CUSTOMER VENDOR"`
	PaymentType      domain.PaymentType `json:"paymentType" binding:"required,oneof=INBOUND OUTBOUND"`
	Amount           decimal.Decimal    `json:"amount" binding:"required"`
	CurrencyCode     string             `json:"currencyCode" binding:"required,len=3,uppercase"`
	RegistrationDate time.Time          `json:"registrationDate" binding:"required"`
}

// PaymentRegisterPreviewResponse mirrors the payment's derived fields without
// any persistence or ledger effect.
type PaymentRegisterPreviewResponse struct {
	ExchangeRate           decimal.Decimal `json:"exchangeRate"`
	PartnerExchangeRateID  *string         `json:"partnerExchangeRateID,omitempty"`
	ExchangeRateDifference decimal.Decimal `json:"exchangeRateDifference"`
	StandardCompanyAmount  decimal.Decimal `json:"standardCompanyAmount"`
	CustomCompanyAmount    decimal.Decimal `json:"customCompanyAmount"`

	// AdjustmentApplies reports whether a ledger adjustment would fire for an
	// equivalent real payment, and GainLossAccountID which account it would hit.
	AdjustmentApplies bool            `json:"adjustmentApplies"`
	GainLossAccountID string          `json:"gainLossAccountID,omitempty"`
	ExchangeAmount    decimal.Decimal `json:"exchangeAmount"`
	CustomExchange    decimal.Decimal `json:"customExchange"`
	ReducedAmount     decimal.Decimal `json:"reducedAmount"`
}
