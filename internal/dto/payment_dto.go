package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
)

// CreatePaymentRequest defines the payload for creating a payment.
//
// LiquidityAccountID and ReceivableAccountID are the two accounts the base
// move is generated against (debit and credit side respectively). The
// gain/loss account overrides are optional; company defaults apply when unset.
type CreatePaymentRequest struct {
	CompanyID          string             `json:"companyID" binding:"required"`
	PartnerID          *string            `json:"partnerID,omitempty"`
	PartnerType        domain.PartnerType `json:"partnerType" binding:"required,oneof=CUSTOMER VENDOR"`
	PaymentType        domain.PaymentType `json:"paymentType" binding:"required,oneof=INBOUND OUTBOUND"`
	IsInternalTransfer bool               `json:"isInternalTransfer"`
	Amount             decimal.Decimal    `json:"amount" binding:"required"`
	CurrencyCode       string             `json:"currencyCode" binding:"required,len=3,uppercase"`
	PaymentDate        time.Time          `json:"paymentDate" binding:"required"`

	LiquidityAccountID  string `json:"liquidityAccountID" binding:"required"`
	ReceivableAccountID string `json:"receivableAccountID" binding:"required"`

	IncomeCurrencyExchangeAccountID  *string `json:"incomeCurrencyExchangeAccountID,omitempty"`
	ExpenseCurrencyExchangeAccountID *string `json:"expenseCurrencyExchangeAccountID,omitempty"`
}

// UpdatePaymentRequest defines the payload for updating a payment. Nil fields
// are left unchanged. A PartnerID pointing at an empty string clears the
// partner (and with it the derived exchange rate fields).
type UpdatePaymentRequest struct {
	Amount                           *decimal.Decimal `json:"amount,omitempty"`
	PaymentDate                      *time.Time       `json:"paymentDate,omitempty"`
	PartnerID                        *string          `json:"partnerID,omitempty"`
	IncomeCurrencyExchangeAccountID  *string          `json:"incomeCurrencyExchangeAccountID,omitempty"`
	ExpenseCurrencyExchangeAccountID *string          `json:"expenseCurrencyExchangeAccountID,omitempty"`
}

// MoveLineResponse defines the API representation of a journal entry line.
type MoveLineResponse struct {
	LineID       string          `json:"lineID"`
	Sequence     int             `json:"sequence"`
	AccountID    string          `json:"accountID"`
	Name         string          `json:"name"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	CurrencyCode string          `json:"currencyCode"`
}

// MoveResponse defines the API representation of a journal entry.
type MoveResponse struct {
	MoveID       string             `json:"moveID"`
	CompanyID    string             `json:"companyID"`
	MoveDate     time.Time          `json:"moveDate"`
	CurrencyCode string             `json:"currencyCode"`
	Lines        []MoveLineResponse `json:"lines"`
}

// PaymentResponse defines the API representation of a payment, including the
// derived exchange rate fields.
type PaymentResponse struct {
	PaymentID                        string             `json:"paymentID"`
	CompanyID                        string             `json:"companyID"`
	PartnerID                        *string            `json:"partnerID,omitempty"`
	PartnerType                      domain.PartnerType `json:"partnerType"`
	PaymentType                      domain.PaymentType `json:"paymentType"`
	IsInternalTransfer               bool               `json:"isInternalTransfer"`
	Amount                           decimal.Decimal    `json:"amount"`
	CurrencyCode                     string             `json:"currencyCode"`
	PaymentDate                      time.Time          `json:"paymentDate"`
	MoveID                           string             `json:"moveID"`
	IncomeCurrencyExchangeAccountID  string             `json:"incomeCurrencyExchangeAccountID"`
	ExpenseCurrencyExchangeAccountID string             `json:"expenseCurrencyExchangeAccountID"`
	ExchangeRate                     decimal.Decimal    `json:"exchangeRate"`
	PartnerExchangeRateID            *string            `json:"partnerExchangeRateID,omitempty"`
	ExchangeRateDifference           decimal.Decimal    `json:"exchangeRateDifference"`
	CreatedAt                        time.Time          `json:"createdAt"`
	LastUpdatedAt                    time.Time          `json:"lastUpdatedAt"`
}

// ToMoveLineResponse converts a domain.MoveLine to its response DTO.
func ToMoveLineResponse(l *domain.MoveLine) MoveLineResponse {
	return MoveLineResponse{
		LineID:       l.LineID,
		Sequence:     l.Sequence,
		AccountID:    l.AccountID,
		Name:         l.Name,
		Debit:        l.Debit,
		Credit:       l.Credit,
		CurrencyCode: l.CurrencyCode,
	}
}

// ToMoveResponse converts a domain.Move to its response DTO.
func ToMoveResponse(m *domain.Move) MoveResponse {
	lines := make([]MoveLineResponse, len(m.Lines))
	for i := range m.Lines {
		lines[i] = ToMoveLineResponse(&m.Lines[i])
	}
	return MoveResponse{
		MoveID:       m.MoveID,
		CompanyID:    m.CompanyID,
		MoveDate:     m.MoveDate,
		CurrencyCode: m.CurrencyCode,
		Lines:        lines,
	}
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:                        p.PaymentID,
		CompanyID:                        p.CompanyID,
		PartnerID:                        p.PartnerID,
		PartnerType:                      p.PartnerType,
		PaymentType:                      p.PaymentType,
		IsInternalTransfer:               p.IsInternalTransfer,
		Amount:                           p.Amount,
		CurrencyCode:                     p.CurrencyCode,
		PaymentDate:                      p.PaymentDate,
		MoveID:                           p.MoveID,
		IncomeCurrencyExchangeAccountID:  p.IncomeCurrencyExchangeAccountID,
		ExpenseCurrencyExchangeAccountID: p.ExpenseCurrencyExchangeAccountID,
		ExchangeRate:                     p.ExchangeRate,
		PartnerExchangeRateID:            p.PartnerExchangeRateID,
		ExchangeRateDifference:           p.ExchangeRateDifference,
		CreatedAt:                        p.CreatedAt,
		LastUpdatedAt:                    p.LastUpdatedAt,
	}
}

// ToPaymentResponses converts a slice of payments to response DTOs.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}
