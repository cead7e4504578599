package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	"github.com/partnerfx/partner_fx_app/internal/dto"
)

// ConversionSvcFacade is the standard (official-rate) currency conversion
// the custom partner rates are measured against.
type ConversionSvcFacade interface {
	// Convert values amount, denominated in fromCurrency, in the company's
	// functional currency using the official rate effective at date.
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrency string, companyID string, date time.Time) (decimal.Decimal, error)
}

// ExchangeRateSvcFacade exposes administration of the official rate table.
type ExchangeRateSvcFacade interface {
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
	GetEffectiveRate(ctx context.Context, fromCode, toCode string, asOf time.Time) (*domain.ExchangeRate, error)
	ListExchangeRates(ctx context.Context, fromCode, toCode string) ([]domain.ExchangeRate, error)
}
