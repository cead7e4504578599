package repositories

import (
	"context"
	"time"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for official exchange rates.
type ExchangeRateReader interface {
	// FindExchangeRateByID retrieves a rate by its unique identifier.
	FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// FindRateEffective retrieves the latest rate for the currency pair
	// effective on or before asOf.
	FindRateEffective(ctx context.Context, fromCurrencyCode, toCurrencyCode string, asOf time.Time) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all rates for a currency pair, newest first.
	ListExchangeRates(ctx context.Context, fromCurrencyCode, toCurrencyCode string) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for official exchange rates.
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts a rate, or updates it when one already exists
	// for the same pair and effective date.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange-rate repository interfaces.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
