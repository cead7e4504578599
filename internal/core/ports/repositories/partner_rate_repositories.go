package repositories

import (
	"context"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
)

// PartnerRateReader defines read operations for custom partner rates.
type PartnerRateReader interface {
	// FindPartnerExchangeRateByID retrieves a rate by its unique identifier.
	FindPartnerExchangeRateByID(ctx context.Context, rateID string) (*domain.PartnerExchangeRate, error)

	// FindPartnerExchangeRateByName retrieves a rate by its display label within a company.
	FindPartnerExchangeRateByName(ctx context.Context, companyID, name string) (*domain.PartnerExchangeRate, error)

	// ListPartnerExchangeRates retrieves a paginated list of rates for a company.
	ListPartnerExchangeRates(ctx context.Context, companyID string, limit, offset int) ([]domain.PartnerExchangeRate, error)
}

// PartnerRateWriter defines write operations for custom partner rates.
type PartnerRateWriter interface {
	// SavePartnerExchangeRate persists a new rate.
	SavePartnerExchangeRate(ctx context.Context, rate domain.PartnerExchangeRate) error

	// UpdatePartnerExchangeRate updates an existing rate's name and amount.
	UpdatePartnerExchangeRate(ctx context.Context, rate domain.PartnerExchangeRate) error

	// DeletePartnerExchangeRate removes a rate. Partners referencing it keep a
	// dangling reference resolved to a zero rate on load.
	DeletePartnerExchangeRate(ctx context.Context, rateID string) error
}

// PartnerRateRepositoryFacade combines all partner-rate repository interfaces.
type PartnerRateRepositoryFacade interface {
	PartnerRateReader
	PartnerRateWriter
}
