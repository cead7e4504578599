package repositories

import (
	"context"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
)

// PartnerReader defines read operations for partner data. Loaded partners have
// RateAmount resolved from the referenced partner exchange rate.
type PartnerReader interface {
	// FindPartnerByID retrieves a specific partner by its unique identifier.
	FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)

	// ListPartners retrieves a paginated list of partners for a company.
	ListPartners(ctx context.Context, companyID string, limit, offset int) ([]domain.Partner, error)
}

// PartnerWriter defines write operations for partner data.
type PartnerWriter interface {
	// SavePartner persists a new partner.
	SavePartner(ctx context.Context, partner domain.Partner) error

	// UpdatePartner updates an existing partner's details, including its
	// exchange rate reference.
	UpdatePartner(ctx context.Context, partner domain.Partner) error
}

// PartnerRepositoryFacade combines all partner repository interfaces.
type PartnerRepositoryFacade interface {
	PartnerReader
	PartnerWriter
}
