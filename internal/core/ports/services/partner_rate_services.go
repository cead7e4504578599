package services

import (
	"context"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	"github.com/partnerfx/partner_fx_app/internal/dto"
)

// PartnerRateSvcFacade exposes the custom partner-rate registry operations.
type PartnerRateSvcFacade interface {
	CreatePartnerRate(ctx context.Context, req dto.CreatePartnerRateRequest, creatorUserID string) (*domain.PartnerExchangeRate, error)
	GetPartnerRateByID(ctx context.Context, rateID string) (*domain.PartnerExchangeRate, error)
	ListPartnerRates(ctx context.Context, companyID string, limit, offset int) ([]domain.PartnerExchangeRate, error)
	UpdatePartnerRate(ctx context.Context, rateID string, req dto.UpdatePartnerRateRequest, updaterUserID string) (*domain.PartnerExchangeRate, error)
	DeletePartnerRate(ctx context.Context, rateID string, deleterUserID string) error
}

// PartnerSvcFacade exposes partner operations, including rate assignment.
type PartnerSvcFacade interface {
	CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, creatorUserID string) (*domain.Partner, error)
	GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)
	ListPartners(ctx context.Context, companyID string, limit, offset int) ([]domain.Partner, error)
	UpdatePartner(ctx context.Context, partnerID string, req dto.UpdatePartnerRequest, updaterUserID string) (*domain.Partner, error)
	AssignExchangeRate(ctx context.Context, partnerID string, req dto.AssignPartnerRateRequest, updaterUserID string) (*domain.Partner, error)
}
