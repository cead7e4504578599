package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partnerfx/partner_fx_app/internal/apperrors"
	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
	"github.com/partnerfx/partner_fx_app/internal/dto"
	"github.com/partnerfx/partner_fx_app/internal/middleware"
)

// partnerService provides business logic for business partners and their
// custom rate assignment.
type partnerService struct {
	partnerRepo portsrepo.PartnerRepositoryFacade
	rateRepo    portsrepo.PartnerRateReader
}

// NewPartnerService creates a new PartnerSvcFacade.
func NewPartnerService(partnerRepo portsrepo.PartnerRepositoryFacade, rateRepo portsrepo.PartnerRateReader) portssvc.PartnerSvcFacade {
	return &partnerService{
		partnerRepo: partnerRepo,
		rateRepo:    rateRepo,
	}
}

var _ portssvc.PartnerSvcFacade = (*partnerService)(nil)

// CreatePartner creates a new partner, optionally with a rate assigned.
func (s *partnerService) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, creatorUserID string) (*domain.Partner, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rateAmount := decimal.Zero
	if req.PartnerExchangeRateID != nil {
		rate, err := s.rateRepo.FindPartnerExchangeRateByID(ctx, *req.PartnerExchangeRateID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve partner exchange rate %s: %w", *req.PartnerExchangeRateID, err)
		}
		if rate.CompanyID != req.CompanyID {
			return nil, fmt.Errorf("%w: rate %s belongs to a different company", apperrors.ErrValidation, rate.RateID)
		}
		rateAmount = rate.RateAmount
	}

	now := time.Now().UTC()
	partner := domain.Partner{
		PartnerID:             uuid.NewString(),
		CompanyID:             req.CompanyID,
		Name:                  req.Name,
		PartnerType:           req.PartnerType,
		PartnerExchangeRateID: req.PartnerExchangeRateID,
		RateAmount:            rateAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partnerRepo.SavePartner(ctx, partner); err != nil {
		logger.Error("Failed to save partner", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save partner: %w", err)
	}

	logger.Info("Partner created", slog.String("partner_id", partner.PartnerID), slog.String("company_id", partner.CompanyID))
	return &partner, nil
}

// GetPartnerByID retrieves a partner with its rate resolved.
func (s *partnerService) GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find partner %s: %w", partnerID, err)
	}
	return partner, nil
}

// ListPartners retrieves a paginated list of partners for a company.
func (s *partnerService) ListPartners(ctx context.Context, companyID string, limit, offset int) ([]domain.Partner, error) {
	if limit <= 0 {
		limit = 20
	}
	partners, err := s.partnerRepo.ListPartners(ctx, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	return partners, nil
}

// UpdatePartner updates a partner's name and/or type.
func (s *partnerService) UpdatePartner(ctx context.Context, partnerID string, req dto.UpdatePartnerRequest, updaterUserID string) (*domain.Partner, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find partner %s: %w", partnerID, err)
	}

	updated := false
	if req.Name != nil && *req.Name != partner.Name {
		partner.Name = *req.Name
		updated = true
	}
	if req.PartnerType != nil && *req.PartnerType != partner.PartnerType {
		partner.PartnerType = *req.PartnerType
		updated = true
	}

	if !updated {
		return partner, nil
	}

	partner.LastUpdatedAt = time.Now().UTC()
	partner.LastUpdatedBy = updaterUserID

	if err := s.partnerRepo.UpdatePartner(ctx, *partner); err != nil {
		logger.Error("Failed to update partner", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}

	logger.Info("Partner updated", slog.String("partner_id", partnerID))
	return partner, nil
}

// AssignExchangeRate sets or clears a partner's custom rate reference.
// Existing payments keep the rate snapshot they copied; only payments whose
// partner field changes afterwards pick up the new assignment.
func (s *partnerService) AssignExchangeRate(ctx context.Context, partnerID string, req dto.AssignPartnerRateRequest, updaterUserID string) (*domain.Partner, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find partner %s: %w", partnerID, err)
	}

	if req.RateID != nil {
		rate, err := s.rateRepo.FindPartnerExchangeRateByID(ctx, *req.RateID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve partner exchange rate %s: %w", *req.RateID, err)
		}
		if rate.CompanyID != partner.CompanyID {
			return nil, fmt.Errorf("%w: rate %s belongs to a different company", apperrors.ErrValidation, rate.RateID)
		}
		partner.PartnerExchangeRateID = req.RateID
		partner.RateAmount = rate.RateAmount
	} else {
		partner.PartnerExchangeRateID = nil
		partner.RateAmount = decimal.Zero
	}

	partner.LastUpdatedAt = time.Now().UTC()
	partner.LastUpdatedBy = updaterUserID

	if err := s.partnerRepo.UpdatePartner(ctx, *partner); err != nil {
		logger.Error("Failed to assign exchange rate", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
		return nil, fmt.Errorf("failed to assign exchange rate: %w", err)
	}

	logger.Info("Partner exchange rate assignment changed", slog.String("partner_id", partnerID))
	return partner, nil
}
