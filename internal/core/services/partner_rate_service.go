package services

import (
	"context"
	"errors"
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

const partnerRateEntityType = "partner_exchange_rate"

// partnerRateService provides business logic for the custom partner-rate
// registry. Every mutation leaves an audit trail entry.
type partnerRateService struct {
	rateRepo  portsrepo.PartnerRateRepositoryFacade
	auditRepo portsrepo.AuditLogRepository
}

// NewPartnerRateService creates a new PartnerRateSvcFacade.
func NewPartnerRateService(rateRepo portsrepo.PartnerRateRepositoryFacade, auditRepo portsrepo.AuditLogRepository) portssvc.PartnerRateSvcFacade {
	return &partnerRateService{
		rateRepo:  rateRepo,
		auditRepo: auditRepo,
	}
}

var _ portssvc.PartnerRateSvcFacade = (*partnerRateService)(nil)

// CreatePartnerRate creates a new named custom rate within a company.
func (s *partnerRateService) CreatePartnerRate(ctx context.Context, req dto.CreatePartnerRateRequest, creatorUserID string) (*domain.PartnerExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.RateAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: rate amount must be positive", apperrors.ErrValidation)
	}

	// Name is the unique display label within a company
	existing, err := s.rateRepo.FindPartnerExchangeRateByName(ctx, req.CompanyID, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check rate name uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: rate named %q already exists in company", apperrors.ErrDuplicate, req.Name)
	}

	now := time.Now().UTC()
	rate := domain.PartnerExchangeRate{
		RateID:     uuid.NewString(),
		Name:       req.Name,
		CompanyID:  req.CompanyID,
		RateAmount: req.RateAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SavePartnerExchangeRate(ctx, rate); err != nil {
		logger.Error("Failed to save partner exchange rate", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save partner exchange rate: %w", err)
	}

	s.recordAudit(ctx, rate.RateID, domain.AuditCreated, fmt.Sprintf("created rate %q = %s", rate.Name, rate.RateAmount), creatorUserID)

	logger.Info("Partner exchange rate created", slog.String("rate_id", rate.RateID), slog.String("company_id", rate.CompanyID))
	return &rate, nil
}

// GetPartnerRateByID retrieves a rate by ID.
func (s *partnerRateService) GetPartnerRateByID(ctx context.Context, rateID string) (*domain.PartnerExchangeRate, error) {
	rate, err := s.rateRepo.FindPartnerExchangeRateByID(ctx, rateID)
	if err != nil {
		return nil, fmt.Errorf("failed to find partner exchange rate %s: %w", rateID, err)
	}
	return rate, nil
}

// ListPartnerRates retrieves a paginated list of rates for a company.
func (s *partnerRateService) ListPartnerRates(ctx context.Context, companyID string, limit, offset int) ([]domain.PartnerExchangeRate, error) {
	if limit <= 0 {
		limit = 20
	}
	rates, err := s.rateRepo.ListPartnerExchangeRates(ctx, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list partner exchange rates: %w", err)
	}
	return rates, nil
}

// UpdatePartnerRate updates a rate's name and/or amount. Payments that copied
// this rate keep their snapshot; only future partner assignments see the new
// value.
func (s *partnerRateService) UpdatePartnerRate(ctx context.Context, rateID string, req dto.UpdatePartnerRateRequest, updaterUserID string) (*domain.PartnerExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rate, err := s.rateRepo.FindPartnerExchangeRateByID(ctx, rateID)
	if err != nil {
		return nil, fmt.Errorf("failed to find partner exchange rate %s: %w", rateID, err)
	}

	updated := false
	if req.Name != nil && *req.Name != rate.Name {
		rate.Name = *req.Name
		updated = true
	}
	if req.RateAmount != nil {
		if req.RateAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: rate amount must be positive", apperrors.ErrValidation)
		}
		rate.RateAmount = *req.RateAmount
		updated = true
	}

	if !updated {
		return rate, nil
	}

	rate.LastUpdatedAt = time.Now().UTC()
	rate.LastUpdatedBy = updaterUserID

	if err := s.rateRepo.UpdatePartnerExchangeRate(ctx, *rate); err != nil {
		logger.Error("Failed to update partner exchange rate", slog.String("error", err.Error()), slog.String("rate_id", rateID))
		return nil, fmt.Errorf("failed to update partner exchange rate: %w", err)
	}

	s.recordAudit(ctx, rate.RateID, domain.AuditUpdated, fmt.Sprintf("updated rate %q = %s", rate.Name, rate.RateAmount), updaterUserID)

	logger.Info("Partner exchange rate updated", slog.String("rate_id", rateID))
	return rate, nil
}

// DeletePartnerRate removes a rate from the registry.
func (s *partnerRateService) DeletePartnerRate(ctx context.Context, rateID string, deleterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	rate, err := s.rateRepo.FindPartnerExchangeRateByID(ctx, rateID)
	if err != nil {
		return fmt.Errorf("failed to find partner exchange rate %s: %w", rateID, err)
	}

	if err := s.rateRepo.DeletePartnerExchangeRate(ctx, rateID); err != nil {
		logger.Error("Failed to delete partner exchange rate", slog.String("error", err.Error()), slog.String("rate_id", rateID))
		return fmt.Errorf("failed to delete partner exchange rate: %w", err)
	}

	s.recordAudit(ctx, rateID, domain.AuditDeleted, fmt.Sprintf("deleted rate %q", rate.Name), deleterUserID)

	logger.Info("Partner exchange rate deleted", slog.String("rate_id", rateID))
	return nil
}

// recordAudit writes an audit trail entry. Audit failures are logged, not
// propagated: the primary mutation has already succeeded.
func (s *partnerRateService) recordAudit(ctx context.Context, entityID string, action domain.AuditAction, detail, actorUserID string) {
	entry := domain.AuditLog{
		AuditID:     uuid.NewString(),
		EntityType:  partnerRateEntityType,
		EntityID:    entityID,
		Action:      action,
		Detail:      detail,
		ActorUserID: actorUserID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to record audit entry", slog.String("error", err.Error()), slog.String("entity_id", entityID))
	}
}
