package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/partnerfx/partner_fx_app/internal/apperrors"
	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
	"github.com/partnerfx/partner_fx_app/internal/dto"
)

// exchangeRateService administers the official dated rate table.
type exchangeRateService struct {
	rateRepo portsrepo.ExchangeRateRepositoryFacade
}

// NewExchangeRateService creates a new ExchangeRateSvcFacade.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rateRepo: rateRepo}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate records a new official rate for a currency pair.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrencyCode == req.ToCurrencyCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: strings.ToUpper(req.FromCurrencyCode),
		ToCurrencyCode:   strings.ToUpper(req.ToCurrencyCode),
		Rate:             req.Rate,
		DateEffective:    req.DateEffective,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}

	return &rate, nil
}

// GetEffectiveRate retrieves the official rate for a pair effective at asOf.
func (s *exchangeRateService) GetEffectiveRate(ctx context.Context, fromCode, toCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.FindRateEffective(ctx, fromCode, toCode, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to get effective rate: %w", err)
	}
	return rate, nil
}

// ListExchangeRates retrieves all recorded official rates for a pair.
func (s *exchangeRateService) ListExchangeRates(ctx context.Context, fromCode, toCode string) ([]domain.ExchangeRate, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	rates, err := s.rateRepo.ListExchangeRates(ctx, fromCode, toCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return rates, nil
}
