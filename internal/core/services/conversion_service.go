package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
)

// conversionService values amounts in a company's functional currency using
// the official dated rate table. It is the authoritative standard conversion
// the per-partner custom rates are compared against.
type conversionService struct {
	rateRepo    portsrepo.ExchangeRateReader
	companyRepo portsrepo.CompanyReader
}

// NewConversionService creates a new ConversionSvcFacade.
func NewConversionService(rateRepo portsrepo.ExchangeRateReader, companyRepo portsrepo.CompanyReader) portssvc.ConversionSvcFacade {
	return &conversionService{
		rateRepo:    rateRepo,
		companyRepo: companyRepo,
	}
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

// Convert converts amount from fromCurrency into the company's functional
// currency using the latest official rate effective on or before date.
// Identity when the payment is already in company currency.
func (s *conversionService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency string, companyID string, date time.Time) (decimal.Decimal, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load company %s for conversion: %w", companyID, err)
	}

	if fromCurrency == company.CurrencyCode {
		return amount, nil
	}

	rate, err := s.rateRepo.FindRateEffective(ctx, fromCurrency, company.CurrencyCode, date)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to find official rate %s->%s as of %s: %w", fromCurrency, company.CurrencyCode, date.Format("2006-01-02"), err)
	}

	return amount.Mul(rate.Rate), nil
}
