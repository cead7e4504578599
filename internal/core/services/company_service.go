package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	"github.com/partnerfx/partner_fx_app/internal/dto"
	"github.com/partnerfx/partner_fx_app/internal/middleware"
)

type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewCompanyService creates a new CompanySvcFacade.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, accountRepo portsrepo.AccountReader) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo, accountRepo: accountRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// GetCompanyByID retrieves company reference data.
func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find company %s: %w", companyID, err)
	}
	return company, nil
}

// UpdateDefaultAccounts changes the company-level gain/loss accounts. The
// change only affects payments created afterwards; existing payments keep the
// accounts copied onto them.
func (s *companyService) UpdateDefaultAccounts(ctx context.Context, companyID string, req dto.UpdateCompanyAccountsRequest, updaterUserID string) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find company %s: %w", companyID, err)
	}

	if req.IncomeCurrencyExchangeAccountID != nil {
		account, err := s.accountRepo.FindAccountByID(ctx, *req.IncomeCurrencyExchangeAccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve income account: %w", err)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrAccountInactive, account.AccountID)
		}
		company.IncomeCurrencyExchangeAccountID = account.AccountID
	}
	if req.ExpenseCurrencyExchangeAccountID != nil {
		account, err := s.accountRepo.FindAccountByID(ctx, *req.ExpenseCurrencyExchangeAccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve expense account: %w", err)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrAccountInactive, account.AccountID)
		}
		company.ExpenseCurrencyExchangeAccountID = account.AccountID
	}

	company.LastUpdatedAt = time.Now().UTC()
	company.LastUpdatedBy = updaterUserID

	if err := s.companyRepo.UpdateCompanyDefaultAccounts(ctx, *company); err != nil {
		logger.Error("Failed to update company default accounts", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to update company %s: %w", companyID, err)
	}

	logger.Info("Company default accounts updated", slog.String("company_id", companyID))
	return company, nil
}
