package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	"github.com/partnerfx/partner_fx_app/internal/dto"
)

type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	companyRepo portsrepo.CompanyReader
}

// NewAccountService creates a new AccountSvcFacade.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, companyRepo portsrepo.CompanyReader) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, companyRepo: companyRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new active ledger account.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		return nil, fmt.Errorf("failed to load company %s: %w", req.CompanyID, err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		AccountType: req.AccountType,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	return &account, nil
}

// GetAccountByID retrieves a specific account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

// GetAccountsByIDs retrieves multiple accounts keyed by ID.
func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves a paginated list of accounts for a company.
func (s *accountService) ListAccounts(ctx context.Context, companyID string, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
