package services

import (
	"context"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	"github.com/partnerfx/partner_fx_app/internal/dto"
)

// CompanySvcFacade exposes company reference data operations.
type CompanySvcFacade interface {
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	UpdateDefaultAccounts(ctx context.Context, companyID string, req dto.UpdateCompanyAccountsRequest, updaterUserID string) (*domain.Company, error)
}

// AccountSvcFacade exposes the minimal chart-of-accounts operations.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, companyID string, limit, offset int) ([]domain.Account, error)
}

// AuditSvcFacade exposes read access to the audit trail.
type AuditSvcFacade interface {
	ListAuditLogsForEntity(ctx context.Context, entityType, entityID string, limit, offset int) ([]domain.AuditLog, error)
}
