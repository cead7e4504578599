package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/partnerfx/partner_fx_app/internal/apperrors"
	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
	"github.com/partnerfx/partner_fx_app/internal/models"
	"github.com/partnerfx/partner_fx_app/internal/utils/mapping"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company reference data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

// FindCompanyByID retrieves a company by its unique identifier.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, currency_code, income_currency_exchange_account_id, expense_currency_exchange_account_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM companies
		WHERE company_id = $1;
	`
	var m models.Company
	err := r.Pool.QueryRow(ctx, query, companyID).Scan(
		&m.CompanyID,
		&m.Name,
		&m.CurrencyCode,
		&m.IncomeCurrencyExchangeAccountID,
		&m.ExpenseCurrencyExchangeAccountID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company %s: %w", companyID, err)
	}

	company := mapping.ToDomainCompany(m)
	return &company, nil
}

// UpdateCompanyDefaultAccounts updates the default gain/loss accounts.
func (r *PgxCompanyRepository) UpdateCompanyDefaultAccounts(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)

	query := `
		UPDATE companies
		SET income_currency_exchange_account_id = $2, expense_currency_exchange_account_id = $3,
			last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.IncomeCurrencyExchangeAccountID,
		m.ExpenseCurrencyExchangeAccountID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update company %s: %w", m.CompanyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
