package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/partnerfx/partner_fx_app/internal/apperrors"
	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
	"github.com/partnerfx/partner_fx_app/internal/models"
	"github.com/partnerfx/partner_fx_app/internal/utils/mapping"
)

type PgxPartnerRateRepository struct {
	BaseRepository
}

// newPgxPartnerRateRepository creates a new repository for custom partner rates.
func newPgxPartnerRateRepository(pool *pgxpool.Pool) portsrepo.PartnerRateRepositoryFacade {
	return &PgxPartnerRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PartnerRateRepositoryFacade = (*PgxPartnerRateRepository)(nil)

const partnerRateColumns = `rate_id, name, company_id, rate_amount, created_at, created_by, last_updated_at, last_updated_by`

func scanPartnerRate(row pgx.Row) (models.PartnerExchangeRate, error) {
	var m models.PartnerExchangeRate
	err := row.Scan(
		&m.RateID,
		&m.Name,
		&m.CompanyID,
		&m.RateAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePartnerExchangeRate persists a new rate.
func (r *PgxPartnerRateRepository) SavePartnerExchangeRate(ctx context.Context, rate domain.PartnerExchangeRate) error {
	m := mapping.ToModelPartnerExchangeRate(rate)

	query := `
		INSERT INTO partner_exchange_rates (` + partnerRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RateID,
		m.Name,
		m.CompanyID,
		m.RateAmount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save partner exchange rate %s: %w", m.RateID, err)
	}
	return nil
}

// UpdatePartnerExchangeRate updates an existing rate's name and amount.
func (r *PgxPartnerRateRepository) UpdatePartnerExchangeRate(ctx context.Context, rate domain.PartnerExchangeRate) error {
	m := mapping.ToModelPartnerExchangeRate(rate)

	query := `
		UPDATE partner_exchange_rates
		SET name = $2, rate_amount = $3, last_updated_at = $4, last_updated_by = $5
		WHERE rate_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.RateID,
		m.Name,
		m.RateAmount,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update partner exchange rate %s: %w", m.RateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePartnerExchangeRate removes a rate.
func (r *PgxPartnerRateRepository) DeletePartnerExchangeRate(ctx context.Context, rateID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM partner_exchange_rates WHERE rate_id = $1;`, rateID)
	if err != nil {
		return fmt.Errorf("failed to delete partner exchange rate %s: %w", rateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPartnerExchangeRateByID retrieves a rate by its unique identifier.
func (r *PgxPartnerRateRepository) FindPartnerExchangeRateByID(ctx context.Context, rateID string) (*domain.PartnerExchangeRate, error) {
	query := `SELECT ` + partnerRateColumns + ` FROM partner_exchange_rates WHERE rate_id = $1;`

	m, err := scanPartnerRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find partner exchange rate %s: %w", rateID, err)
	}

	rate := mapping.ToDomainPartnerExchangeRate(m)
	return &rate, nil
}

// FindPartnerExchangeRateByName retrieves a rate by its display label within a company.
func (r *PgxPartnerRateRepository) FindPartnerExchangeRateByName(ctx context.Context, companyID, name string) (*domain.PartnerExchangeRate, error) {
	query := `SELECT ` + partnerRateColumns + ` FROM partner_exchange_rates WHERE company_id = $1 AND name = $2;`

	m, err := scanPartnerRate(r.Pool.QueryRow(ctx, query, companyID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find partner exchange rate named %q: %w", name, err)
	}

	rate := mapping.ToDomainPartnerExchangeRate(m)
	return &rate, nil
}

// ListPartnerExchangeRates retrieves a paginated list of rates for a company.
func (r *PgxPartnerRateRepository) ListPartnerExchangeRates(ctx context.Context, companyID string, limit, offset int) ([]domain.PartnerExchangeRate, error) {
	query := `
		SELECT ` + partnerRateColumns + `
		FROM partner_exchange_rates
		WHERE company_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query partner exchange rates: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PartnerExchangeRate, error) {
		return scanPartnerRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan partner exchange rates: %w", err)
	}

	return mapping.ToDomainPartnerExchangeRateSlice(ms), nil
}
