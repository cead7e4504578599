package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/partnerfx/partner_fx_app/internal/apperrors"
	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
	"github.com/partnerfx/partner_fx_app/internal/models"
	"github.com/partnerfx/partner_fx_app/internal/utils/mapping"
)

type PgxPartnerRepository struct {
	BaseRepository
}

// newPgxPartnerRepository creates a new repository for partner data.
func newPgxPartnerRepository(pool *pgxpool.Pool) portsrepo.PartnerRepositoryFacade {
	return &PgxPartnerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PartnerRepositoryFacade = (*PgxPartnerRepository)(nil)

// partnerSelect joins the rate registry so loaded partners carry the resolved
// rate amount. A missing or deleted rate resolves to zero.
const partnerSelect = `
	SELECT p.partner_id, p.company_id, p.name, p.partner_type, p.partner_exchange_rate_id,
	       p.created_at, p.created_by, p.last_updated_at, p.last_updated_by,
	       COALESCE(r.rate_amount, 0) AS rate_amount
	FROM partners p
	LEFT JOIN partner_exchange_rates r ON r.rate_id = p.partner_exchange_rate_id
`

func scanPartner(row pgx.Row) (models.Partner, error) {
	var m models.Partner
	err := row.Scan(
		&m.PartnerID,
		&m.CompanyID,
		&m.Name,
		&m.PartnerType,
		&m.PartnerExchangeRateID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.RateAmount,
	)
	if m.PartnerExchangeRateID == nil {
		m.RateAmount = decimal.Zero
	}
	return m, err
}

// SavePartner persists a new partner.
func (r *PgxPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) error {
	m := mapping.ToModelPartner(partner)

	query := `
		INSERT INTO partners (partner_id, company_id, name, partner_type, partner_exchange_rate_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PartnerID,
		m.CompanyID,
		m.Name,
		m.PartnerType,
		m.PartnerExchangeRateID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save partner %s: %w", m.PartnerID, err)
	}
	return nil
}

// UpdatePartner updates an existing partner, including its rate reference.
func (r *PgxPartnerRepository) UpdatePartner(ctx context.Context, partner domain.Partner) error {
	m := mapping.ToModelPartner(partner)

	query := `
		UPDATE partners
		SET name = $2, partner_type = $3, partner_exchange_rate_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE partner_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PartnerID,
		m.Name,
		m.PartnerType,
		m.PartnerExchangeRateID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update partner %s: %w", m.PartnerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPartnerByID retrieves a partner with its rate amount resolved.
func (r *PgxPartnerRepository) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	query := partnerSelect + ` WHERE p.partner_id = $1;`

	m, err := scanPartner(r.Pool.QueryRow(ctx, query, partnerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find partner %s: %w", partnerID, err)
	}

	partner := mapping.ToDomainPartner(m)
	return &partner, nil
}

// ListPartners retrieves a paginated list of partners for a company.
func (r *PgxPartnerRepository) ListPartners(ctx context.Context, companyID string, limit, offset int) ([]domain.Partner, error) {
	query := partnerSelect + `
		WHERE p.company_id = $1
		ORDER BY p.name
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Partner, error) {
		return scanPartner(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan partners: %w", err)
	}

	return mapping.ToDomainPartnerSlice(ms), nil
}
