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

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, company_id, partner_id, partner_type, payment_type, is_internal_transfer,
	amount, currency_code, payment_date, move_id,
	income_currency_exchange_account_id, expense_currency_exchange_account_id,
	exchange_rate, partner_exchange_rate_id, exchange_rate_difference,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.CompanyID,
		&m.PartnerID,
		&m.PartnerType,
		&m.PaymentType,
		&m.IsInternalTransfer,
		&m.Amount,
		&m.CurrencyCode,
		&m.PaymentDate,
		&m.MoveID,
		&m.IncomeCurrencyExchangeAccountID,
		&m.ExpenseCurrencyExchangeAccountID,
		&m.ExchangeRate,
		&m.PartnerExchangeRateID,
		&m.ExchangeRateDifference,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePaymentInTx persists a new payment within the given transaction.
func (r *PgxPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := tx.Exec(ctx, query,
		m.PaymentID,
		m.CompanyID,
		m.PartnerID,
		m.PartnerType,
		m.PaymentType,
		m.IsInternalTransfer,
		m.Amount,
		m.CurrencyCode,
		m.PaymentDate,
		m.MoveID,
		m.IncomeCurrencyExchangeAccountID,
		m.ExpenseCurrencyExchangeAccountID,
		m.ExchangeRate,
		m.PartnerExchangeRateID,
		m.ExchangeRateDifference,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// UpdatePaymentInTx updates an existing payment within the given transaction.
func (r *PgxPaymentRepository) UpdatePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)

	query := `
		UPDATE payments
		SET partner_id = $2, amount = $3, payment_date = $4,
			income_currency_exchange_account_id = $5, expense_currency_exchange_account_id = $6,
			exchange_rate = $7, partner_exchange_rate_id = $8, exchange_rate_difference = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE payment_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.PaymentID,
		m.PartnerID,
		m.Amount,
		m.PaymentDate,
		m.IncomeCurrencyExchangeAccountID,
		m.ExpenseCurrencyExchangeAccountID,
		m.ExchangeRate,
		m.PartnerExchangeRateID,
		m.ExchangeRateDifference,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", m.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPaymentByID retrieves a specific payment by its unique identifier.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// ListPayments retrieves a paginated list of payments for a company, newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, companyID string, limit, offset int) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE company_id = $1
		ORDER BY payment_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		return scanPayment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}

	return mapping.ToDomainPaymentSlice(ms), nil
}
