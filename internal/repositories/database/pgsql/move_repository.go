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

type PgxMoveRepository struct {
	BaseRepository
}

// newPgxMoveRepository creates a new repository for journal entries.
func newPgxMoveRepository(pool *pgxpool.Pool) portsrepo.MoveRepositoryFacade {
	return &PgxMoveRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MoveRepositoryFacade = (*PgxMoveRepository)(nil)

const moveLineColumns = `line_id, move_id, sequence, account_id, name, debit, credit, currency_code,
	created_at, created_by, last_updated_at, last_updated_by`

func scanMoveLine(row pgx.Row) (models.MoveLine, error) {
	var m models.MoveLine
	err := row.Scan(
		&m.LineID,
		&m.MoveID,
		&m.Sequence,
		&m.AccountID,
		&m.Name,
		&m.Debit,
		&m.Credit,
		&m.CurrencyCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func insertMoveLine(ctx context.Context, tx pgx.Tx, m models.MoveLine) error {
	query := `
		INSERT INTO move_lines (` + moveLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.LineID,
		m.MoveID,
		m.Sequence,
		m.AccountID,
		m.Name,
		m.Debit,
		m.Credit,
		m.CurrencyCode,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return err
}

// SaveMoveInTx persists a move header and its lines within the given transaction.
func (r *PgxMoveRepository) SaveMoveInTx(ctx context.Context, tx pgx.Tx, move domain.Move, lines []domain.MoveLine) error {
	m := mapping.ToModelMove(move)

	query := `
		INSERT INTO moves (move_id, company_id, move_date, currency_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.MoveID,
		m.CompanyID,
		m.MoveDate,
		m.CurrencyCode,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save move %s: %w", m.MoveID, err)
	}

	for _, line := range lines {
		if err := insertMoveLine(ctx, tx, mapping.ToModelMoveLine(line)); err != nil {
			return fmt.Errorf("failed to save move line %s: %w", line.LineID, err)
		}
	}
	return nil
}

// FindMoveByID retrieves a move with its lines ordered by sequence.
func (r *PgxMoveRepository) FindMoveByID(ctx context.Context, moveID string) (*domain.Move, error) {
	query := `
		SELECT move_id, company_id, move_date, currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM moves
		WHERE move_id = $1;
	`
	var m models.Move
	err := r.Pool.QueryRow(ctx, query, moveID).Scan(
		&m.MoveID,
		&m.CompanyID,
		&m.MoveDate,
		&m.CurrencyCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find move %s: %w", moveID, err)
	}

	lineQuery := `SELECT ` + moveLineColumns + ` FROM move_lines WHERE move_id = $1 ORDER BY sequence;`
	rows, err := r.Pool.Query(ctx, lineQuery, moveID)
	if err != nil {
		return nil, fmt.Errorf("failed to query move lines for %s: %w", moveID, err)
	}
	defer rows.Close()

	lineModels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MoveLine, error) {
		return scanMoveLine(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan move lines for %s: %w", moveID, err)
	}

	move := mapping.ToDomainMove(m)
	move.Lines = mapping.ToDomainMoveLineSlice(lineModels)
	return &move, nil
}

// FindMoveLinesForUpdate selects a move's lines ordered by sequence and locks
// them for update within the given transaction.
func (r *PgxMoveRepository) FindMoveLinesForUpdate(ctx context.Context, tx pgx.Tx, moveID string) ([]domain.MoveLine, error) {
	query := `SELECT ` + moveLineColumns + ` FROM move_lines WHERE move_id = $1 ORDER BY sequence FOR UPDATE;`

	rows, err := tx.Query(ctx, query, moveID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock move lines for %s: %w", moveID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MoveLine, error) {
		return scanMoveLine(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan move lines for %s: %w", moveID, err)
	}

	return mapping.ToDomainMoveLineSlice(ms), nil
}

// UpdateMoveLinesInTx rewrites the amounts, name and account of existing lines.
func (r *PgxMoveRepository) UpdateMoveLinesInTx(ctx context.Context, tx pgx.Tx, lines []domain.MoveLine) error {
	query := `
		UPDATE move_lines
		SET account_id = $2, name = $3, debit = $4, credit = $5, last_updated_at = $6, last_updated_by = $7
		WHERE line_id = $1;
	`
	for _, line := range lines {
		m := mapping.ToModelMoveLine(line)
		tag, err := tx.Exec(ctx, query,
			m.LineID,
			m.AccountID,
			m.Name,
			m.Debit,
			m.Credit,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to update move line %s: %w", m.LineID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}
	return nil
}

// AppendMoveLineInTx adds a new line to an existing move.
func (r *PgxMoveRepository) AppendMoveLineInTx(ctx context.Context, tx pgx.Tx, line domain.MoveLine) error {
	if err := insertMoveLine(ctx, tx, mapping.ToModelMoveLine(line)); err != nil {
		return fmt.Errorf("failed to append move line %s: %w", line.LineID, err)
	}
	return nil
}
