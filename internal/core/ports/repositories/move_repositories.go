package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
)

// MoveReader defines read operations for journal entries.
type MoveReader interface {
	// FindMoveByID retrieves a move with its lines ordered by sequence.
	FindMoveByID(ctx context.Context, moveID string) (*domain.Move, error)
}

// MoveWriter defines write operations for journal entries. Line rewrites run
// inside the caller's transaction, in the same unit of work as the owning
// payment write.
type MoveWriter interface {
	// SaveMoveInTx persists a move header and its lines within the given transaction.
	SaveMoveInTx(ctx context.Context, tx pgx.Tx, move domain.Move, lines []domain.MoveLine) error

	// FindMoveLinesForUpdate selects a move's lines ordered by sequence and
	// locks them for update within the given transaction.
	FindMoveLinesForUpdate(ctx context.Context, tx pgx.Tx, moveID string) ([]domain.MoveLine, error)

	// UpdateMoveLinesInTx rewrites the amounts and names of existing lines.
	UpdateMoveLinesInTx(ctx context.Context, tx pgx.Tx, lines []domain.MoveLine) error

	// AppendMoveLineInTx adds a new line to an existing move, after the
	// current highest sequence.
	AppendMoveLineInTx(ctx context.Context, tx pgx.Tx, line domain.MoveLine) error
}

// MoveRepositoryFacade combines all move repository interfaces.
type MoveRepositoryFacade interface {
	MoveReader
	MoveWriter
}
