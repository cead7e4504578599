package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
)

// AuditLogRepository defines the append-only audit trail operations.
type AuditLogRepository interface {
	// SaveAuditLog persists an audit entry outside any caller transaction.
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error

	// SaveAuditLogInTx persists an audit entry within the given transaction,
	// so the trail row commits or rolls back with the mutation it records.
	SaveAuditLogInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error

	// ListAuditLogsForEntity retrieves entries for one entity, newest first.
	ListAuditLogsForEntity(ctx context.Context, entityType, entityID string, limit, offset int) ([]domain.AuditLog, error)
}
