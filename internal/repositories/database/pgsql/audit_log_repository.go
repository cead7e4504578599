package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
	"github.com/partnerfx/partner_fx_app/internal/models"
	"github.com/partnerfx/partner_fx_app/internal/utils/mapping"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

// newPgxAuditLogRepository creates a new repository for the audit trail.
func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepository {
	return &PgxAuditLogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AuditLogRepository = (*PgxAuditLogRepository)(nil)

const auditLogColumns = `audit_id, entity_type, entity_id, action, detail, actor_user_id, created_at`

const auditLogInsert = `
	INSERT INTO audit_logs (` + auditLogColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

// SaveAuditLog persists an audit entry outside any caller transaction.
func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	m := mapping.ToModelAuditLog(entry)
	_, err := r.Pool.Exec(ctx, auditLogInsert,
		m.AuditID, m.EntityType, m.EntityID, m.Action, m.Detail, m.ActorUserID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save audit entry %s: %w", m.AuditID, err)
	}
	return nil
}

// SaveAuditLogInTx persists an audit entry within the given transaction.
func (r *PgxAuditLogRepository) SaveAuditLogInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error {
	m := mapping.ToModelAuditLog(entry)
	_, err := tx.Exec(ctx, auditLogInsert,
		m.AuditID, m.EntityType, m.EntityID, m.Action, m.Detail, m.ActorUserID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save audit entry %s: %w", m.AuditID, err)
	}
	return nil
}

// ListAuditLogsForEntity retrieves entries for one entity, newest first.
func (r *PgxAuditLogRepository) ListAuditLogsForEntity(ctx context.Context, entityType, entityID string, limit, offset int) ([]domain.AuditLog, error) {
	query := `
		SELECT ` + auditLogColumns + `
		FROM audit_logs
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, entityType, entityID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AuditLog, error) {
		var m models.AuditLog
		err := row.Scan(&m.AuditID, &m.EntityType, &m.EntityID, &m.Action, &m.Detail, &m.ActorUserID, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit entries: %w", err)
	}

	return mapping.ToDomainAuditLogSlice(ms), nil
}
