package models

import "time"

// AuditLog is the database representation of an audit trail entry.
type AuditLog struct {
	AuditID     string    `db:"audit_id"`
	EntityType  string    `db:"entity_type"`
	EntityID    string    `db:"entity_id"`
	Action      string    `db:"action"`
	Detail      string    `db:"detail"`
	ActorUserID string    `db:"actor_user_id"`
	CreatedAt   time.Time `db:"created_at"`
}
