package domain

import "time"

// AuditAction classifies an audit log entry.
type AuditAction string

const (
	AuditCreated AuditAction = "CREATED"
	AuditUpdated AuditAction = "UPDATED"
	AuditDeleted AuditAction = "DELETED"
)

// AuditLog is an append-only change record written whenever a tracked entity
// is mutated. It replaces the change-tracking the host platform would
// otherwise provide on these records.
type AuditLog struct {
	AuditID     string      `json:"auditID"` // Primary Key (UUID)
	EntityType  string      `json:"entityType"`
	EntityID    string      `json:"entityID"`
	Action      AuditAction `json:"action"`
	Detail      string      `json:"detail"` // Human-readable change summary
	ActorUserID string      `json:"actorUserID"`
	CreatedAt   time.Time   `json:"createdAt"`
}
