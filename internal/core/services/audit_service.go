package services

import (
	"context"
	"fmt"

	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
	"github.com/partnerfx/partner_fx_app/internal/core/domain"
)

type auditService struct {
	auditRepo portsrepo.AuditLogRepository
}

// NewAuditService creates a new AuditSvcFacade.
func NewAuditService(auditRepo portsrepo.AuditLogRepository) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// ListAuditLogsForEntity retrieves the audit trail for one entity, newest first.
func (s *auditService) ListAuditLogsForEntity(ctx context.Context, entityType, entityID string, limit, offset int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := s.auditRepo.ListAuditLogsForEntity(ctx, entityType, entityID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
