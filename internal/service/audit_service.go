package service

import (
	"context"
	"strconv"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/repository"
)

type AuditService interface {
	List(ctx context.Context) ([]model.AuditLog, error)
}

type auditService struct {
	auditRepo repository.AuditLogRepository
}

func NewAuditService(auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) List(ctx context.Context) ([]model.AuditLog, error) {
	return s.auditRepo.List(ctx)
}

// formatID renders an entity id for the audit trail's string column.
func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
