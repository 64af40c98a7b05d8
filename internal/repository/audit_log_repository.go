package repository

import (
	"context"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"gorm.io/gorm"
)

// AuditLogRepository is append-only. Entries are never updated or deleted.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *model.AuditLog) error
	List(ctx context.Context) ([]model.AuditLog, error)
	SetDB(db *gorm.DB)
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Append(ctx context.Context, entry *model.AuditLog) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditLogRepository) List(ctx context.Context) ([]model.AuditLog, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var entries []model.AuditLog
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *auditLogRepository) SetDB(db *gorm.DB) {
	r.db = db
}
