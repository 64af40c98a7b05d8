package service

import (
	"context"
	"errors"
	"strings"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/repository"
	"gorm.io/gorm"
)

type ConfigUpdate struct {
	PaymentNumber   *string
	Methods         []string
	ContactEmail    *string
	ContactWhatsApp *string
}

type PlatformService interface {
	GetConfig(ctx context.Context) (*model.PlatformConfig, error)
	// UpdateConfig requires the claimed admin id to resolve to an admin
	// account; partial updates apply only the provided fields.
	UpdateConfig(ctx context.Context, upd ConfigUpdate, adminID uint64) (*model.PlatformConfig, error)
}

type platformService struct {
	configRepo repository.ConfigRepository
	userRepo   repository.UserRepository
	auditRepo  repository.AuditLogRepository
}

func NewPlatformService(configRepo repository.ConfigRepository, userRepo repository.UserRepository, auditRepo repository.AuditLogRepository) PlatformService {
	return &platformService{configRepo: configRepo, userRepo: userRepo, auditRepo: auditRepo}
}

func (s *platformService) GetConfig(ctx context.Context) (*model.PlatformConfig, error) {
	return s.configRepo.Get(ctx)
}

func (s *platformService) UpdateConfig(ctx context.Context, upd ConfigUpdate, adminID uint64) (*model.PlatformConfig, error) {
	admin, err := s.userRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if admin.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if upd.PaymentNumber != nil {
		cfg.PaymentNumber = strings.TrimSpace(*upd.PaymentNumber)
	}
	if upd.Methods != nil {
		cfg.Methods = model.JoinList(upd.Methods)
	}
	if upd.ContactEmail != nil {
		cfg.ContactEmail = strings.TrimSpace(*upd.ContactEmail)
	}
	if upd.ContactWhatsApp != nil {
		cfg.ContactWhatsApp = strings.TrimSpace(*upd.ContactWhatsApp)
	}
	if err := s.configRepo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	if err := s.auditRepo.Append(ctx, &model.AuditLog{
		AdminID:  adminID,
		Action:   model.AuditActionUpdateConfig,
		EntityID: "SYSTEM",
		Details:  "Platform updated",
	}); err != nil {
		return nil, err
	}
	return cfg, nil
}
