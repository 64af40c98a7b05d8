package service

import (
	"context"
	"errors"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/repository"
	"gorm.io/gorm"
)

type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	// Delete removes an account after resolving the claimed admin id to a
	// stored account with the admin role.
	Delete(ctx context.Context, userID, adminID uint64) error
}

type userService struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditLogRepository
}

func NewUserService(userRepo repository.UserRepository, auditRepo repository.AuditLogRepository) UserService {
	return &userService{userRepo: userRepo, auditRepo: auditRepo}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) Delete(ctx context.Context, userID, adminID uint64) error {
	admin, err := s.userRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrForbidden
		}
		return err
	}
	if admin.Role != model.RoleAdmin {
		return ErrForbidden
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	return s.auditRepo.Append(ctx, &model.AuditLog{
		AdminID:  adminID,
		Action:   model.AuditActionDeleteUser,
		EntityID: formatID(userID),
		Details:  "User removed",
	})
}
