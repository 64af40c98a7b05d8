package service

import (
	"context"
	"errors"
	"strings"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/repository"
)

var ErrDuplicateEmail = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("incorrect credentials")

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role model.Role, whatsapp, location string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(ctx context.Context, name, email, password string, role model.Role, whatsapp, location string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" {
		return nil, validationError("name is required")
	}
	if email == "" {
		return nil, validationError("email is required")
	}
	if password == "" {
		return nil, validationError("password is required")
	}
	if role == "" {
		role = model.RoleBuyer
	}
	if !role.Valid() {
		return nil, validationError("invalid role")
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
		WhatsApp: whatsapp,
		Location: location,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.FindByCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
