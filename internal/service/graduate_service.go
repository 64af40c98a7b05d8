package service

import (
	"context"
	"errors"
	"strings"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/repository"
	"gorm.io/gorm"
)

type GraduateProfileInput struct {
	UserID          uint64
	UserName        string
	Degree          string
	Institution     string
	Year            int
	Bio             string
	Skills          []string
	Approved        bool
	ContactEmail    string
	ContactWhatsApp string
	CertificateURL  string
}

type GraduateService interface {
	// Upsert creates or fully replaces the profile for the input's user id.
	Upsert(ctx context.Context, in GraduateProfileInput) (*model.GraduateProfile, error)
	ListApproved(ctx context.Context) ([]model.GraduateProfile, error)
	GetByUser(ctx context.Context, userID uint64) (*model.GraduateProfile, error)
}

type graduateService struct {
	gradRepo repository.GraduateRepository
}

func NewGraduateService(gradRepo repository.GraduateRepository) GraduateService {
	return &graduateService{gradRepo: gradRepo}
}

func (s *graduateService) Upsert(ctx context.Context, in GraduateProfileInput) (*model.GraduateProfile, error) {
	if in.UserID == 0 {
		return nil, validationError("user is required")
	}
	in.UserName = strings.TrimSpace(in.UserName)
	in.Degree = strings.TrimSpace(in.Degree)
	in.Institution = strings.TrimSpace(in.Institution)
	if in.UserName == "" || in.Degree == "" || in.Institution == "" {
		return nil, validationError("name, degree and institution are required")
	}
	if in.Year <= 0 {
		return nil, validationError("invalid graduation year")
	}

	profile := &model.GraduateProfile{
		UserID:          in.UserID,
		UserName:        in.UserName,
		Degree:          in.Degree,
		Institution:     in.Institution,
		Year:            in.Year,
		Bio:             strings.TrimSpace(in.Bio),
		Skills:          model.JoinList(in.Skills),
		Approved:        in.Approved,
		ContactEmail:    strings.TrimSpace(in.ContactEmail),
		ContactWhatsApp: strings.TrimSpace(in.ContactWhatsApp),
		CertificateURL:  strings.TrimSpace(in.CertificateURL),
	}
	return s.gradRepo.Upsert(ctx, profile)
}

func (s *graduateService) ListApproved(ctx context.Context) ([]model.GraduateProfile, error) {
	return s.gradRepo.ListApproved(ctx)
}

func (s *graduateService) GetByUser(ctx context.Context, userID uint64) (*model.GraduateProfile, error) {
	profile, err := s.gradRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}
