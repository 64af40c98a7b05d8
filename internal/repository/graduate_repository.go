package repository

import (
	"context"
	"errors"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"gorm.io/gorm"
)

type GraduateRepository interface {
	// Upsert creates the profile or overwrites the existing row for the
	// same user id, returning the stored record.
	Upsert(ctx context.Context, profile *model.GraduateProfile) (*model.GraduateProfile, error)
	FindByUser(ctx context.Context, userID uint64) (*model.GraduateProfile, error)
	ListApproved(ctx context.Context) ([]model.GraduateProfile, error)
	SetDB(db *gorm.DB)
}

type graduateRepository struct {
	db *gorm.DB
}

func NewGraduateRepository(db *gorm.DB) GraduateRepository {
	return &graduateRepository{db: db}
}

func (r *graduateRepository) Upsert(ctx context.Context, profile *model.GraduateProfile) (*model.GraduateProfile, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var existing model.GraduateProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", profile.UserID).
		First(&existing).Error
	switch {
	case err == nil:
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
			return nil, err
		}
		return profile, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
			return nil, err
		}
		return profile, nil
	default:
		return nil, err
	}
}

func (r *graduateRepository) FindByUser(ctx context.Context, userID uint64) (*model.GraduateProfile, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var profile model.GraduateProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *graduateRepository) ListApproved(ctx context.Context) ([]model.GraduateProfile, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var profiles []model.GraduateProfile
	if err := r.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("created_at desc").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *graduateRepository) SetDB(db *gorm.DB) {
	r.db = db
}
