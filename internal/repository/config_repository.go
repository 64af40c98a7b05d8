package repository

import (
	"context"
	"errors"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"gorm.io/gorm"
)

type ConfigRepository interface {
	// Get returns the singleton row, creating it with defaults on first read.
	Get(ctx context.Context) (*model.PlatformConfig, error)
	Save(ctx context.Context, cfg *model.PlatformConfig) error
	SetDB(db *gorm.DB)
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

func (r *configRepository) Get(ctx context.Context) (*model.PlatformConfig, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var cfg model.PlatformConfig
	err := r.db.WithContext(ctx).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = model.DefaultPlatformConfig()
		if err := r.db.WithContext(ctx).Create(&cfg).Error; err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *configRepository) Save(ctx context.Context, cfg *model.PlatformConfig) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *configRepository) SetDB(db *gorm.DB) {
	r.db = db
}
