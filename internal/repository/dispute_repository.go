package repository

import (
	"context"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"gorm.io/gorm"
)

type DisputeRepository interface {
	Create(ctx context.Context, dispute *model.Dispute) error
	FindByID(ctx context.Context, id uint64) (*model.Dispute, error)
	List(ctx context.Context) ([]model.Dispute, error)
	ListByCreator(ctx context.Context, creatorID uint64) ([]model.Dispute, error)
	Update(ctx context.Context, dispute *model.Dispute) error
	SetDB(db *gorm.DB)
}

type disputeRepository struct {
	db *gorm.DB
}

func NewDisputeRepository(db *gorm.DB) DisputeRepository {
	return &disputeRepository{db: db}
}

func (r *disputeRepository) Create(ctx context.Context, dispute *model.Dispute) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(dispute).Error
}

func (r *disputeRepository) FindByID(ctx context.Context, id uint64) (*model.Dispute, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var dispute model.Dispute
	if err := r.db.WithContext(ctx).First(&dispute, id).Error; err != nil {
		return nil, err
	}
	return &dispute, nil
}

func (r *disputeRepository) List(ctx context.Context) ([]model.Dispute, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var disputes []model.Dispute
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&disputes).Error; err != nil {
		return nil, err
	}
	return disputes, nil
}

func (r *disputeRepository) ListByCreator(ctx context.Context, creatorID uint64) ([]model.Dispute, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var disputes []model.Dispute
	if err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at desc").
		Find(&disputes).Error; err != nil {
		return nil, err
	}
	return disputes, nil
}

func (r *disputeRepository) Update(ctx context.Context, dispute *model.Dispute) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Save(dispute).Error
}

func (r *disputeRepository) SetDB(db *gorm.DB) {
	r.db = db
}
