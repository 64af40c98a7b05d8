package repository

import (
	"context"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	FindByID(ctx context.Context, id uint64) (*model.Payment, error)
	List(ctx context.Context) ([]model.Payment, error)
	ListByBuyer(ctx context.Context, buyerID uint64) ([]model.Payment, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.Payment, error)
	Update(ctx context.Context, payment *model.Payment) error
	SetDB(db *gorm.DB)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByID(ctx context.Context, id uint64) (*model.Payment, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var payment model.Payment
	if err := r.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var payments []model.Payment
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) ListByBuyer(ctx context.Context, buyerID uint64) ([]model.Payment, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var payments []model.Payment
	if err := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Payment, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var payments []model.Payment
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *paymentRepository) SetDB(db *gorm.DB) {
	r.db = db
}
