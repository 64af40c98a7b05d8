package repository

import (
	"context"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uint64) (*model.Product, error)
	ListByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.Product, error)
	UpdateStatus(ctx context.Context, id uint64, status model.ProductStatus) error
	Delete(ctx context.Context, id uint64) error
	SetDB(db *gorm.DB)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uint64) (*model.Product, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var products []model.Product
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListBySeller returns the seller's products in every status so sellers
// can see their own sold and disabled listings.
func (r *productRepository) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Product, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var products []model.Product
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) UpdateStatus(ctx context.Context, id uint64, status model.ProductStatus) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *productRepository) Delete(ctx context.Context, id uint64) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepository) SetDB(db *gorm.DB) {
	r.db = db
}
