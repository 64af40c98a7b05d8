package service

import (
	"context"
	"errors"
	"strings"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")
var ErrForbidden = errors.New("forbidden")

type ProductService interface {
	Create(ctx context.Context, sellerID uint64, name, description string, price float64, category, image string) (*model.Product, error)
	ListActive(ctx context.Context) ([]model.Product, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.Product, error)
	// Delete enforces the owner-or-admin gate. The actor's id and role are
	// client-supplied; see DESIGN.md on the trust model.
	Delete(ctx context.Context, productID, actorID uint64, role model.Role) error
}

type productService struct {
	productRepo repository.ProductRepository
	auditRepo   repository.AuditLogRepository
}

func NewProductService(productRepo repository.ProductRepository, auditRepo repository.AuditLogRepository) ProductService {
	return &productService{productRepo: productRepo, auditRepo: auditRepo}
}

func (s *productService) Create(ctx context.Context, sellerID uint64, name, description string, price float64, category, image string) (*model.Product, error) {
	name = strings.TrimSpace(name)
	if sellerID == 0 {
		return nil, validationError("seller is required")
	}
	if name == "" || len(name) > 120 {
		return nil, validationError("invalid name")
	}
	if price <= 0 {
		return nil, validationError("invalid price")
	}
	if image == "" {
		image = model.DefaultProductImage
	}

	product := &model.Product{
		SellerID:    sellerID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Price:       price,
		Category:    strings.TrimSpace(category),
		Image:       image,
		Status:      model.ProductStatusActive,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) ListActive(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.ListByStatus(ctx, model.ProductStatusActive)
}

func (s *productService) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Product, error) {
	return s.productRepo.ListBySeller(ctx, sellerID)
}

func (s *productService) Delete(ctx context.Context, productID, actorID uint64, role model.Role) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if product.SellerID != actorID && role != model.RoleAdmin {
		return ErrForbidden
	}
	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return err
	}
	if role == model.RoleAdmin {
		return s.auditRepo.Append(ctx, &model.AuditLog{
			AdminID:  actorID,
			Action:   model.AuditActionAdminDeleteProduct,
			EntityID: formatID(productID),
			Details:  "Forced removal",
		})
	}
	return nil
}
