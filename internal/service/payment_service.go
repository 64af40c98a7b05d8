package service

import (
	"context"
	"errors"
	"strings"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidTransition is returned when verifying a payment (or updating a
// dispute) that already reached a terminal status. Payment statuses move
// pending -> confirmed|rejected and never back.
var ErrInvalidTransition = errors.New("status is already final")

type PaymentService interface {
	Submit(ctx context.Context, buyerID, sellerID, productID uint64, amount float64, method, reference string) (*model.Payment, error)
	Verify(ctx context.Context, paymentID uint64, status model.PaymentStatus, adminID uint64) (*model.Payment, error)
	List(ctx context.Context) ([]model.Payment, error)
	ListByBuyer(ctx context.Context, buyerID uint64) ([]model.Payment, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	productRepo repository.ProductRepository
	auditRepo   repository.AuditLogRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, productRepo repository.ProductRepository, auditRepo repository.AuditLogRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, productRepo: productRepo, auditRepo: auditRepo}
}

// Submit records a buyer's claim of an off-platform transfer. The amount is
// not checked against the product price and nothing stops a second
// submission for the same product; admins sort both out during verification.
func (s *paymentService) Submit(ctx context.Context, buyerID, sellerID, productID uint64, amount float64, method, reference string) (*model.Payment, error) {
	if buyerID == 0 || sellerID == 0 || productID == 0 {
		return nil, validationError("buyer, seller and product are required")
	}
	if amount <= 0 {
		return nil, validationError("invalid amount")
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, validationError("payment method is required")
	}
	reference = strings.TrimSpace(reference)
	if reference == "" {
		// Give admins something to match against a mobile-money statement.
		reference = "PAY-" + uuid.NewString()[:8]
	}

	p := &model.Payment{
		BuyerID:       buyerID,
		SellerID:      sellerID,
		ProductID:     productID,
		Amount:        amount,
		PaymentMethod: method,
		Reference:     reference,
		Status:        model.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Verify moves a pending payment to confirmed or rejected. Confirming also
// marks the referenced product sold, even if it is no longer active. The
// payment write and the product write are two independent statements; there
// is no transaction around them, so two payments against the same product
// can both be confirmed.
func (s *paymentService) Verify(ctx context.Context, paymentID uint64, status model.PaymentStatus, adminID uint64) (*model.Payment, error) {
	if status != model.PaymentStatusConfirmed && status != model.PaymentStatusRejected {
		return nil, validationError("status must be confirmed or rejected")
	}
	p, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.Status.Terminal() {
		return nil, ErrInvalidTransition
	}

	p.Status = status
	if err := s.paymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	if status == model.PaymentStatusConfirmed {
		if err := s.productRepo.UpdateStatus(ctx, p.ProductID, model.ProductStatusSold); err != nil {
			return nil, err
		}
	}
	if err := s.auditRepo.Append(ctx, &model.AuditLog{
		AdminID:  adminID,
		Action:   model.AuditActionVerifyPayment,
		EntityID: formatID(paymentID),
		Details:  "Set to " + string(status),
	}); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *paymentService) List(ctx context.Context) ([]model.Payment, error) {
	return s.paymentRepo.List(ctx)
}

func (s *paymentService) ListByBuyer(ctx context.Context, buyerID uint64) ([]model.Payment, error) {
	return s.paymentRepo.ListByBuyer(ctx, buyerID)
}

func (s *paymentService) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Payment, error) {
	return s.paymentRepo.ListBySeller(ctx, sellerID)
}
