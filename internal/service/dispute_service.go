package service

import (
	"context"
	"errors"
	"strings"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/repository"
	"gorm.io/gorm"
)

type DisputeUpdate struct {
	Status          *model.DisputeStatus
	ResolutionNotes *string
}

type DisputeService interface {
	// File opens a dispute against a payment. Either party may file; the
	// payment id is recorded as given without an existence check.
	File(ctx context.Context, paymentID, creatorID uint64, reason string) (*model.Dispute, error)
	Update(ctx context.Context, disputeID uint64, upd DisputeUpdate, adminID uint64) (*model.Dispute, error)
	List(ctx context.Context) ([]model.Dispute, error)
	ListByCreator(ctx context.Context, creatorID uint64) ([]model.Dispute, error)
}

type disputeService struct {
	disputeRepo repository.DisputeRepository
	auditRepo   repository.AuditLogRepository
}

func NewDisputeService(disputeRepo repository.DisputeRepository, auditRepo repository.AuditLogRepository) DisputeService {
	return &disputeService{disputeRepo: disputeRepo, auditRepo: auditRepo}
}

func (s *disputeService) File(ctx context.Context, paymentID, creatorID uint64, reason string) (*model.Dispute, error) {
	if paymentID == 0 {
		return nil, validationError("payment is required")
	}
	if creatorID == 0 {
		return nil, validationError("creator is required")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, validationError("reason is required")
	}

	d := &model.Dispute{
		PaymentID: paymentID,
		CreatorID: creatorID,
		Reason:    reason,
		Status:    model.DisputeStatusOpen,
	}
	if err := s.disputeRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update applies an admin's status change and/or resolution notes. Resolved
// and rejected are terminal. Resolution has no effect on the underlying
// payment or product; reversing a confirmed payment is a manual process
// outside this system.
func (s *disputeService) Update(ctx context.Context, disputeID uint64, upd DisputeUpdate, adminID uint64) (*model.Dispute, error) {
	if upd.Status == nil && upd.ResolutionNotes == nil {
		return nil, validationError("nothing to update")
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, validationError("invalid dispute status")
	}

	d, err := s.disputeRepo.FindByID(ctx, disputeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if d.Status.Terminal() {
		return nil, ErrInvalidTransition
	}

	var changes []string
	if upd.Status != nil {
		d.Status = *upd.Status
		changes = append(changes, "status="+string(*upd.Status))
	}
	if upd.ResolutionNotes != nil {
		d.ResolutionNotes = *upd.ResolutionNotes
		changes = append(changes, "notes updated")
	}
	if err := s.disputeRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	if err := s.auditRepo.Append(ctx, &model.AuditLog{
		AdminID:  adminID,
		Action:   model.AuditActionUpdateDispute,
		EntityID: formatID(disputeID),
		Details:  strings.Join(changes, ", "),
	}); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *disputeService) List(ctx context.Context) ([]model.Dispute, error) {
	return s.disputeRepo.List(ctx)
}

func (s *disputeService) ListByCreator(ctx context.Context, creatorID uint64) ([]model.Dispute, error) {
	return s.disputeRepo.ListByCreator(ctx, creatorID)
}
