package service

import (
	"context"
	"errors"
	"testing"

	"github.com/agrimarket/marketplace-backend/internal/model"
)

func TestGetConfigCreatesDefaults(t *testing.T) {
	svc := NewPlatformService(&fakeConfigRepo{}, newFakeUserRepo(), &fakeAuditRepo{})

	cfg, err := svc.GetConfig(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cfg.PaymentNumber != model.DefaultPaymentNumber {
		t.Fatalf("payment number=%q want default", cfg.PaymentNumber)
	}
	if got := cfg.MethodList(); len(got) != 3 || got[0] != "EcoCash" {
		t.Fatalf("methods=%v want defaults", got)
	}
}

func TestUpdateConfigRequiresAdmin(t *testing.T) {
	userRepo := newFakeUserRepo()
	auditRepo := &fakeAuditRepo{}
	svc := NewPlatformService(&fakeConfigRepo{}, userRepo, auditRepo)
	ctx := context.Background()
	admin, seller := seedAccounts(t, userRepo)

	number := "0712000000"
	if _, err := svc.UpdateConfig(ctx, ConfigUpdate{PaymentNumber: &number}, seller.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("seller actor: err=%v want ErrForbidden", err)
	}

	cfg, err := svc.UpdateConfig(ctx, ConfigUpdate{
		PaymentNumber: &number,
		Methods:       []string{"EcoCash", "OneMoney"},
	}, admin.ID)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if cfg.PaymentNumber != number {
		t.Fatalf("payment number=%q want %q", cfg.PaymentNumber, number)
	}
	if got := cfg.MethodList(); len(got) != 2 || got[1] != "OneMoney" {
		t.Fatalf("methods=%v", got)
	}

	// Partial update keeps untouched fields.
	email := "support@agrimarket.co.zw"
	cfg, err = svc.UpdateConfig(ctx, ConfigUpdate{ContactEmail: &email}, admin.ID)
	if err != nil {
		t.Fatalf("partial update: %v", err)
	}
	if cfg.PaymentNumber != number || cfg.ContactEmail != email {
		t.Fatalf("cfg=%+v want earlier number kept", cfg)
	}

	if len(auditRepo.entries) != 2 || auditRepo.entries[0].Action != model.AuditActionUpdateConfig {
		t.Fatalf("audit entries=%v", auditRepo.entries)
	}
	if auditRepo.entries[0].EntityID != "SYSTEM" {
		t.Fatalf("audit entity=%q want SYSTEM", auditRepo.entries[0].EntityID)
	}
}
