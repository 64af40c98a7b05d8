package service

import (
	"context"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests. Slices keep
// insertion order; ids are assigned sequentially like autoincrement.

type fakeUserRepo struct {
	users  []model.User
	nextID uint64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByCredentials(ctx context.Context, email, password string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email && f.users[i].Password == password {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	return append([]model.User(nil), f.users...), nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uint64) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) SetDB(db *gorm.DB) {}

type fakeProductRepo struct {
	products []model.Product
	nextID   uint64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *model.Product) error {
	product.ID = f.nextID
	f.nextID++
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (*model.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) ListByStatus(ctx context.Context, status model.ProductStatus) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) UpdateStatus(ctx context.Context, id uint64, status model.ProductStatus) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Status = status
		}
	}
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uint64) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeProductRepo) SetDB(db *gorm.DB) {}

type fakePaymentRepo struct {
	payments []model.Payment
	nextID   uint64
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{nextID: 1}
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *model.Payment) error {
	payment.ID = f.nextID
	f.nextID++
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id uint64) (*model.Payment, error) {
	for i := range f.payments {
		if f.payments[i].ID == id {
			p := f.payments[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentRepo) List(ctx context.Context) ([]model.Payment, error) {
	return append([]model.Payment(nil), f.payments...), nil
}

func (f *fakePaymentRepo) ListByBuyer(ctx context.Context, buyerID uint64) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range f.payments {
		if p.BuyerID == buyerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range f.payments {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, payment *model.Payment) error {
	for i := range f.payments {
		if f.payments[i].ID == payment.ID {
			f.payments[i] = *payment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakePaymentRepo) SetDB(db *gorm.DB) {}

type fakeDisputeRepo struct {
	disputes []model.Dispute
	nextID   uint64
}

func newFakeDisputeRepo() *fakeDisputeRepo {
	return &fakeDisputeRepo{nextID: 1}
}

func (f *fakeDisputeRepo) Create(ctx context.Context, dispute *model.Dispute) error {
	dispute.ID = f.nextID
	f.nextID++
	f.disputes = append(f.disputes, *dispute)
	return nil
}

func (f *fakeDisputeRepo) FindByID(ctx context.Context, id uint64) (*model.Dispute, error) {
	for i := range f.disputes {
		if f.disputes[i].ID == id {
			d := f.disputes[i]
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDisputeRepo) List(ctx context.Context) ([]model.Dispute, error) {
	return append([]model.Dispute(nil), f.disputes...), nil
}

func (f *fakeDisputeRepo) ListByCreator(ctx context.Context, creatorID uint64) ([]model.Dispute, error) {
	var out []model.Dispute
	for _, d := range f.disputes {
		if d.CreatorID == creatorID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDisputeRepo) Update(ctx context.Context, dispute *model.Dispute) error {
	for i := range f.disputes {
		if f.disputes[i].ID == dispute.ID {
			f.disputes[i] = *dispute
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeDisputeRepo) SetDB(db *gorm.DB) {}

type fakeGraduateRepo struct {
	profiles []model.GraduateProfile
	nextID   uint64
}

func newFakeGraduateRepo() *fakeGraduateRepo {
	return &fakeGraduateRepo{nextID: 1}
}

func (f *fakeGraduateRepo) Upsert(ctx context.Context, profile *model.GraduateProfile) (*model.GraduateProfile, error) {
	for i := range f.profiles {
		if f.profiles[i].UserID == profile.UserID {
			profile.ID = f.profiles[i].ID
			f.profiles[i] = *profile
			p := *profile
			return &p, nil
		}
	}
	profile.ID = f.nextID
	f.nextID++
	f.profiles = append(f.profiles, *profile)
	p := *profile
	return &p, nil
}

func (f *fakeGraduateRepo) FindByUser(ctx context.Context, userID uint64) (*model.GraduateProfile, error) {
	for i := range f.profiles {
		if f.profiles[i].UserID == userID {
			p := f.profiles[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGraduateRepo) ListApproved(ctx context.Context) ([]model.GraduateProfile, error) {
	var out []model.GraduateProfile
	for _, p := range f.profiles {
		if p.Approved {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeGraduateRepo) SetDB(db *gorm.DB) {}

type fakeConfigRepo struct {
	cfg *model.PlatformConfig
}

func (f *fakeConfigRepo) Get(ctx context.Context) (*model.PlatformConfig, error) {
	if f.cfg == nil {
		row := model.DefaultPlatformConfig()
		row.ID = 1
		f.cfg = &row
	}
	c := *f.cfg
	return &c, nil
}

func (f *fakeConfigRepo) Save(ctx context.Context, cfg *model.PlatformConfig) error {
	c := *cfg
	f.cfg = &c
	return nil
}

func (f *fakeConfigRepo) SetDB(db *gorm.DB) {}

type fakeAuditRepo struct {
	entries []model.AuditLog
}

func (f *fakeAuditRepo) Append(ctx context.Context, entry *model.AuditLog) error {
	entry.ID = uint64(len(f.entries) + 1)
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) List(ctx context.Context) ([]model.AuditLog, error) {
	return append([]model.AuditLog(nil), f.entries...), nil
}

func (f *fakeAuditRepo) SetDB(db *gorm.DB) {}
