package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type stubPaymentService struct {
	verifyErr error
	verified  *model.Payment

	gotID     uint64
	gotStatus model.PaymentStatus
	gotAdmin  uint64
}

func (s *stubPaymentService) Submit(ctx context.Context, buyerID, sellerID, productID uint64, amount float64, method, reference string) (*model.Payment, error) {
	return &model.Payment{ID: 1, BuyerID: buyerID, SellerID: sellerID, ProductID: productID, Amount: amount, PaymentMethod: method, Reference: reference, Status: model.PaymentStatusPending}, nil
}

func (s *stubPaymentService) Verify(ctx context.Context, paymentID uint64, status model.PaymentStatus, adminID uint64) (*model.Payment, error) {
	s.gotID, s.gotStatus, s.gotAdmin = paymentID, status, adminID
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	return s.verified, nil
}

func (s *stubPaymentService) List(ctx context.Context) ([]model.Payment, error) {
	return nil, nil
}

func (s *stubPaymentService) ListByBuyer(ctx context.Context, buyerID uint64) ([]model.Payment, error) {
	return nil, nil
}

func (s *stubPaymentService) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Payment, error) {
	return nil, nil
}

func newVerifyContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPatch, "/api/payments/7/verify", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/payments/:id/verify")
	c.SetParamNames("id")
	c.SetParamValues("7")
	return c, rec
}

func TestVerifyPayment(t *testing.T) {
	e := echo.New()
	stub := &stubPaymentService{
		verified: &model.Payment{ID: 7, BuyerID: 1, SellerID: 2, ProductID: 3, Amount: 50, Status: model.PaymentStatusConfirmed},
	}
	h := NewPaymentHandler(stub)

	c, rec := newVerifyContext(e, `{"status":"confirmed","adminId":9}`)
	if err := h.Verify(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d want 200", rec.Code)
	}
	if stub.gotID != 7 || stub.gotStatus != model.PaymentStatusConfirmed || stub.gotAdmin != 9 {
		t.Fatalf("service called with id=%d status=%s admin=%d", stub.gotID, stub.gotStatus, stub.gotAdmin)
	}

	var resp PaymentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != model.PaymentStatusConfirmed {
		t.Fatalf("resp status=%s", resp.Status)
	}
}

func TestVerifyPaymentErrorMapping(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unknown payment", service.ErrNotFound, http.StatusNotFound},
		{"already final", service.ErrInvalidTransition, http.StatusBadRequest},
		{"store down", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPaymentHandler(&stubPaymentService{verifyErr: tt.err})
			c, rec := newVerifyContext(e, `{"status":"confirmed","adminId":9}`)
			if err := h.Verify(c); err != nil {
				t.Fatalf("handler: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("code=%d want %d", rec.Code, tt.wantCode)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error == "" {
				t.Fatal("error body must carry a message")
			}
		})
	}
}

func TestVerifyPaymentBadID(t *testing.T) {
	e := echo.New()
	h := NewPaymentHandler(&stubPaymentService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/payments/abc/verify", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/payments/:id/verify")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Verify(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code=%d want 400", rec.Code)
	}
}

func TestSubmitPayment(t *testing.T) {
	e := echo.New()
	h := NewPaymentHandler(&stubPaymentService{})

	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(`{"buyerId":1,"sellerId":2,"productId":3,"amount":50,"paymentMethod":"EcoCash"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("code=%d want 201", rec.Code)
	}
	var resp PaymentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != model.PaymentStatusPending {
		t.Fatalf("status=%s want pending", resp.Status)
	}
}
