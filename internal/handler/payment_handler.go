package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	svc service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

type PaymentResponse struct {
	ID            uint64              `json:"id"`
	BuyerID       uint64              `json:"buyerId"`
	SellerID      uint64              `json:"sellerId"`
	ProductID     uint64              `json:"productId"`
	Amount        float64             `json:"amount"`
	PaymentMethod string              `json:"paymentMethod"`
	Reference     string              `json:"reference"`
	Status        model.PaymentStatus `json:"status"`
	CreatedAt     string              `json:"createdAt"`
	UpdatedAt     string              `json:"updatedAt"`
}

func toPaymentResponse(p *model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		BuyerID:       p.BuyerID,
		SellerID:      p.SellerID,
		ProductID:     p.ProductID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}

type SubmitPaymentRequest struct {
	BuyerID       uint64  `json:"buyerId"`
	SellerID      uint64  `json:"sellerId"`
	ProductID     uint64  `json:"productId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	Reference     string  `json:"reference"`
}

func (h *PaymentHandler) Submit(c echo.Context) error {
	var req SubmitPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	p, err := h.svc.Submit(c.Request().Context(), req.BuyerID, req.SellerID, req.ProductID, req.Amount, req.PaymentMethod, req.Reference)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse(ve.Error()))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Save error"))
	}
	return c.JSON(http.StatusCreated, toPaymentResponse(p))
}

// List returns every payment newest first; buyerId / sellerId narrow the
// result server-side for the role dashboards.
func (h *PaymentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		payments []model.Payment
		err      error
	)
	switch {
	case c.QueryParam("buyerId") != "":
		var buyerID uint64
		if buyerID, err = strconv.ParseUint(c.QueryParam("buyerId"), 10, 64); err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid buyerId"))
		}
		payments, err = h.svc.ListByBuyer(ctx, buyerID)
	case c.QueryParam("sellerId") != "":
		var sellerID uint64
		if sellerID, err = strconv.ParseUint(c.QueryParam("sellerId"), 10, 64); err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid sellerId"))
		}
		payments, err = h.svc.ListBySeller(ctx, sellerID)
	default:
		payments, err = h.svc.List(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Fetch error"))
	}
	resp := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, toPaymentResponse(&payments[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

type VerifyPaymentRequest struct {
	Status  model.PaymentStatus `json:"status"`
	AdminID uint64              `json:"adminId"`
}

func (h *PaymentHandler) Verify(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid id"))
	}
	var req VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	p, err := h.svc.Verify(c.Request().Context(), id, req.Status, req.AdminID)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("Payment not found"))
		case errors.Is(err, service.ErrInvalidTransition):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("Payment already verified"))
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, NewErrorResponse(ve.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("Verify Error"))
		}
	}
	return c.JSON(http.StatusOK, toPaymentResponse(p))
}
