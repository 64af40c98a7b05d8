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

type DisputeHandler struct {
	svc service.DisputeService
}

func NewDisputeHandler(svc service.DisputeService) *DisputeHandler {
	return &DisputeHandler{svc: svc}
}

type DisputeResponse struct {
	ID              uint64              `json:"id"`
	PaymentID       uint64              `json:"paymentId"`
	CreatorID       uint64              `json:"creatorId"`
	Reason          string              `json:"reason"`
	Status          model.DisputeStatus `json:"status"`
	ResolutionNotes string              `json:"resolutionNotes,omitempty"`
	CreatedAt       string              `json:"createdAt"`
	UpdatedAt       string              `json:"updatedAt"`
}

func toDisputeResponse(d *model.Dispute) DisputeResponse {
	return DisputeResponse{
		ID:              d.ID,
		PaymentID:       d.PaymentID,
		CreatorID:       d.CreatorID,
		Reason:          d.Reason,
		Status:          d.Status,
		ResolutionNotes: d.ResolutionNotes,
		CreatedAt:       d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       d.UpdatedAt.Format(time.RFC3339),
	}
}

type CreateDisputeRequest struct {
	PaymentID uint64 `json:"paymentId"`
	CreatorID uint64 `json:"creatorId"`
	Reason    string `json:"reason"`
}

func (h *DisputeHandler) Create(c echo.Context) error {
	var req CreateDisputeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	d, err := h.svc.File(c.Request().Context(), req.PaymentID, req.CreatorID, req.Reason)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse(ve.Error()))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Save failed"))
	}
	return c.JSON(http.StatusCreated, toDisputeResponse(d))
}

func (h *DisputeHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		disputes []model.Dispute
		err      error
	)
	if raw := c.QueryParam("creatorId"); raw != "" {
		creatorID, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid creatorId"))
		}
		disputes, err = h.svc.ListByCreator(ctx, creatorID)
	} else {
		disputes, err = h.svc.List(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Fetch error"))
	}
	resp := make([]DisputeResponse, 0, len(disputes))
	for i := range disputes {
		resp = append(resp, toDisputeResponse(&disputes[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

type UpdateDisputeRequest struct {
	Status          *model.DisputeStatus `json:"status"`
	ResolutionNotes *string              `json:"resolutionNotes"`
	AdminID         uint64               `json:"adminId"`
}

func (h *DisputeHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid id"))
	}
	var req UpdateDisputeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	d, err := h.svc.Update(c.Request().Context(), id, service.DisputeUpdate{
		Status:          req.Status,
		ResolutionNotes: req.ResolutionNotes,
	}, req.AdminID)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("Dispute not found"))
		case errors.Is(err, service.ErrInvalidTransition):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("Dispute already closed"))
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, NewErrorResponse(ve.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("Update failed"))
		}
	}
	return c.JSON(http.StatusOK, toDisputeResponse(d))
}
