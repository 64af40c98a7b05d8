package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type PlatformHandler struct {
	svc service.PlatformService
}

func NewPlatformHandler(svc service.PlatformService) *PlatformHandler {
	return &PlatformHandler{svc: svc}
}

type ConfigResponse struct {
	PaymentNumber   string   `json:"paymentNumber"`
	Methods         []string `json:"methods"`
	ContactEmail    string   `json:"contactEmail"`
	ContactWhatsApp string   `json:"contactWhatsApp"`
	UpdatedAt       string   `json:"updatedAt"`
}

func toConfigResponse(cfg *model.PlatformConfig) ConfigResponse {
	return ConfigResponse{
		PaymentNumber:   cfg.PaymentNumber,
		Methods:         cfg.MethodList(),
		ContactEmail:    cfg.ContactEmail,
		ContactWhatsApp: cfg.ContactWhatsApp,
		UpdatedAt:       cfg.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *PlatformHandler) GetConfig(c echo.Context) error {
	cfg, err := h.svc.GetConfig(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Fetch error"))
	}
	return c.JSON(http.StatusOK, toConfigResponse(cfg))
}

type UpdateConfigRequest struct {
	PaymentNumber   *string  `json:"paymentNumber"`
	Methods         []string `json:"methods"`
	ContactEmail    *string  `json:"contactEmail"`
	ContactWhatsApp *string  `json:"contactWhatsApp"`
	AdminID         uint64   `json:"adminId"`
}

func (h *PlatformHandler) UpdateConfig(c echo.Context) error {
	var req UpdateConfigRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	cfg, err := h.svc.UpdateConfig(c.Request().Context(), service.ConfigUpdate{
		PaymentNumber:   req.PaymentNumber,
		Methods:         req.Methods,
		ContactEmail:    req.ContactEmail,
		ContactWhatsApp: req.ContactWhatsApp,
	}, req.AdminID)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			return c.JSON(http.StatusForbidden, NewErrorResponse("Forbidden"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Update error"))
	}
	return c.JSON(http.StatusOK, toConfigResponse(cfg))
}
