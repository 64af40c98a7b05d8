package handler

import (
	"net/http"
	"time"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type AuditHandler struct {
	svc service.AuditService
}

func NewAuditHandler(svc service.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

type AuditLogResponse struct {
	ID        uint64 `json:"id"`
	AdminID   uint64 `json:"adminId"`
	Action    string `json:"action"`
	EntityID  string `json:"entityId"`
	Details   string `json:"details"`
	CreatedAt string `json:"createdAt"`
}

func (h *AuditHandler) List(c echo.Context) error {
	entries, err := h.svc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Fetch logs error"))
	}
	resp := make([]AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toAuditLogResponse(e))
	}
	return c.JSON(http.StatusOK, resp)
}

func toAuditLogResponse(e model.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:        e.ID,
		AdminID:   e.AdminID,
		Action:    e.Action,
		EntityID:  e.EntityID,
		Details:   e.Details,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
