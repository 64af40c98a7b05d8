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

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type UserResponse struct {
	ID        uint64     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	WhatsApp  string     `json:"whatsapp,omitempty"`
	Location  string     `json:"location,omitempty"`
	CreatedAt string     `json:"createdAt"`
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		WhatsApp:  u.WhatsApp,
		Location:  u.Location,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Fetch failed"))
	}
	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

type DeleteUserRequest struct {
	AdminID uint64 `json:"adminId"`
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid id"))
	}
	var req DeleteUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	if err := h.svc.Delete(c.Request().Context(), id, req.AdminID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("Not found"))
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, NewErrorResponse("Forbidden"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("Delete failed"))
		}
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
