package handler

import (
	"errors"
	"net/http"

	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/agrimarket/marketplace-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// AccountResponse is the subset of a user returned by auth endpoints.
// The password never appears here.
type AccountResponse struct {
	ID    uint64     `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

type AuthResponse struct {
	User AccountResponse `json:"user"`
}

func toAccountResponse(u *model.User) AccountResponse {
	return AccountResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

type RegisterRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
	WhatsApp string     `json:"whatsapp"`
	Location string     `json:"location"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	user, err := h.svc.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Role, req.WhatsApp, req.Location)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.Is(err, service.ErrDuplicateEmail):
			return c.JSON(http.StatusBadRequest, NewErrorResponse("Email already registered"))
		case errors.As(err, &ve):
			return c.JSON(http.StatusBadRequest, NewErrorResponse(ve.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("Registration Failed"))
		}
	}
	return c.JSON(http.StatusCreated, AuthResponse{User: toAccountResponse(user)})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	user, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, NewErrorResponse("Incorrect credentials"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Login Error"))
	}
	return c.JSON(http.StatusOK, AuthResponse{User: toAccountResponse(user)})
}
