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

type GraduateHandler struct {
	svc service.GraduateService
}

func NewGraduateHandler(svc service.GraduateService) *GraduateHandler {
	return &GraduateHandler{svc: svc}
}

type GraduateResponse struct {
	ID              uint64   `json:"id"`
	UserID          uint64   `json:"userId"`
	UserName        string   `json:"userName"`
	Degree          string   `json:"degree"`
	Institution     string   `json:"institution"`
	Year            int      `json:"year"`
	Bio             string   `json:"bio"`
	Skills          []string `json:"skills"`
	Approved        bool     `json:"approved"`
	ContactEmail    string   `json:"contactEmail"`
	ContactWhatsApp string   `json:"contactWhatsApp,omitempty"`
	CertificateURL  string   `json:"certificateUrl,omitempty"`
	CreatedAt       string   `json:"createdAt"`
}

func toGraduateResponse(g *model.GraduateProfile) GraduateResponse {
	return GraduateResponse{
		ID:              g.ID,
		UserID:          g.UserID,
		UserName:        g.UserName,
		Degree:          g.Degree,
		Institution:     g.Institution,
		Year:            g.Year,
		Bio:             g.Bio,
		Skills:          g.SkillList(),
		Approved:        g.Approved,
		ContactEmail:    g.ContactEmail,
		ContactWhatsApp: g.ContactWhatsApp,
		CertificateURL:  g.CertificateURL,
		CreatedAt:       g.CreatedAt.Format(time.RFC3339),
	}
}

type UpsertGraduateRequest struct {
	UserID          uint64   `json:"userId"`
	UserName        string   `json:"userName"`
	Degree          string   `json:"degree"`
	Institution     string   `json:"institution"`
	Year            int      `json:"year"`
	Bio             string   `json:"bio"`
	Skills          []string `json:"skills"`
	Approved        bool     `json:"approved"`
	ContactEmail    string   `json:"contactEmail"`
	ContactWhatsApp string   `json:"contactWhatsApp"`
	CertificateURL  string   `json:"certificateUrl"`
}

func (h *GraduateHandler) Upsert(c echo.Context) error {
	var req UpsertGraduateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	profile, err := h.svc.Upsert(c.Request().Context(), service.GraduateProfileInput{
		UserID:          req.UserID,
		UserName:        req.UserName,
		Degree:          req.Degree,
		Institution:     req.Institution,
		Year:            req.Year,
		Bio:             req.Bio,
		Skills:          req.Skills,
		Approved:        req.Approved,
		ContactEmail:    req.ContactEmail,
		ContactWhatsApp: req.ContactWhatsApp,
		CertificateURL:  req.CertificateURL,
	})
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse(ve.Error()))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Profile error"))
	}
	return c.JSON(http.StatusCreated, toGraduateResponse(profile))
}

// List returns approved profiles for the public portal; userId fetches that
// user's own profile whether or not it has been approved yet.
func (h *GraduateHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if raw := c.QueryParam("userId"); raw != "" {
		userID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid userId"))
		}
		profile, err := h.svc.GetByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.JSON(http.StatusOK, []GraduateResponse{})
			}
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("Fetch error"))
		}
		return c.JSON(http.StatusOK, []GraduateResponse{toGraduateResponse(profile)})
	}

	profiles, err := h.svc.ListApproved(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Fetch error"))
	}
	resp := make([]GraduateResponse, 0, len(profiles))
	for i := range profiles {
		resp = append(resp, toGraduateResponse(&profiles[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
