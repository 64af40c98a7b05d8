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

type ProductHandler struct {
	svc service.ProductService
}

func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

type ProductResponse struct {
	ID          uint64              `json:"id"`
	SellerID    uint64              `json:"sellerId"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       float64             `json:"price"`
	Category    string              `json:"category"`
	Image       string              `json:"image"`
	Status      model.ProductStatus `json:"status"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
}

func toProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SellerID:    p.SellerID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

type CreateProductRequest struct {
	SellerID    uint64  `json:"sellerId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	product, err := h.svc.Create(c.Request().Context(), req.SellerID, req.Name, req.Description, req.Price, req.Category, req.Image)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse(ve.Error()))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Save Error"))
	}
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// List returns active listings for the public catalog; sellerId switches to
// the seller's own listings in every status.
func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		products []model.Product
		err      error
	)
	if raw := c.QueryParam("sellerId"); raw != "" {
		sellerID, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid sellerId"))
		}
		products, err = h.svc.ListBySeller(ctx, sellerID)
	} else {
		products, err = h.svc.ListActive(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("Fetch error"))
	}
	resp := make([]ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, toProductResponse(&products[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

type DeleteProductRequest struct {
	SellerID uint64     `json:"sellerId"`
	Role     model.Role `json:"role"`
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid id"))
	}
	var req DeleteProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("invalid json"))
	}
	if err := h.svc.Delete(c.Request().Context(), id, req.SellerID, req.Role); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("Not found"))
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, NewErrorResponse("Forbidden"))
		default:
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("Delete Error"))
		}
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
