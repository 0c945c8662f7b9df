package handler

import (
	"log/slog"
	"net/http"

	"maple/internal/delivery/http/response"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MenuHandler holds dependencies for catalog handlers.
type MenuHandler struct {
	uc     usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpsertProductRequest represents the staff-editable catalog fields.
type UpsertProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price_cents" validate:"gte=0"`
	ImageURL    string `json:"image_url"`
	IsAvailable bool   `json:"is_available"`
}

// ListMenu handles listing every orderable product.
func (h *MenuHandler) ListMenu(c echo.Context) error {
	products, err := h.uc.ListMenu(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Menu retrieved successfully")
}

// GetProduct handles loading one product by ID.
func (h *MenuHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// CreateProduct handles adding a product to the catalog (staff only).
func (h *MenuHandler) CreateProduct(c echo.Context) error {
	var req UpsertProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.UpsertProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles replacing a product's catalog fields (staff only).
func (h *MenuHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req UpsertProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), productID, &usecase.UpsertProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}
