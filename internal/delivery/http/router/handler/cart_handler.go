package handler

import (
	"log/slog"
	"net/http"

	"maple/internal/delivery/http/response"
	"maple/internal/domain/entity"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// CustomizationRequest represents one customization selection on a line item.
type CustomizationRequest struct {
	Name           string `json:"name" validate:"required"`
	SurchargeCents int64  `json:"surcharge_cents"`
}

// AddCartItemRequest represents the request body for staging a product.
type AddCartItemRequest struct {
	ProductID      uuid.UUID              `json:"product_id" validate:"required"`
	Quantity       int                    `json:"quantity" validate:"required,gt=0"`
	Customizations []CustomizationRequest `json:"customizations"`
}

// UpdateCartItemRequest represents the request body for changing a quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// GetCart handles loading the current user's priced cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Cart retrieved successfully")
}

// AddItem handles staging a product in the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	customizations := make([]entity.CustomizationSelection, 0, len(req.Customizations))
	for _, custom := range req.Customizations {
		customizations = append(customizations, entity.CustomizationSelection{
			Name:           custom.Name,
			SurchargeCents: custom.SurchargeCents,
		})
	}

	if err := h.uc.AddItem(c.Request().Context(), &usecase.AddCartItemInput{
		UserID:         userID,
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		Customizations: customizations,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Item added"}, "Cart item added successfully")
}

// UpdateItem handles changing a staged item's quantity; zero removes it.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.UpdateItemQuantity(c.Request().Context(), &usecase.UpdateCartItemInput{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: req.Quantity,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Item updated"}, "Cart item updated successfully")
}

// RemoveItem handles removing a staged item.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), userID, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Item removed"}, "Cart item removed successfully")
}

// ClearCart handles emptying the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.ClearCart(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart cleared"}, "Cart cleared successfully")
}
