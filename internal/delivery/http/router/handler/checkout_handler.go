package handler

import (
	"log/slog"
	"net/http"

	"maple/internal/delivery/http/response"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CheckoutHandler holds dependencies for payment intent handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateIntentRequest represents the request body for opening a payment
// intent against the current cart.
type CreateIntentRequest struct {
	AddressID   uuid.UUID `json:"address_id" validate:"required"`
	PointsToUse int       `json:"points_to_use" validate:"gte=0"`
	Currency    string    `json:"currency" validate:"required,len=3"`
}

// ConfirmRequest identifies the processor intent the client just completed.
type ConfirmRequest struct {
	IntentID string `json:"intent_id" validate:"required"`
}

// CreateIntent handles pricing the cart and registering a payment intent.
func (h *CheckoutHandler) CreateIntent(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	var req CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.CreateIntent(c.Request().Context(), &usecase.CreateIntentInput{
		UserID:      userID,
		AddressID:   req.AddressID,
		PointsToUse: req.PointsToUse,
		Currency:    req.Currency,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Payment intent created successfully")
}

// Confirm handles verifying the intent and settling the order atomically.
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.ConfirmAndSettle(c.Request().Context(), &usecase.ConfirmAndSettleInput{
		UserID:   userID,
		IntentID: req.IntentID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output.Order, "Order settled successfully")
}
