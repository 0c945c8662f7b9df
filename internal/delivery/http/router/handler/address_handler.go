package handler

import (
	"log/slog"
	"net/http"

	"maple/internal/delivery/http/response"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AddressHandler holds dependencies for saved address handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpsertAddressRequest represents the editable fields of a saved address.
type UpsertAddressRequest struct {
	Label      string `json:"label"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	Province   string `json:"province" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	IsDefault  bool   `json:"is_default"`
}

func (r *UpsertAddressRequest) toInput() *usecase.UpsertAddressInput {
	return &usecase.UpsertAddressInput{
		Label:      r.Label,
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		Province:   r.Province,
		PostalCode: r.PostalCode,
		IsDefault:  r.IsDefault,
	}
}

// ListAddresses handles listing the user's saved addresses, default first.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// CreateAddress handles saving a new address.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	var req UpsertAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}

// UpdateAddress handles replacing an address the user owns.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req UpsertAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), userID, addressID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

// DeleteAddress handles removing an address the user owns.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Address deleted"}, "Address deleted successfully")
}
