package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"maple/internal/delivery/http/response"
	"maple/internal/domain/entity"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpdateOrderStatusRequest represents a staff-driven status change.
// ExpectedFrom guards against acting on a stale view of the board.
type UpdateOrderStatusRequest struct {
	ExpectedFrom string `json:"expected_from" validate:"required"`
	To           string `json:"to" validate:"required"`
}

// ListMyOrders handles paging the current user's order history.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	limit, offset := parsePagination(c)

	orders, err := h.uc.ListOrders(c.Request().Context(), &usecase.ListOrdersInput{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder handles loading one order with ownership enforced.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// GetPickupQRCode renders the order's pickup QR code as a PNG.
func (h *OrderHandler) GetPickupQRCode(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.uc.PickupQRCode(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListOrdersByStatus handles the staff board view of one status column.
func (h *OrderHandler) ListOrdersByStatus(c echo.Context) error {
	status := entity.OrderStatus(c.QueryParam("status"))
	limit, offset := parsePagination(c)

	orders, err := h.uc.ListOrdersByStatus(c.Request().Context(), &usecase.ListOrdersByStatusInput{
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrderAsStaff handles loading any order without the ownership check.
func (h *OrderHandler) GetOrderAsStaff(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), uuid.Nil, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// UpdateStatus handles moving an order along the state machine (staff only).
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	adminID, err := GetUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), &usecase.UpdateOrderStatusInput{
		OrderID:      orderID,
		ExpectedFrom: entity.OrderStatus(req.ExpectedFrom),
		To:           entity.OrderStatus(req.To),
		AdminID:      adminID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// parsePagination reads limit/offset query parameters with sane defaults.
func parsePagination(c echo.Context) (limit, offset int) {
	limit = 20
	offset = 0

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}
