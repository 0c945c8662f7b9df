package handler

import (
	"log/slog"
	"net/http"

	"maple/internal/delivery/http/response"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PointsHandler holds dependencies for loyalty points handlers.
type PointsHandler struct {
	uc     usecase.PointsUsecase
	logger *slog.Logger
}

// NewPointsHandler is the constructor for PointsHandler, injected by Fx.
func NewPointsHandler(uc usecase.PointsUsecase, logger *slog.Logger) *PointsHandler {
	return &PointsHandler{
		uc:     uc,
		logger: logger,
	}
}

// AdjustPointsRequest represents a manual staff posting. Points is the
// signed delta.
type AdjustPointsRequest struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	Points      int       `json:"points" validate:"required"`
	Description string    `json:"description" validate:"required"`
}

// GetBalance handles reading the current user's points balance.
func (h *PointsHandler) GetBalance(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Balance retrieved successfully")
}

// GetHistory handles paging the current user's ledger entries.
func (h *PointsHandler) GetHistory(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	limit, offset := parsePagination(c)

	entries, err := h.uc.GetHistory(c.Request().Context(), &usecase.PointsHistoryInput{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "Points history retrieved successfully")
}

// AdjustPoints handles a manual staff adjustment posting.
func (h *PointsHandler) AdjustPoints(c echo.Context) error {
	adminID, err := GetUserID(c)
	if err != nil {
		return err
	}

	var req AdjustPointsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid adjustment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.uc.AdjustPoints(c.Request().Context(), &usecase.AdjustPointsInput{
		UserID:      req.UserID,
		Points:      req.Points,
		Description: req.Description,
		AdminID:     adminID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "Points adjusted successfully")
}
