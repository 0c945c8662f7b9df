package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"maple/internal/delivery/http/response"
	"maple/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// reviewImageLimit caps how many photos one review may carry.
const reviewImageLimit = 5

// ReviewHandler holds dependencies for review and moderation handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// SubmitRestaurantReviewRequest represents a restaurant-level review body.
type SubmitRestaurantReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// ModerateReviewRequest carries the optional rejection reason.
type ModerateReviewRequest struct {
	Reason string `json:"reason"`
}

// ListReviewable handles listing the products of a delivered order the user
// may still review.
func (h *ReviewHandler) ListReviewable(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	products, err := h.uc.ListReviewable(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Reviewable products retrieved successfully")
}

// SubmitProductReview handles filing a per-product review. The body is
// multipart form data so photos ride along with the rating.
func (h *ReviewHandler) SubmitProductReview(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.FormValue("order_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	productID, err := uuid.Parse(c.FormValue("product_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	rating, err := strconv.Atoi(c.FormValue("rating"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "rating must be an integer")
	}

	input := &usecase.SubmitProductReviewInput{
		UserID:    userID,
		OrderID:   orderID,
		ProductID: productID,
		Rating:    rating,
		Comment:   c.FormValue("comment"),
	}

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		files := form.File["images"]
		if len(files) > reviewImageLimit {
			return response.BadRequest(c, "VALIDATION_ERROR", "too many review images")
		}

		for _, fileHeader := range files {
			file, openErr := fileHeader.Open()
			if openErr != nil {
				return response.BadRequest(c, "INVALID_INPUT", "Failed to read uploaded image")
			}
			defer file.Close()

			input.Images = append(input.Images, usecase.ReviewImage{
				Reader:   file,
				Filename: fileHeader.Filename,
			})
		}
	}

	review, err := h.uc.SubmitProductReview(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted successfully")
}

// SubmitRestaurantReview handles filing a restaurant-level review.
func (h *ReviewHandler) SubmitRestaurantReview(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	var req SubmitRestaurantReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := h.uc.SubmitRestaurantReview(c.Request().Context(), &usecase.SubmitRestaurantReviewInput{
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted successfully")
}

// ListMyReviews handles paging the current user's own reviews.
func (h *ReviewHandler) ListMyReviews(c echo.Context) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	limit, offset := parsePagination(c)

	reviews, err := h.uc.ListMyReviews(c.Request().Context(), userID, &usecase.ListReviewsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// ListProductReviews handles paging the approved reviews of one product.
// This route is public.
func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	limit, offset := parsePagination(c)

	reviews, err := h.uc.ListProductReviews(c.Request().Context(), productID, &usecase.ListReviewsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// ListPendingReviews handles the moderation queue, oldest first (staff only).
func (h *ReviewHandler) ListPendingReviews(c echo.Context) error {
	limit, offset := parsePagination(c)

	reviews, err := h.uc.ListPendingReviews(c.Request().Context(), &usecase.ListReviewsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "Pending reviews retrieved successfully")
}

// ApproveReview handles approving a review (staff only).
func (h *ReviewHandler) ApproveReview(c echo.Context) error {
	moderatorID, err := GetUserID(c)
	if err != nil {
		return err
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.uc.ApproveReview(c.Request().Context(), &usecase.ModerateReviewInput{
		ReviewID:    reviewID,
		ModeratorID: moderatorID,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review approved"}, "Review approved successfully")
}

// RejectReview handles rejecting a review with a mandatory reason (staff only).
func (h *ReviewHandler) RejectReview(c echo.Context) error {
	moderatorID, err := GetUserID(c)
	if err != nil {
		return err
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req ModerateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}

	if err := h.uc.RejectReview(c.Request().Context(), &usecase.ModerateReviewInput{
		ReviewID:    reviewID,
		ModeratorID: moderatorID,
		Reason:      req.Reason,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review rejected"}, "Review rejected successfully")
}
