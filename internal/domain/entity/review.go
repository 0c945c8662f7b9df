// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer review awaiting or past moderation.
//
// A product review carries both OrderID and ProductID and is unique per
// (order, product, user). A restaurant-level review carries neither and is
// unique per user for their lifetime, regardless of moderation state.
// IsApproved and IsRejected are mutually exclusive; a pending review has both
// unset.
type Review struct {
	ID              uuid.UUID  // The Global Unique Identifier (GUID) for the review.
	OrderID         *uuid.UUID // The delivered order being reviewed; nil for restaurant reviews.
	UserID          uuid.UUID  // The submitting user.
	ProductID       *uuid.UUID // The reviewed product; nil for restaurant reviews.
	Rating          int        // Star rating, integer 1 to 5.
	Comment         string     // Optional free-form comment.
	Images          []string   // Optional uploaded image URLs.
	IsApproved      bool       // Set by a moderator approving the review.
	IsRejected      bool       // Set by a moderator rejecting the review.
	RejectionReason string     // Required when IsRejected is set.
	ModeratedBy     *uuid.UUID // The moderating admin, nil while pending.
	ModeratedAt     *time.Time // Timestamp of the last moderation action.
	CreatedAt       time.Time  // Timestamp of when the review was submitted.
	UpdatedAt       time.Time  // Timestamp of the last modification.
}

// IsPending reports whether the review has not been moderated yet.
func (r *Review) IsPending() bool {
	return !r.IsApproved && !r.IsRejected
}

// IsRestaurantReview reports whether this is a restaurant-level review.
func (r *Review) IsRestaurantReview() bool {
	return r.ProductID == nil && r.OrderID == nil
}
