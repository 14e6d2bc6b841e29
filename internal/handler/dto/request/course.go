package request

import (
	"github.com/google/uuid"
)

type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
	Published   bool   `json:"published"`
}

// UpdateCourseRequest is a partial patch; absent fields stay untouched.
type UpdateCourseRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty" binding:"omitempty,min=0"`
	Published   *bool   `json:"published,omitempty"`
}

type EnrollRequest struct {
	CourseID   uuid.UUID `json:"course_id" binding:"required"`
	CouponCode *string   `json:"coupon_code,omitempty"`
}
