package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateCouponRequest struct {
	Code          string      `json:"code" binding:"required"`
	DiscountType  string      `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue int64       `json:"discount_value" binding:"required,min=0"`
	ValidFrom     *time.Time  `json:"valid_from,omitempty"`
	ValidUntil    *time.Time  `json:"valid_until,omitempty"`
	UsageLimit    int64       `json:"usage_limit" binding:"required,min=1"`
	IsActive      *bool       `json:"is_active,omitempty"`
	Courses       []uuid.UUID `json:"courses,omitempty"`
	Categories    []string    `json:"categories,omitempty"`
}

func (r CreateCouponRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

// UpdateCouponRequest is a partial patch; absent fields stay untouched.
type UpdateCouponRequest struct {
	Code          *string      `json:"code,omitempty"`
	DiscountType  *string      `json:"discount_type,omitempty" binding:"omitempty,oneof=percentage fixed"`
	DiscountValue *int64       `json:"discount_value,omitempty" binding:"omitempty,min=0"`
	ValidFrom     *time.Time   `json:"valid_from,omitempty"`
	ValidUntil    *time.Time   `json:"valid_until,omitempty"`
	UsageLimit    *int64       `json:"usage_limit,omitempty" binding:"omitempty,min=1"`
	IsActive      *bool        `json:"is_active,omitempty"`
	Courses       *[]uuid.UUID `json:"courses,omitempty"`
	Categories    *[]string    `json:"categories,omitempty"`
}

type ValidateCouponRequest struct {
	Code     string     `json:"code" binding:"required"`
	CourseID *uuid.UUID `json:"course_id,omitempty"`
}
