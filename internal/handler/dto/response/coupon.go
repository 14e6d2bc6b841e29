package response

import (
	"time"

	"learnhub-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CouponResponse struct {
	ID            uuid.UUID   `json:"id"`
	Code          string      `json:"code"`
	DiscountType  string      `json:"discountType"`
	DiscountValue int64       `json:"discountValue"`
	ValidFrom     *time.Time  `json:"validFrom,omitempty"`
	ValidUntil    *time.Time  `json:"validUntil,omitempty"`
	UsageLimit    int64       `json:"usageLimit"`
	UsedCount     int64       `json:"usedCount"`
	IsActive      bool        `json:"isActive"`
	Courses       []uuid.UUID `json:"courses"`
	Categories    []string    `json:"categories"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type CouponValidationResponse struct {
	Valid    bool  `json:"valid"`
	Discount int64 `json:"discount"`
}

func FromCouponView(cv *queries.CouponView) *CouponResponse {
	var resp CouponResponse
	// Field names line up one to one; copier keeps the mapping from drifting
	// when columns are added.
	if err := copier.Copy(&resp, cv); err != nil {
		return &CouponResponse{ID: cv.ID, Code: cv.Code}
	}
	return &resp
}

func FromCouponViews(views []queries.CouponView) []*CouponResponse {
	resps := make([]*CouponResponse, 0, len(views))
	for i := range views {
		resps = append(resps, FromCouponView(&views[i]))
	}
	return resps
}

func FromCouponValidation(v *queries.CouponValidation) *CouponValidationResponse {
	return &CouponValidationResponse{
		Valid:    v.Valid,
		Discount: v.Discount,
	}
}
