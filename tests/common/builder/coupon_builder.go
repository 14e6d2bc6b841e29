//go:build unit || e2e

package builder

import (
	"time"

	"learnhub-api/internal/domain/coupon"
	reqdto "learnhub-api/internal/handler/dto/request"
	"learnhub-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID            uuid.UUID
	Code          string
	DiscountType  string
	DiscountValue int64
	ValidFrom     *time.Time
	ValidUntil    *time.Time
	UsageLimit    int64
	UsedCount     int64
	IsActive      bool
	Courses       []uuid.UUID
	Categories    []string
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:            uuid.New(),
		Code:          "SAVE20",
		DiscountType:  "percentage",
		DiscountValue: 20,
		UsageLimit:    100,
		UsedCount:     0,
		IsActive:      true,
	}
}

func (c *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	code, err := coupon.NewCode(c.Code)
	if err != nil {
		return nil, err
	}

	dtype, err := coupon.NewDiscountType(c.DiscountType)
	if err != nil {
		return nil, err
	}

	discount, err := coupon.NewDiscount(dtype, c.DiscountValue)
	if err != nil {
		return nil, err
	}

	validity, err := coupon.NewValidity(c.ValidFrom, c.ValidUntil)
	if err != nil {
		return nil, err
	}

	return coupon.NewCoupon(
		c.ID, code, discount, validity,
		c.UsageLimit, c.UsedCount, c.IsActive,
		coupon.NewScope(c.Courses, c.Categories),
	)
}

func (c *CouponBuilder) BuildView() *queries.CouponView {
	now := time.Now()
	return &queries.CouponView{
		ID:            c.ID,
		Code:          c.Code,
		DiscountType:  c.DiscountType,
		DiscountValue: c.DiscountValue,
		ValidFrom:     c.ValidFrom,
		ValidUntil:    c.ValidUntil,
		UsageLimit:    c.UsageLimit,
		UsedCount:     c.UsedCount,
		IsActive:      c.IsActive,
		Courses:       c.Courses,
		Categories:    c.Categories,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (c *CouponBuilder) BuildCreateDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Code:          c.Code,
		DiscountType:  c.DiscountType,
		DiscountValue: c.DiscountValue,
		ValidFrom:     c.ValidFrom,
		ValidUntil:    c.ValidUntil,
		UsageLimit:    c.UsageLimit,
		IsActive:      &c.IsActive,
		Courses:       c.Courses,
		Categories:    c.Categories,
	}
}

// Fluent builder methods
func (c *CouponBuilder) WithCode(code string) *CouponBuilder {
	c.Code = code
	return c
}

func (c *CouponBuilder) WithDiscount(dtype string, value int64) *CouponBuilder {
	c.DiscountType = dtype
	c.DiscountValue = value
	return c
}

func (c *CouponBuilder) WithValidity(from, until *time.Time) *CouponBuilder {
	c.ValidFrom = from
	c.ValidUntil = until
	return c
}

func (c *CouponBuilder) WithUsage(limit, used int64) *CouponBuilder {
	c.UsageLimit = limit
	c.UsedCount = used
	return c
}

func (c *CouponBuilder) WithScope(courses []uuid.UUID, categories []string) *CouponBuilder {
	c.Courses = courses
	c.Categories = categories
	return c
}

func (c *CouponBuilder) AsInactive() *CouponBuilder {
	c.IsActive = false
	return c
}
