package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
	ErrCouponInactive    = errors.New("coupon is not active")
	ErrCouponExhausted   = errors.New("coupon usage limit reached")
	ErrCouponOutOfScope  = errors.New("coupon does not apply to this course")
	ErrInvalidUsageLimit = errors.New("usage limit must be positive")
	ErrUsageAboveLimit   = errors.New("used count exceeds usage limit")
)

type Coupon struct {
	id         uuid.UUID
	code       Code
	discount   Discount
	validity   Validity
	usageLimit int64
	usedCount  int64
	isActive   bool
	scope      Scope
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCoupon(
	id uuid.UUID,
	code Code,
	discount Discount,
	validity Validity,
	usageLimit int64,
	usedCount int64,
	isActive bool,
	scope Scope,
) (*Coupon, error) {
	if usageLimit <= 0 {
		return nil, ErrInvalidUsageLimit
	}
	if isActive && usedCount > usageLimit {
		return nil, ErrUsageAboveLimit
	}

	return &Coupon{
		id:         id,
		code:       code,
		discount:   discount,
		validity:   validity,
		usageLimit: usageLimit,
		usedCount:  usedCount,
		isActive:   isActive,
		scope:      scope,
	}, nil
}

func (c *Coupon) ID() uuid.UUID        { return c.id }
func (c *Coupon) Code() Code           { return c.code }
func (c *Coupon) Discount() Discount   { return c.discount }
func (c *Coupon) Validity() Validity   { return c.validity }
func (c *Coupon) UsageLimit() int64    { return c.usageLimit }
func (c *Coupon) UsedCount() int64     { return c.usedCount }
func (c *Coupon) IsActive() bool       { return c.isActive }
func (c *Coupon) Scope() Scope         { return c.scope }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time { return c.updatedAt }

func (c *Coupon) HasRemainingUses() bool {
	return c.usedCount < c.usageLimit
}

// ValidateRedemption checks every redemption rule for a purchase of the given
// course at time t. The first violated rule is returned.
func (c *Coupon) ValidateRedemption(t time.Time, courseID uuid.UUID, category string) error {
	if !c.isActive {
		return ErrCouponInactive
	}
	if !c.validity.Contains(t) {
		if from := c.validity.From(); from != nil && t.Before(*from) {
			return ErrCouponNotYetValid
		}
		return ErrCouponExpired
	}
	if !c.HasRemainingUses() {
		return ErrCouponExhausted
	}
	if !c.scope.AppliesTo(courseID, category) {
		return ErrCouponOutOfScope
	}
	return nil
}

func (c *Coupon) ApplyDiscount(basePriceCents int64) int64 {
	return c.discount.Apply(basePriceCents)
}
