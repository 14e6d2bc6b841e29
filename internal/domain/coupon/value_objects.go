package coupon

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountType    = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidValidityWindow  = errors.New("valid_from must not be after valid_until")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	dtype DiscountType
	value int64
}

func NewDiscount(dtype DiscountType, value int64) (Discount, error) {
	switch dtype {
	case DiscountPercentage:
		if value < 0 || value > 100 {
			return Discount{}, ErrInvalidDiscountPercent
		}
	case DiscountFixed:
		if value < 0 {
			return Discount{}, ErrInvalidDiscountAmount
		}
	default:
		return Discount{}, ErrInvalidDiscountType
	}
	return Discount{dtype: dtype, value: value}, nil
}

func (d Discount) Type() DiscountType { return d.dtype }
func (d Discount) Value() int64       { return d.value }

// AmountOff returns the discount in cents for a given price, never exceeding
// the price itself.
func (d Discount) AmountOff(priceCents int64) int64 {
	var off int64
	switch d.dtype {
	case DiscountPercentage:
		off = priceCents * d.value / 100
	case DiscountFixed:
		off = d.value
	}
	if off > priceCents {
		return priceCents
	}
	return off
}

func (d Discount) Apply(priceCents int64) int64 {
	return priceCents - d.AmountOff(priceCents)
}

// Validity is the time window a coupon can be redeemed in. A nil bound is open.
type Validity struct {
	from  *time.Time
	until *time.Time
}

func NewValidity(from, until *time.Time) (Validity, error) {
	if from != nil && until != nil && from.After(*until) {
		return Validity{}, ErrInvalidValidityWindow
	}
	return Validity{from: from, until: until}, nil
}

func (v Validity) From() *time.Time  { return v.from }
func (v Validity) Until() *time.Time { return v.until }

func (v Validity) Contains(t time.Time) bool {
	if v.from != nil && t.Before(*v.from) {
		return false
	}
	if v.until != nil && t.After(*v.until) {
		return false
	}
	return true
}

// Scope limits a coupon to specific courses or categories. Empty scope means
// the coupon applies everywhere.
type Scope struct {
	courses    []uuid.UUID
	categories []string
}

func NewScope(courses []uuid.UUID, categories []string) Scope {
	return Scope{courses: courses, categories: categories}
}

func (s Scope) Courses() []uuid.UUID { return s.courses }
func (s Scope) Categories() []string { return s.categories }
func (s Scope) IsUnrestricted() bool { return len(s.courses) == 0 && len(s.categories) == 0 }

func (s Scope) AppliesTo(courseID uuid.UUID, category string) bool {
	if s.IsUnrestricted() {
		return true
	}
	for _, id := range s.courses {
		if id == courseID {
			return true
		}
	}
	for _, c := range s.categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}
