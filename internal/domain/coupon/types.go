package coupon

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (t DiscountType) String() string {
	return string(t)
}

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFixed:
		return true
	default:
		return false
	}
}

func NewDiscountType(s string) (DiscountType, error) {
	t := DiscountType(s)
	if !t.IsValid() {
		return "", ErrInvalidDiscountType
	}
	return t, nil
}
