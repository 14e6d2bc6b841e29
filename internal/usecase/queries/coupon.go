package queries

import (
	"context"
	"log/slog"

	"learnhub-api/internal/domain/coupon"
	"learnhub-api/internal/pkg/clock"
	"learnhub-api/internal/pkg/rescache"

	"github.com/google/uuid"
)

type CouponReadStore interface {
	List(ctx context.Context) ([]CouponView, error)
	FindByCode(ctx context.Context, code string) (*CouponView, error)
}

type CouponQueries interface {
	// List serves from the in-memory collection, loading it on first use.
	List(ctx context.Context) ([]CouponView, error)
	// Validate is side-effect-free and fail-closed: any failure, including
	// transport failure, yields {valid: false, discount: 0}.
	Validate(ctx context.Context, code string, courseID *uuid.UUID) CouponValidation
}

type CourseLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CourseView, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
	courses   CourseLookup
	cache     *rescache.Cache[CouponView]
	clock     clock.Clock
}

func NewCouponQueries(
	readStore CouponReadStore,
	courses CourseLookup,
	cache *rescache.Cache[CouponView],
	clk clock.Clock,
) CouponQueries {
	return &couponQueriesImpl{
		readStore: readStore,
		courses:   courses,
		cache:     cache,
		clock:     clk,
	}
}

func (q *couponQueriesImpl) List(ctx context.Context) ([]CouponView, error) {
	return q.cache.GetOrLoad(ctx, q.readStore.List)
}

func (q *couponQueriesImpl) Validate(ctx context.Context, code string, courseID *uuid.UUID) CouponValidation {
	invalid := CouponValidation{Valid: false, Discount: 0}

	view, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		// Callers gate purchases on this answer, so an unreachable backend
		// must read as "not valid" rather than an error. The cause is logged
		// because "service down" and "bad code" are indistinguishable here.
		slog.Warn("coupon validation failed closed", "code", code, "error", err.Error())
		return invalid
	}

	entity, err := CouponFromView(view)
	if err != nil {
		slog.Warn("stored coupon is malformed", "coupon_id", view.ID, "error", err.Error())
		return invalid
	}

	var (
		scopeCourse uuid.UUID
		category    string
		priceCents  int64 = -1
	)
	if courseID != nil {
		courseView, err := q.courses.FindByID(ctx, *courseID)
		if err != nil {
			slog.Warn("coupon validation failed closed", "code", code, "course_id", *courseID, "error", err.Error())
			return invalid
		}
		scopeCourse = courseView.ID
		category = courseView.Category
		priceCents = courseView.PriceCents
	} else if !entity.Scope().IsUnrestricted() {
		// A scoped coupon cannot be validated without knowing the course.
		return invalid
	}

	if err := entity.ValidateRedemption(q.clock.Now(), scopeCourse, category); err != nil {
		return invalid
	}

	discount := entity.Discount().Value()
	if priceCents >= 0 {
		discount = entity.Discount().AmountOff(priceCents)
	}

	return CouponValidation{Valid: true, Discount: discount}
}

// CouponFromView rebuilds the domain aggregate from a read model so the
// entity invariants run against stored data.
func CouponFromView(view *CouponView) (*coupon.Coupon, error) {
	code, err := coupon.NewCode(view.Code)
	if err != nil {
		return nil, err
	}

	dtype, err := coupon.NewDiscountType(view.DiscountType)
	if err != nil {
		return nil, err
	}

	discount, err := coupon.NewDiscount(dtype, view.DiscountValue)
	if err != nil {
		return nil, err
	}

	validity, err := coupon.NewValidity(view.ValidFrom, view.ValidUntil)
	if err != nil {
		return nil, err
	}

	return coupon.NewCoupon(
		view.ID,
		code,
		discount,
		validity,
		view.UsageLimit,
		view.UsedCount,
		view.IsActive,
		coupon.NewScope(view.Courses, view.Categories),
	)
}
