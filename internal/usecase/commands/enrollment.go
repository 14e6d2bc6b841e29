package commands

import (
	"context"
	"log/slog"

	reqdto "learnhub-api/internal/handler/dto/request"
	"learnhub-api/internal/infra"
	"learnhub-api/internal/infra/db"
	"learnhub-api/internal/infra/repository"
	"learnhub-api/internal/pkg/clock"
	"learnhub-api/internal/pkg/errs"
	"learnhub-api/internal/pkg/rescache"
	"learnhub-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrAlreadyEnrolled = errs.New("student already enrolled in course")
	ErrCouponRejected  = errs.New("coupon cannot be applied to this purchase")
	ErrCouponExhausted = errs.New("coupon has no remaining uses")
)

type EnrollmentCommands interface {
	Enroll(ctx context.Context, studentID uuid.UUID, req reqdto.EnrollRequest) (*queries.EnrollmentView, error)
}

type EnrollmentWriteStore interface {
	Create(ctx context.Context, tx pgx.Tx, e repository.NewEnrollment) (*queries.EnrollmentView, error)
}

type CouponRedeemStore interface {
	FindByCode(ctx context.Context, code string) (*queries.CouponView, error)
	RedeemByCode(ctx context.Context, tx pgx.Tx, code string) error
}

type enrollmentCommandsImpl struct {
	pool        db.Beginner
	enrollments EnrollmentWriteStore
	courses     queries.CourseReadStore
	coupons     CouponRedeemStore
	couponCache *rescache.Cache[queries.CouponView]
	clock       clock.Clock
}

func NewEnrollmentCommands(
	pool db.Beginner,
	enrollments EnrollmentWriteStore,
	courses queries.CourseReadStore,
	coupons CouponRedeemStore,
	couponCache *rescache.Cache[queries.CouponView],
	clk clock.Clock,
) EnrollmentCommands {
	return &enrollmentCommandsImpl{
		pool:        pool,
		enrollments: enrollments,
		courses:     courses,
		coupons:     coupons,
		couponCache: couponCache,
		clock:       clk,
	}
}

// Enroll books a course for a student. Coupon redemption and the enrollment
// row commit in one transaction: the used_count increment and the discounted
// price are never observable apart.
func (e *enrollmentCommandsImpl) Enroll(ctx context.Context, studentID uuid.UUID, req reqdto.EnrollRequest) (*queries.EnrollmentView, error) {
	courseView, err := e.courses.FindByID(ctx, req.CourseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCourseNotFound)
		}
		return nil, err
	}

	priceCents := courseView.PriceCents
	var couponCode *string

	if req.CouponCode != nil && *req.CouponCode != "" {
		couponView, err := e.coupons.FindByCode(ctx, *req.CouponCode)
		if err != nil {
			return nil, errs.Mark(err, ErrCouponRejected)
		}

		entity, err := queries.CouponFromView(couponView)
		if err != nil {
			return nil, errs.Mark(err, ErrCouponRejected)
		}

		if err := entity.ValidateRedemption(e.clock.Now(), courseView.ID, courseView.Category); err != nil {
			return nil, errs.Mark(err, ErrCouponRejected)
		}

		priceCents = entity.ApplyDiscount(priceCents)
		code := entity.Code().String()
		couponCode = &code
	}

	var couponStamp uint64
	if couponCode != nil {
		couponStamp = e.couponCache.NextStamp()
	}

	view, err := db.RunInTx(ctx, e.pool, func(ctx context.Context, tx pgx.Tx) (*queries.EnrollmentView, error) {
		if couponCode != nil {
			if err := e.coupons.RedeemByCode(ctx, tx, *couponCode); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return nil, errs.Mark(err, ErrCouponExhausted)
				}
				return nil, err
			}
		}

		view, err := e.enrollments.Create(ctx, tx, repository.NewEnrollment{
			ID:             uuid.New(),
			StudentID:      studentID,
			CourseID:       courseView.ID,
			PricePaidCents: priceCents,
			CouponCode:     couponCode,
		})
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, errs.Mark(err, ErrAlreadyEnrolled)
			}
			return nil, err
		}
		view.CourseTitle = courseView.Title
		return view, nil
	})
	if err != nil {
		return nil, err
	}

	// The redemption bumped used_count behind the coupon collection; fold the
	// confirmed row back in so listings reflect it. The stamp predates the
	// transaction, so a delete that landed in between still wins.
	if couponCode != nil && ctx.Err() == nil {
		refreshed, ferr := e.coupons.FindByCode(ctx, *couponCode)
		if ferr != nil {
			slog.Warn("coupon refresh after redemption failed", "code", *couponCode, "error", ferr.Error())
		} else {
			e.couponCache.Apply(couponStamp, *refreshed)
		}
	}
	return view, nil
}
