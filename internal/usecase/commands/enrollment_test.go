//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"learnhub-api/internal/infra"
	"learnhub-api/internal/infra/repository"
	"learnhub-api/internal/pkg/clock"
	"learnhub-api/internal/usecase/commands"
	"learnhub-api/internal/usecase/queries"
	"learnhub-api/tests/common/builder"

	reqdto "learnhub-api/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCourseReadStore struct {
	findFn func(ctx context.Context, id uuid.UUID) (*queries.CourseView, error)
}

func (f *fakeCourseReadStore) List(ctx context.Context) ([]queries.CourseView, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCourseReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CourseView, error) {
	return f.findFn(ctx, id)
}

type fakeCouponRedeemStore struct {
	findByCodeFn func(ctx context.Context, code string) (*queries.CouponView, error)
	redeemFn     func(ctx context.Context, tx pgx.Tx, code string) error
}

func (f *fakeCouponRedeemStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	return f.findByCodeFn(ctx, code)
}

func (f *fakeCouponRedeemStore) RedeemByCode(ctx context.Context, tx pgx.Tx, code string) error {
	if f.redeemFn == nil {
		return errors.New("not implemented")
	}
	return f.redeemFn(ctx, tx, code)
}

type fakeEnrollmentWriteStore struct {
	createFn func(ctx context.Context, tx pgx.Tx, e repository.NewEnrollment) (*queries.EnrollmentView, error)
}

func (f *fakeEnrollmentWriteStore) Create(ctx context.Context, tx pgx.Tx, e repository.NewEnrollment) (*queries.EnrollmentView, error) {
	return f.createFn(ctx, tx, e)
}

// stubTx satisfies the transaction surface Enroll touches; the embedded
// interface covers the methods the fakes never call.
type stubTx struct{ pgx.Tx }

func (stubTx) Commit(context.Context) error   { return nil }
func (stubTx) Rollback(context.Context) error { return nil }

type stubBeginner struct{}

func (stubBeginner) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	return stubTx{}, nil
}

var enrollNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// The row-level effects of enrolling commit through Postgres and are covered
// by e2e; these run the coupon flow around the transaction against stubs.
func TestEnroll(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()

	newCommands := func(courses *fakeCourseReadStore, coupons *fakeCouponRedeemStore) commands.EnrollmentCommands {
		return commands.NewEnrollmentCommands(nil, nil, courses, coupons, newCouponCache(), clock.NewMockClock(enrollNow))
	}

	t.Run("unknown course", func(t *testing.T) {
		courses := &fakeCourseReadStore{
			findFn: func(context.Context, uuid.UUID) (*queries.CourseView, error) {
				return nil, infra.WrapRepoErr("find course", errors.New("no rows"), infra.KindNotFound)
			},
		}
		cmd := newCommands(courses, &fakeCouponRedeemStore{})

		_, err := cmd.Enroll(ctx, studentID, reqdto.EnrollRequest{CourseID: uuid.New()})
		assert.ErrorIs(t, err, commands.ErrCourseNotFound)
	})

	t.Run("unknown coupon code is rejected", func(t *testing.T) {
		courseView := builder.NewCourseBuilder().BuildView()
		courses := &fakeCourseReadStore{
			findFn: func(context.Context, uuid.UUID) (*queries.CourseView, error) {
				return courseView, nil
			},
		}
		coupons := &fakeCouponRedeemStore{
			findByCodeFn: func(_ context.Context, code string) (*queries.CouponView, error) {
				assert.Equal(t, "NOSUCH", code)
				return nil, infra.WrapRepoErr("find coupon", errors.New("no rows"), infra.KindNotFound)
			},
		}
		cmd := newCommands(courses, coupons)

		code := "NOSUCH"
		_, err := cmd.Enroll(ctx, studentID, reqdto.EnrollRequest{CourseID: courseView.ID, CouponCode: &code})
		assert.ErrorIs(t, err, commands.ErrCouponRejected)
	})

	t.Run("expired coupon is rejected", func(t *testing.T) {
		courseView := builder.NewCourseBuilder().BuildView()
		until := enrollNow.Add(-time.Hour)
		expired := builder.NewCouponBuilder().WithValidity(nil, &until).BuildView()

		courses := &fakeCourseReadStore{
			findFn: func(context.Context, uuid.UUID) (*queries.CourseView, error) {
				return courseView, nil
			},
		}
		coupons := &fakeCouponRedeemStore{
			findByCodeFn: func(context.Context, string) (*queries.CouponView, error) {
				return expired, nil
			},
		}
		cmd := newCommands(courses, coupons)

		code := expired.Code
		_, err := cmd.Enroll(ctx, studentID, reqdto.EnrollRequest{CourseID: courseView.ID, CouponCode: &code})
		assert.ErrorIs(t, err, commands.ErrCouponRejected)
	})

	t.Run("coupon scoped to another category is rejected", func(t *testing.T) {
		courseView := builder.NewCourseBuilder().WithCategory("design").BuildView()
		scoped := builder.NewCouponBuilder().WithScope(nil, []string{"programming"}).BuildView()

		courses := &fakeCourseReadStore{
			findFn: func(context.Context, uuid.UUID) (*queries.CourseView, error) {
				return courseView, nil
			},
		}
		coupons := &fakeCouponRedeemStore{
			findByCodeFn: func(context.Context, string) (*queries.CouponView, error) {
				return scoped, nil
			},
		}
		cmd := newCommands(courses, coupons)

		code := scoped.Code
		_, err := cmd.Enroll(ctx, studentID, reqdto.EnrollRequest{CourseID: courseView.ID, CouponCode: &code})
		assert.ErrorIs(t, err, commands.ErrCouponRejected)
	})

	t.Run("confirmed redemption shows in the coupon listing", func(t *testing.T) {
		courseView := builder.NewCourseBuilder().BuildView()
		couponView := builder.NewCouponBuilder().WithUsage(10, 3).BuildView()

		courses := &fakeCourseReadStore{
			findFn: func(context.Context, uuid.UUID) (*queries.CourseView, error) {
				return courseView, nil
			},
		}

		usedCount := couponView.UsedCount
		coupons := &fakeCouponRedeemStore{
			findByCodeFn: func(context.Context, string) (*queries.CouponView, error) {
				v := *couponView
				v.UsedCount = usedCount
				return &v, nil
			},
			redeemFn: func(context.Context, pgx.Tx, string) error {
				usedCount++
				return nil
			},
		}
		enrollments := &fakeEnrollmentWriteStore{
			createFn: func(_ context.Context, _ pgx.Tx, e repository.NewEnrollment) (*queries.EnrollmentView, error) {
				return &queries.EnrollmentView{
					ID:             e.ID,
					StudentID:      e.StudentID,
					CourseID:       e.CourseID,
					PricePaidCents: e.PricePaidCents,
					CouponCode:     e.CouponCode,
					EnrolledAt:     enrollNow,
				}, nil
			},
		}

		cache := newCouponCache()
		_, err := cache.GetOrLoad(ctx, func(context.Context) ([]queries.CouponView, error) {
			return []queries.CouponView{*couponView}, nil
		})
		require.NoError(t, err)

		cmd := commands.NewEnrollmentCommands(stubBeginner{}, enrollments, courses, coupons, cache, clock.NewMockClock(enrollNow))

		code := couponView.Code
		_, err = cmd.Enroll(ctx, studentID, reqdto.EnrollRequest{CourseID: courseView.ID, CouponCode: &code})
		require.NoError(t, err)

		listed := cache.Snapshot()
		require.Len(t, listed, 1)
		assert.Equal(t, int64(4), listed[0].UsedCount)
	})
}
