//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"learnhub-api/internal/domain/coupon"
	"learnhub-api/internal/infra"
	"learnhub-api/internal/infra/repository"
	"learnhub-api/internal/pkg/rescache"
	"learnhub-api/internal/usecase/commands"
	"learnhub-api/internal/usecase/queries"
	"learnhub-api/tests/common/builder"

	reqdto "learnhub-api/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouponWriteStore struct {
	findFn   func(ctx context.Context, id uuid.UUID) (*queries.CouponView, error)
	createFn func(ctx context.Context, c *coupon.Coupon) (*queries.CouponView, error)
	updateFn func(ctx context.Context, id uuid.UUID, patch repository.CouponPatch) (*queries.CouponView, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeCouponWriteStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	return f.findFn(ctx, id)
}

func (f *fakeCouponWriteStore) Create(ctx context.Context, c *coupon.Coupon) (*queries.CouponView, error) {
	return f.createFn(ctx, c)
}

func (f *fakeCouponWriteStore) Update(ctx context.Context, id uuid.UUID, patch repository.CouponPatch) (*queries.CouponView, error) {
	return f.updateFn(ctx, id, patch)
}

func (f *fakeCouponWriteStore) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

func newCouponCache() *rescache.Cache[queries.CouponView] {
	return rescache.New(func(v queries.CouponView) uuid.UUID { return v.ID })
}

func TestCouponCreate(t *testing.T) {
	t.Run("created coupon lands in the shared collection", func(t *testing.T) {
		b := builder.NewCouponBuilder().WithCode("save20")
		view := b.BuildView()
		view.Code = "SAVE20"

		store := &fakeCouponWriteStore{
			createFn: func(_ context.Context, c *coupon.Coupon) (*queries.CouponView, error) {
				assert.Equal(t, "SAVE20", c.Code().String())
				return view, nil
			},
		}
		cache := newCouponCache()
		cmd := commands.NewCouponCommands(store, cache)

		got, err := cmd.Create(context.Background(), b.BuildCreateDTO())
		require.NoError(t, err)
		assert.Equal(t, view, got)

		cached, ok := cache.Get(view.ID)
		require.True(t, ok)
		assert.Equal(t, *view, cached)
	})

	t.Run("malformed request never reaches the store", func(t *testing.T) {
		store := &fakeCouponWriteStore{
			createFn: func(context.Context, *coupon.Coupon) (*queries.CouponView, error) {
				t.Fatal("store must not be called")
				return nil, nil
			},
		}
		cmd := commands.NewCouponCommands(store, newCouponCache())

		req := builder.NewCouponBuilder().WithCode("bad code!").BuildCreateDTO()
		_, err := cmd.Create(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrCouponInvalid)
	})

	t.Run("duplicate code maps to a conflict", func(t *testing.T) {
		store := &fakeCouponWriteStore{
			createFn: func(context.Context, *coupon.Coupon) (*queries.CouponView, error) {
				return nil, infra.WrapRepoErr("insert coupon", errors.New("unique violation"), infra.KindDuplicateKey)
			},
		}
		cmd := commands.NewCouponCommands(store, newCouponCache())

		_, err := cmd.Create(context.Background(), builder.NewCouponBuilder().BuildCreateDTO())
		assert.ErrorIs(t, err, commands.ErrCouponCodeTaken)
	})

	t.Run("canceled request leaves the collection untouched", func(t *testing.T) {
		view := builder.NewCouponBuilder().BuildView()
		ctx, cancel := context.WithCancel(context.Background())

		store := &fakeCouponWriteStore{
			createFn: func(context.Context, *coupon.Coupon) (*queries.CouponView, error) {
				cancel()
				return view, nil
			},
		}
		cache := newCouponCache()
		cmd := commands.NewCouponCommands(store, cache)

		got, err := cmd.Create(ctx, builder.NewCouponBuilder().BuildCreateDTO())
		require.NoError(t, err)
		assert.Equal(t, view, got)

		_, ok := cache.Get(view.ID)
		assert.False(t, ok)
	})
}

func TestCouponUpdate(t *testing.T) {
	t.Run("server response replaces the cached record", func(t *testing.T) {
		b := builder.NewCouponBuilder()
		stale := b.BuildView()
		updated := *stale
		updated.DiscountValue = 30

		cache := newCouponCache()
		cache.Apply(cache.NextStamp(), *stale)

		newValue := int64(30)
		store := &fakeCouponWriteStore{
			findFn: func(_ context.Context, id uuid.UUID) (*queries.CouponView, error) {
				assert.Equal(t, stale.ID, id)
				return stale, nil
			},
			updateFn: func(_ context.Context, id uuid.UUID, patch repository.CouponPatch) (*queries.CouponView, error) {
				assert.Equal(t, stale.ID, id)
				require.NotNil(t, patch.DiscountValue)
				assert.Equal(t, newValue, *patch.DiscountValue)
				return &updated, nil
			},
		}
		cmd := commands.NewCouponCommands(store, cache)

		got, err := cmd.Update(context.Background(), stale.ID, reqdto.UpdateCouponRequest{DiscountValue: &newValue})
		require.NoError(t, err)
		assert.Equal(t, &updated, got)

		cached, ok := cache.Get(stale.ID)
		require.True(t, ok)
		assert.Equal(t, int64(30), cached.DiscountValue)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		store := &fakeCouponWriteStore{
			findFn: func(context.Context, uuid.UUID) (*queries.CouponView, error) {
				return nil, infra.WrapRepoErr("find coupon", errors.New("no rows"), infra.KindNotFound)
			},
		}
		cmd := commands.NewCouponCommands(store, newCouponCache())

		_, err := cmd.Update(context.Background(), uuid.New(), reqdto.UpdateCouponRequest{})
		assert.ErrorIs(t, err, commands.ErrCouponNotFound)
	})

	t.Run("record deleted between read and write maps to not found", func(t *testing.T) {
		current := builder.NewCouponBuilder().BuildView()
		store := &fakeCouponWriteStore{
			findFn: func(context.Context, uuid.UUID) (*queries.CouponView, error) {
				return current, nil
			},
			updateFn: func(context.Context, uuid.UUID, repository.CouponPatch) (*queries.CouponView, error) {
				return nil, infra.WrapRepoErr("update coupon", errors.New("no rows"), infra.KindNotFound)
			},
		}
		cmd := commands.NewCouponCommands(store, newCouponCache())

		_, err := cmd.Update(context.Background(), current.ID, reqdto.UpdateCouponRequest{})
		assert.ErrorIs(t, err, commands.ErrCouponNotFound)
	})

	t.Run("invalid patch code never reaches the store", func(t *testing.T) {
		store := &fakeCouponWriteStore{
			updateFn: func(context.Context, uuid.UUID, repository.CouponPatch) (*queries.CouponView, error) {
				t.Fatal("store must not be called")
				return nil, nil
			},
		}
		cmd := commands.NewCouponCommands(store, newCouponCache())

		bad := "no spaces allowed"
		_, err := cmd.Update(context.Background(), uuid.New(), reqdto.UpdateCouponRequest{Code: &bad})
		assert.ErrorIs(t, err, commands.ErrCouponInvalid)
	})

	t.Run("usage limit cannot drop below the used count", func(t *testing.T) {
		current := builder.NewCouponBuilder().WithUsage(100, 5).BuildView()
		store := &fakeCouponWriteStore{
			findFn: func(context.Context, uuid.UUID) (*queries.CouponView, error) {
				return current, nil
			},
			updateFn: func(context.Context, uuid.UUID, repository.CouponPatch) (*queries.CouponView, error) {
				t.Fatal("store must not be called")
				return nil, nil
			},
		}
		cmd := commands.NewCouponCommands(store, newCouponCache())

		one := int64(1)
		_, err := cmd.Update(context.Background(), current.ID, reqdto.UpdateCouponRequest{UsageLimit: &one})
		assert.ErrorIs(t, err, commands.ErrCouponInvalid)
	})

	t.Run("percentage discount cannot be patched past one hundred", func(t *testing.T) {
		current := builder.NewCouponBuilder().WithDiscount("percentage", 20).BuildView()
		store := &fakeCouponWriteStore{
			findFn: func(context.Context, uuid.UUID) (*queries.CouponView, error) {
				return current, nil
			},
			updateFn: func(context.Context, uuid.UUID, repository.CouponPatch) (*queries.CouponView, error) {
				t.Fatal("store must not be called")
				return nil, nil
			},
		}
		cmd := commands.NewCouponCommands(store, newCouponCache())

		steep := int64(150)
		_, err := cmd.Update(context.Background(), current.ID, reqdto.UpdateCouponRequest{DiscountValue: &steep})
		assert.ErrorIs(t, err, commands.ErrCouponInvalid)
	})

	t.Run("patched end of window cannot precede the stored start", func(t *testing.T) {
		from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		current := builder.NewCouponBuilder().WithValidity(&from, nil).BuildView()
		store := &fakeCouponWriteStore{
			findFn: func(context.Context, uuid.UUID) (*queries.CouponView, error) {
				return current, nil
			},
			updateFn: func(context.Context, uuid.UUID, repository.CouponPatch) (*queries.CouponView, error) {
				t.Fatal("store must not be called")
				return nil, nil
			},
		}
		cmd := commands.NewCouponCommands(store, newCouponCache())

		until := from.Add(-time.Hour)
		_, err := cmd.Update(context.Background(), current.ID, reqdto.UpdateCouponRequest{ValidUntil: &until})
		assert.ErrorIs(t, err, commands.ErrCouponInvalid)
	})
}

func TestCouponDelete(t *testing.T) {
	t.Run("deleted coupon leaves the collection", func(t *testing.T) {
		view := builder.NewCouponBuilder().BuildView()
		cache := newCouponCache()
		cache.Apply(cache.NextStamp(), *view)

		store := &fakeCouponWriteStore{
			deleteFn: func(_ context.Context, id uuid.UUID) error {
				assert.Equal(t, view.ID, id)
				return nil
			},
		}
		cmd := commands.NewCouponCommands(store, cache)

		require.NoError(t, cmd.Delete(context.Background(), view.ID))

		_, ok := cache.Get(view.ID)
		assert.False(t, ok)
	})

	t.Run("failed delete keeps the record listed", func(t *testing.T) {
		view := builder.NewCouponBuilder().BuildView()
		cache := newCouponCache()
		cache.Apply(cache.NextStamp(), *view)

		store := &fakeCouponWriteStore{
			deleteFn: func(context.Context, uuid.UUID) error {
				return errors.New("connection reset")
			},
		}
		cmd := commands.NewCouponCommands(store, cache)

		err := cmd.Delete(context.Background(), view.ID)
		require.Error(t, err)

		_, ok := cache.Get(view.ID)
		assert.True(t, ok)
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		store := &fakeCouponWriteStore{
			deleteFn: func(context.Context, uuid.UUID) error {
				return infra.WrapRepoErr("delete coupon", errors.New("no rows"), infra.KindNotFound)
			},
		}
		cmd := commands.NewCouponCommands(store, newCouponCache())

		err := cmd.Delete(context.Background(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrCouponNotFound)
	})
}
