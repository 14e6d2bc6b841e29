package commands

import (
	"context"

	"learnhub-api/internal/domain/coupon"
	reqdto "learnhub-api/internal/handler/dto/request"
	"learnhub-api/internal/infra"
	"learnhub-api/internal/infra/repository"
	"learnhub-api/internal/pkg/errs"
	"learnhub-api/internal/pkg/rescache"
	"learnhub-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound  = errs.New("coupon not found")
	ErrCouponCodeTaken = errs.New("coupon code already exists")
	ErrCouponInvalid   = errs.New("coupon validation failed")
)

type CouponCommands interface {
	Create(ctx context.Context, req reqdto.CreateCouponRequest) (*queries.CouponView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCouponRequest) (*queries.CouponView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CouponWriteStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error)
	Create(ctx context.Context, c *coupon.Coupon) (*queries.CouponView, error)
	Update(ctx context.Context, id uuid.UUID, patch repository.CouponPatch) (*queries.CouponView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type couponCommandsImpl struct {
	store CouponWriteStore
	cache *rescache.Cache[queries.CouponView]
}

func NewCouponCommands(store CouponWriteStore, cache *rescache.Cache[queries.CouponView]) CouponCommands {
	return &couponCommandsImpl{
		store: store,
		cache: cache,
	}
}

// The cache is only touched after the store confirms, and only when the
// caller is still around: a canceled request drops its result instead of
// mutating shared state. The stamp is taken before the store call so a
// result landing after a newer delete cannot resurrect the record.
func (c *couponCommandsImpl) Create(ctx context.Context, req reqdto.CreateCouponRequest) (*queries.CouponView, error) {
	entity, err := entityFromCreateRequest(req)
	if err != nil {
		return nil, errs.Mark(err, ErrCouponInvalid)
	}

	stamp := c.cache.NextStamp()
	view, err := c.store.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrCouponCodeTaken)
		}
		return nil, err
	}

	if ctx.Err() == nil {
		c.cache.Apply(stamp, *view)
	}
	return view, nil
}

func (c *couponCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateCouponRequest) (*queries.CouponView, error) {
	patch, err := patchFromUpdateRequest(req)
	if err != nil {
		return nil, errs.Mark(err, ErrCouponInvalid)
	}

	current, err := c.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCouponNotFound)
		}
		return nil, err
	}

	// A patch is only valid against the record it lands on. Rebuilding the
	// merged record through the entity constructors runs every invariant
	// before the write is issued, so a lowered usage_limit still has to cover
	// used_count and a half-patched validity window still has to be ordered.
	merged := mergeCouponPatch(*current, patch)
	if _, err := queries.CouponFromView(&merged); err != nil {
		return nil, errs.Mark(err, ErrCouponInvalid)
	}

	stamp := c.cache.NextStamp()
	view, err := c.store.Update(ctx, id, patch)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCouponNotFound)
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrCouponCodeTaken)
		}
		return nil, err
	}

	if ctx.Err() == nil {
		// The server response wins wholesale; the view is the merged record.
		c.cache.Apply(stamp, *view)
	}
	return view, nil
}

func (c *couponCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	stamp := c.cache.NextStamp()
	if err := c.store.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCouponNotFound)
		}
		// Local collection stays untouched on failure; the record is still
		// listed and the delete can be retried.
		return err
	}

	if ctx.Err() == nil {
		c.cache.Remove(stamp, id)
	}
	return nil
}

func entityFromCreateRequest(req reqdto.CreateCouponRequest) (*coupon.Coupon, error) {
	code, err := coupon.NewCode(req.Code)
	if err != nil {
		return nil, err
	}

	dtype, err := coupon.NewDiscountType(req.DiscountType)
	if err != nil {
		return nil, err
	}

	discount, err := coupon.NewDiscount(dtype, req.DiscountValue)
	if err != nil {
		return nil, err
	}

	validity, err := coupon.NewValidity(req.ValidFrom, req.ValidUntil)
	if err != nil {
		return nil, err
	}

	return coupon.NewCoupon(
		uuid.New(),
		code,
		discount,
		validity,
		req.UsageLimit,
		0,
		req.Active(),
		coupon.NewScope(req.Courses, req.Categories),
	)
}

func patchFromUpdateRequest(req reqdto.UpdateCouponRequest) (repository.CouponPatch, error) {
	patch := repository.CouponPatch{
		DiscountValue: req.DiscountValue,
		ValidFrom:     req.ValidFrom,
		ValidUntil:    req.ValidUntil,
		UsageLimit:    req.UsageLimit,
		IsActive:      req.IsActive,
		Courses:       req.Courses,
		Categories:    req.Categories,
	}

	if req.Code != nil {
		code, err := coupon.NewCode(*req.Code)
		if err != nil {
			return repository.CouponPatch{}, err
		}
		normalized := code.String()
		patch.Code = &normalized
	}

	if req.DiscountType != nil {
		dtype, err := coupon.NewDiscountType(*req.DiscountType)
		if err != nil {
			return repository.CouponPatch{}, err
		}
		s := dtype.String()
		patch.DiscountType = &s
	}

	return patch, nil
}

func mergeCouponPatch(view queries.CouponView, patch repository.CouponPatch) queries.CouponView {
	if patch.Code != nil {
		view.Code = *patch.Code
	}
	if patch.DiscountType != nil {
		view.DiscountType = *patch.DiscountType
	}
	if patch.DiscountValue != nil {
		view.DiscountValue = *patch.DiscountValue
	}
	if patch.ValidFrom != nil {
		view.ValidFrom = patch.ValidFrom
	}
	if patch.ValidUntil != nil {
		view.ValidUntil = patch.ValidUntil
	}
	if patch.UsageLimit != nil {
		view.UsageLimit = *patch.UsageLimit
	}
	if patch.IsActive != nil {
		view.IsActive = *patch.IsActive
	}
	if patch.Courses != nil {
		view.Courses = *patch.Courses
	}
	if patch.Categories != nil {
		view.Categories = *patch.Categories
	}
	return view
}
