package repository

import (
	"context"
	"errors"
	"time"

	"learnhub-api/internal/domain/coupon"
	"learnhub-api/internal/infra"
	"learnhub-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const couponColumns = `
	id, code, discount_type, discount_value, valid_from, valid_until,
	usage_limit, used_count, is_active, courses, categories, created_at, updated_at`

type CouponRepository struct {
	pool *pgxpool.Pool
}

func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

func (r *CouponRepository) List(ctx context.Context) ([]queries.CouponView, error) {
	const q = `SELECT` + couponColumns + `FROM coupons ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var views []queries.CouponView
	for rows.Next() {
		view, err := scanCoupon(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}

	return views, nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	const q = `SELECT` + couponColumns + `FROM coupons WHERE id = $1`

	view, err := scanCoupon(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}

	return &view, nil
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	const q = `SELECT` + couponColumns + `FROM coupons WHERE code = $1`

	view, err := scanCoupon(r.pool.QueryRow(ctx, q, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	return &view, nil
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) (*queries.CouponView, error) {
	const q = `
		INSERT INTO coupons (
			id, code, discount_type, discount_value, valid_from, valid_until,
			usage_limit, used_count, is_active, courses, categories
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING` + couponColumns

	view, err := scanCoupon(r.pool.QueryRow(ctx, q,
		c.ID(), c.Code().String(), c.Discount().Type().String(), c.Discount().Value(),
		c.Validity().From(), c.Validity().Until(),
		c.UsageLimit(), c.UsedCount(), c.IsActive(),
		c.Scope().Courses(), c.Scope().Categories(),
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return nil, infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create coupon", err)
	}

	return &view, nil
}

// CouponPatch carries only the fields an update names; nil means untouched.
type CouponPatch struct {
	Code          *string
	DiscountType  *string
	DiscountValue *int64
	ValidFrom     *time.Time
	ValidUntil    *time.Time
	UsageLimit    *int64
	IsActive      *bool
	Courses       *[]uuid.UUID
	Categories    *[]string
}

func (r *CouponRepository) Update(ctx context.Context, id uuid.UUID, patch CouponPatch) (*queries.CouponView, error) {
	const q = `
		UPDATE coupons SET
			code           = COALESCE($2, code),
			discount_type  = COALESCE($3, discount_type),
			discount_value = COALESCE($4, discount_value),
			valid_from     = COALESCE($5, valid_from),
			valid_until    = COALESCE($6, valid_until),
			usage_limit    = COALESCE($7, usage_limit),
			is_active      = COALESCE($8, is_active),
			courses        = COALESCE($9, courses),
			categories     = COALESCE($10, categories),
			updated_at     = now()
		WHERE id = $1
		RETURNING` + couponColumns

	view, err := scanCoupon(r.pool.QueryRow(ctx, q,
		id, patch.Code, patch.DiscountType, patch.DiscountValue,
		patch.ValidFrom, patch.ValidUntil, patch.UsageLimit, patch.IsActive,
		patch.Courses, patch.Categories,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return nil, infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to update coupon", err)
	}

	return &view, nil
}

func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM coupons WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

// RedeemByCode atomically consumes one use of a coupon inside tx. The guard in
// the WHERE clause upholds used_count <= usage_limit under concurrent
// checkouts; zero affected rows means the coupon was exhausted meanwhile.
func (r *CouponRepository) RedeemByCode(ctx context.Context, tx pgx.Tx, code string) error {
	const q = `
		UPDATE coupons
		SET used_count = used_count + 1, updated_at = now()
		WHERE code = $1 AND is_active AND used_count < usage_limit`

	tag, err := tx.Exec(ctx, q, code)
	if err != nil {
		return infra.WrapRepoErr("failed to redeem coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon has no remaining uses", nil, infra.KindConflict)
	}
	return nil
}

func scanCoupon(row pgx.Row) (queries.CouponView, error) {
	var view queries.CouponView
	err := row.Scan(
		&view.ID, &view.Code, &view.DiscountType, &view.DiscountValue,
		&view.ValidFrom, &view.ValidUntil,
		&view.UsageLimit, &view.UsedCount, &view.IsActive,
		&view.Courses, &view.Categories,
		&view.CreatedAt, &view.UpdatedAt,
	)
	return view, err
}
