package repository

import (
	"context"
	"errors"

	"learnhub-api/internal/infra"
	"learnhub-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

type NewEnrollment struct {
	ID             uuid.UUID
	StudentID      uuid.UUID
	CourseID       uuid.UUID
	PricePaidCents int64
	CouponCode     *string
}

// Create inserts inside tx so enrollment and coupon redemption commit together.
func (r *EnrollmentRepository) Create(ctx context.Context, tx pgx.Tx, e NewEnrollment) (*queries.EnrollmentView, error) {
	const q = `
		INSERT INTO enrollments (id, student_id, course_id, price_paid_cents, coupon_code, status)
		VALUES ($1, $2, $3, $4, $5, 'enrolled')
		RETURNING id, course_id, student_id, price_paid_cents, coupon_code, progress, status, enrolled_at`

	var view queries.EnrollmentView
	err := tx.QueryRow(ctx, q, e.ID, e.StudentID, e.CourseID, e.PricePaidCents, e.CouponCode).Scan(
		&view.ID, &view.CourseID, &view.StudentID, &view.PricePaidCents,
		&view.CouponCode, &view.Progress, &view.Status, &view.EnrolledAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				return nil, infra.WrapRepoErr("student already enrolled in course", err, infra.KindDuplicateKey)
			case pgErrCodeForeignKeyViolation:
				return nil, infra.WrapRepoErr("course or student does not exist", err, infra.KindForeignKeyViolated)
			}
		}
		return nil, infra.WrapRepoErr("failed to create enrollment", err)
	}

	return &view, nil
}

func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]queries.EnrollmentView, error) {
	const q = `
		SELECT e.id, e.course_id, c.title, e.student_id, e.price_paid_cents,
		       e.coupon_code, e.progress, e.status, e.enrolled_at
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1
		ORDER BY e.enrolled_at, e.id`

	rows, err := r.pool.Query(ctx, q, studentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list enrollments", err)
	}
	defer rows.Close()

	var views []queries.EnrollmentView
	for rows.Next() {
		var view queries.EnrollmentView
		err := rows.Scan(
			&view.ID, &view.CourseID, &view.CourseTitle, &view.StudentID, &view.PricePaidCents,
			&view.CouponCode, &view.Progress, &view.Status, &view.EnrolledAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan enrollment row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate enrollment rows", err)
	}

	return views, nil
}

// StatsRepository feeds the dashboard queries.
type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

func (r *StatsRepository) AdminOverview(ctx context.Context) (*queries.AdminOverviewView, error) {
	const q = `
		SELECT
			(SELECT count(*) FROM users WHERE role = 'student'),
			(SELECT count(*) FROM users WHERE role = 'instructor'),
			(SELECT count(*) FROM courses),
			(SELECT count(*) FROM enrollments),
			(SELECT COALESCE(sum(price_paid_cents), 0) FROM enrollments),
			(SELECT count(*) FROM coupons WHERE is_active)`

	var view queries.AdminOverviewView
	err := r.pool.QueryRow(ctx, q).Scan(
		&view.TotalStudents, &view.TotalInstructors, &view.TotalCourses,
		&view.TotalEnrollments, &view.RevenueCents, &view.ActiveCoupons,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load admin overview", err)
	}

	return &view, nil
}

func (r *StatsRepository) InstructorCourseStats(ctx context.Context, instructorID uuid.UUID) ([]queries.InstructorCourseStats, error) {
	const q = `
		SELECT c.id, c.title, count(e.id), COALESCE(sum(e.price_paid_cents), 0)
		FROM courses c
		LEFT JOIN enrollments e ON e.course_id = c.id
		WHERE c.instructor_id = $1
		GROUP BY c.id, c.title, c.created_at
		ORDER BY c.created_at, c.id`

	rows, err := r.pool.Query(ctx, q, instructorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load instructor stats", err)
	}
	defer rows.Close()

	var stats []queries.InstructorCourseStats
	for rows.Next() {
		var s queries.InstructorCourseStats
		if err := rows.Scan(&s.CourseID, &s.Title, &s.EnrollmentCount, &s.RevenueCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan instructor stats row", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate instructor stats rows", err)
	}

	return stats, nil
}
