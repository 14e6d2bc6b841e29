package repository

import (
	"context"
	"errors"

	"learnhub-api/internal/domain/course"
	"learnhub-api/internal/infra"
	"learnhub-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const courseColumns = `
	c.id, c.title, c.description, c.category, c.price_cents,
	c.instructor_id, u.name, c.published, c.created_at, c.updated_at`

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func (r *CourseRepository) List(ctx context.Context) ([]queries.CourseView, error) {
	const q = `
		SELECT` + courseColumns + `
		FROM courses c
		JOIN users u ON u.id = c.instructor_id
		ORDER BY c.created_at, c.id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courses", err)
	}
	defer rows.Close()

	var views []queries.CourseView
	for rows.Next() {
		view, err := scanCourse(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan course row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate course rows", err)
	}

	return views, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.CourseView, error) {
	const q = `
		SELECT` + courseColumns + `
		FROM courses c
		JOIN users u ON u.id = c.instructor_id
		WHERE c.id = $1`

	view, err := scanCourse(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find course by ID", err)
	}

	return &view, nil
}

func (r *CourseRepository) Create(ctx context.Context, c *course.Course) (*queries.CourseView, error) {
	const q = `
		WITH inserted AS (
			INSERT INTO courses (id, title, description, category, price_cents, instructor_id, published)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT` + courseColumns + `
		FROM inserted c
		JOIN users u ON u.id = c.instructor_id`

	view, err := scanCourse(r.pool.QueryRow(ctx, q,
		c.ID(), c.Title(), c.Description(), c.Category(), c.PriceCents(), c.InstructorID(), c.Published(),
	))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create course", err)
	}

	return &view, nil
}

// CoursePatch carries only the fields an update names; nil means untouched.
type CoursePatch struct {
	Title       *string
	Description *string
	Category    *string
	PriceCents  *int64
	Published   *bool
}

func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, patch CoursePatch) (*queries.CourseView, error) {
	const q = `
		WITH updated AS (
			UPDATE courses SET
				title       = COALESCE($2, title),
				description = COALESCE($3, description),
				category    = COALESCE($4, category),
				price_cents = COALESCE($5, price_cents),
				published   = COALESCE($6, published),
				updated_at  = now()
			WHERE id = $1
			RETURNING *
		)
		SELECT` + courseColumns + `
		FROM updated c
		JOIN users u ON u.id = c.instructor_id`

	view, err := scanCourse(r.pool.QueryRow(ctx, q,
		id, patch.Title, patch.Description, patch.Category, patch.PriceCents, patch.Published,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update course", err)
	}

	return &view, nil
}

func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM courses WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete course", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("course not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanCourse(row pgx.Row) (queries.CourseView, error) {
	var view queries.CourseView
	err := row.Scan(
		&view.ID, &view.Title, &view.Description, &view.Category, &view.PriceCents,
		&view.InstructorID, &view.InstructorName, &view.Published,
		&view.CreatedAt, &view.UpdatedAt,
	)
	return view, err
}
