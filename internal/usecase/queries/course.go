package queries

import (
	"context"

	"learnhub-api/internal/infra"
	"learnhub-api/internal/pkg/errs"
	"learnhub-api/internal/pkg/rescache"

	"github.com/google/uuid"
)

var ErrCourseNotFound = errs.New("course not found")

type CourseReadStore interface {
	List(ctx context.Context) ([]CourseView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CourseView, error)
}

type CourseQueries interface {
	List(ctx context.Context) ([]CourseView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CourseView, error)
}

type courseQueriesImpl struct {
	readStore CourseReadStore
	cache     *rescache.Cache[CourseView]
}

func NewCourseQueries(readStore CourseReadStore, cache *rescache.Cache[CourseView]) CourseQueries {
	return &courseQueriesImpl{
		readStore: readStore,
		cache:     cache,
	}
}

func (q *courseQueriesImpl) List(ctx context.Context) ([]CourseView, error) {
	return q.cache.GetOrLoad(ctx, q.readStore.List)
}

func (q *courseQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CourseView, error) {
	// Serve from the collection when it is already warm.
	if view, ok := q.cache.Get(id); ok {
		return &view, nil
	}

	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return view, nil
}
