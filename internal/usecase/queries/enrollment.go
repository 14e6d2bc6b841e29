package queries

import (
	"context"

	"github.com/google/uuid"
)

type EnrollmentQueries interface {
	ListOwn(ctx context.Context, studentID uuid.UUID) ([]EnrollmentView, error)
}

type enrollmentQueriesImpl struct {
	readStore EnrollmentReadStore
}

func NewEnrollmentQueries(readStore EnrollmentReadStore) EnrollmentQueries {
	return &enrollmentQueriesImpl{
		readStore: readStore,
	}
}

func (q *enrollmentQueriesImpl) ListOwn(ctx context.Context, studentID uuid.UUID) ([]EnrollmentView, error) {
	return q.readStore.ListByStudent(ctx, studentID)
}
