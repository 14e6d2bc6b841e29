package queries

import (
	"context"

	"github.com/google/uuid"
)

type EnrollmentReadStore interface {
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]EnrollmentView, error)
}

type StatsReadStore interface {
	AdminOverview(ctx context.Context) (*AdminOverviewView, error)
	InstructorCourseStats(ctx context.Context, instructorID uuid.UUID) ([]InstructorCourseStats, error)
}

// DashboardQueries builds the per-role dashboard payloads. Which one a
// request receives is decided by access.ViewFor, not here.
type DashboardQueries interface {
	AdminOverview(ctx context.Context) (*AdminOverviewView, error)
	InstructorDashboard(ctx context.Context, instructorID uuid.UUID) (*InstructorDashboardView, error)
	StudentDashboard(ctx context.Context, studentID uuid.UUID) (*StudentDashboardView, error)
}

type dashboardQueriesImpl struct {
	stats       StatsReadStore
	enrollments EnrollmentReadStore
}

func NewDashboardQueries(stats StatsReadStore, enrollments EnrollmentReadStore) DashboardQueries {
	return &dashboardQueriesImpl{
		stats:       stats,
		enrollments: enrollments,
	}
}

func (q *dashboardQueriesImpl) AdminOverview(ctx context.Context) (*AdminOverviewView, error) {
	return q.stats.AdminOverview(ctx)
}

func (q *dashboardQueriesImpl) InstructorDashboard(ctx context.Context, instructorID uuid.UUID) (*InstructorDashboardView, error) {
	stats, err := q.stats.InstructorCourseStats(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	view := &InstructorDashboardView{Courses: stats}
	for _, s := range stats {
		view.TotalEnrollments += s.EnrollmentCount
		view.TotalRevenueCents += s.RevenueCents
	}
	return view, nil
}

func (q *dashboardQueriesImpl) StudentDashboard(ctx context.Context, studentID uuid.UUID) (*StudentDashboardView, error) {
	enrollments, err := q.enrollments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	view := &StudentDashboardView{Enrollments: enrollments}
	for _, e := range enrollments {
		if e.Status == "completed" {
			view.Completed++
		} else {
			view.InProgress++
		}
	}
	return view, nil
}
