package components

import (
	repo_impl "learnhub-api/internal/infra/repository"
	"learnhub-api/internal/usecase/commands"
	"learnhub-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// User
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserWriteStore)),
			fx.As(new(queries.UserReadStore)),
		),
		// Coupon
		fx.Annotate(
			repo_impl.NewCouponRepository,
			fx.As(new(commands.CouponWriteStore)),
			fx.As(new(commands.CouponRedeemStore)),
			fx.As(new(queries.CouponReadStore)),
		),
		// Course
		fx.Annotate(
			repo_impl.NewCourseRepository,
			fx.As(new(commands.CourseWriteStore)),
			fx.As(new(queries.CourseReadStore)),
			fx.As(new(queries.CourseLookup)),
		),
		// Enrollment
		fx.Annotate(
			repo_impl.NewEnrollmentRepository,
			fx.As(new(commands.EnrollmentWriteStore)),
			fx.As(new(queries.EnrollmentReadStore)),
		),
		// Aggregated stats
		fx.Annotate(
			repo_impl.NewStatsRepository,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)
