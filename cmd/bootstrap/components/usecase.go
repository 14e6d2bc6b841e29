package components

import (
	"time"

	"learnhub-api/internal/infra/sessionstore"
	"learnhub-api/internal/pkg/clock"
	"learnhub-api/internal/pkg/config"
	"learnhub-api/internal/pkg/errs"
	"learnhub-api/internal/pkg/jwt"
	"learnhub-api/internal/pkg/rescache"
	"learnhub-api/internal/usecase"
	"learnhub-api/internal/usecase/commands"
	"learnhub-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCouponCache,
	NewCourseCache,
	usecase.NewPrincipalResolver,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		commands.NewCouponCommands,
		commands.NewCourseCommands,
		NewEnrollmentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCouponQueries,
		queries.NewCourseQueries,
		queries.NewEnrollmentQueries,
		queries.NewDashboardQueries,
	),
)

// Collection caches are singletons shared between the command and query
// sides; mutations and list reads must see the same stamps.
func NewCouponCache() *rescache.Cache[queries.CouponView] {
	return rescache.New(func(v queries.CouponView) uuid.UUID { return v.ID })
}

func NewCourseCache() *rescache.Cache[queries.CourseView] {
	return rescache.New(func(v queries.CourseView) uuid.UUID { return v.ID })
}

func NewAuthCommands(
	store commands.UserWriteStore,
	sessions sessionstore.Store,
	jwtService *jwt.Service,
	clk clock.Clock,
	cfg config.Config,
) (commands.AuthCommands, error) {
	sessionTTL, err := time.ParseDuration(cfg.Session.TTL)
	if err != nil {
		return nil, errs.Wrap(err, "invalid SESSION_TTL")
	}

	return commands.NewAuthCommands(store, sessions, jwtService, clk, sessionTTL), nil
}

// NewEnrollmentCommands narrows the pool to the transaction interface the
// usecase takes.
func NewEnrollmentCommands(
	pool *pgxpool.Pool,
	enrollments commands.EnrollmentWriteStore,
	courses queries.CourseReadStore,
	coupons commands.CouponRedeemStore,
	couponCache *rescache.Cache[queries.CouponView],
	clk clock.Clock,
) commands.EnrollmentCommands {
	return commands.NewEnrollmentCommands(pool, enrollments, courses, coupons, couponCache, clk)
}
