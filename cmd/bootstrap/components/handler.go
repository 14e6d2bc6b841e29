package components

import (
	"learnhub-api/internal/handler"
	"learnhub-api/internal/handler/api"
	"learnhub-api/internal/handler/middleware"
	"learnhub-api/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewDashboardHandler,
		api.NewCourseHandler,
		api.NewEnrollmentHandler,
		api.NewCouponHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
