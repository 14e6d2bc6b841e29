package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"learnhub-api/internal/domain/user"
	"learnhub-api/internal/handler/api"
	"learnhub-api/internal/handler/middleware"
	"learnhub-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	dashboardHandler *api.DashboardHandler,
	courseHandler *api.CourseHandler,
	enrollmentHandler *api.EnrollmentHandler,
	couponHandler *api.CouponHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, dashboardHandler, courseHandler, enrollmentHandler, couponHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	dashboardHandler *api.DashboardHandler,
	courseHandler *api.CourseHandler,
	enrollmentHandler *api.EnrollmentHandler,
	couponHandler *api.CouponHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "", Handler: dashboardHandler.Dashboard},
			})
		}

		courses := apiGroup.Group("/courses")
		{
			// Browsing the catalog needs no account.
			addRoutes(courses, []route{
				{Method: http.MethodGet, Path: "", Handler: courseHandler.ListCourses},
				{Method: http.MethodGet, Path: "/:id", Handler: courseHandler.GetCourse},
			})

			courseWrite := courses.Group("")
			courseWrite.Use(authMiddleware.RequireAuth())
			courseWrite.Use(authMiddleware.RequireRole(user.RoleInstructor, user.RoleAdmin))
			addRoutes(courseWrite, []route{
				{Method: http.MethodPost, Path: "", Handler: courseHandler.CreateCourse},
				{Method: http.MethodPatch, Path: "/:id", Handler: courseHandler.UpdateCourse},
				{Method: http.MethodDelete, Path: "/:id", Handler: courseHandler.DeleteCourse},
			})
		}

		enrollments := apiGroup.Group("/enrollments")
		enrollments.Use(authMiddleware.RequireAuth())
		enrollments.Use(authMiddleware.RequireRole(user.RoleStudent))
		{
			addRoutes(enrollments, []route{
				{Method: http.MethodPost, Path: "", Handler: enrollmentHandler.Enroll},
				{Method: http.MethodGet, Path: "", Handler: enrollmentHandler.ListOwn},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: couponHandler.ValidateCoupon},
			})

			adminOnly := coupons.Group("")
			adminOnly.Use(authMiddleware.RequireRole(user.RoleAdmin))
			addRoutes(adminOnly, []route{
				{Method: http.MethodGet, Path: "", Handler: couponHandler.ListCoupons},
				{Method: http.MethodPost, Path: "", Handler: couponHandler.CreateCoupon},
				{Method: http.MethodPatch, Path: "/:id", Handler: couponHandler.UpdateCoupon},
				{Method: http.MethodDelete, Path: "/:id", Handler: couponHandler.DeleteCoupon},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
