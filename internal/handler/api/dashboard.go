package api

import (
	"net/http"

	"learnhub-api/internal/domain/access"
	resdto "learnhub-api/internal/handler/dto/response"
	"learnhub-api/internal/handler/httperr"
	"learnhub-api/internal/handler/middleware"
	"learnhub-api/internal/usecase"
	"learnhub-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{
		dashboardQueries: dashboardQueries,
	}
}

// @Summary Role dashboard
// @Description Return the dashboard matching the caller's role
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} map[string]string
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	ctx := c.Request.Context()

	// The dispatch is total: every role value lands on exactly one arm, and
	// anything outside the closed set falls through to the login redirect.
	view := access.ViewFor(principal.Role)
	switch view {
	case access.ViewAdminOverview:
		overview, err := h.dashboardQueries.AdminOverview(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.AdminDashboard(string(view), overview))

	case access.ViewInstructorDashboard:
		dashboard, err := h.dashboardQueries.InstructorDashboard(ctx, principal.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.InstructorDashboard(string(view), dashboard))

	case access.ViewStudentDashboard:
		dashboard, err := h.dashboardQueries.StudentDashboard(ctx, principal.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.StudentDashboard(string(view), dashboard))

	default:
		httperr.AbortWithRedirect(c, http.StatusUnauthorized,
			usecase.ErrSessionRevoked, "Unrecognized role", access.LoginPath)
	}
}
