package api

import (
	"errors"
	"net/http"

	reqdto "learnhub-api/internal/handler/dto/request"
	resdto "learnhub-api/internal/handler/dto/response"
	"learnhub-api/internal/handler/middleware"
	"learnhub-api/internal/usecase/commands"
	"learnhub-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentCommands commands.EnrollmentCommands
	enrollmentQueries  queries.EnrollmentQueries
}

func NewEnrollmentHandler(
	enrollmentCommands commands.EnrollmentCommands,
	enrollmentQueries queries.EnrollmentQueries,
) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentCommands: enrollmentCommands,
		enrollmentQueries:  enrollmentQueries,
	}
}

// @Summary Enroll in course
// @Description Enroll the calling student in a course, optionally redeeming a coupon
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EnrollRequest true "Enrollment request"
// @Success 201 {object} resdto.EnrollmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /enrollments [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req reqdto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	student := middleware.GetPrincipal(c)
	view, err := h.enrollmentCommands.Enroll(c.Request.Context(), student.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Course not found",
			})
		case errors.Is(err, commands.ErrAlreadyEnrolled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Already enrolled in this course",
			})
		case errors.Is(err, commands.ErrCouponExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon has no remaining uses",
			})
		case errors.Is(err, commands.ErrCouponRejected):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Coupon cannot be applied to this purchase",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEnrollmentView(view))
}

// @Summary List own enrollments
// @Description List the calling student's enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EnrollmentResponse
// @Failure 401 {object} map[string]string
// @Router /enrollments [get]
func (h *EnrollmentHandler) ListOwn(c *gin.Context) {
	student := middleware.GetPrincipal(c)

	views, err := h.enrollmentQueries.ListOwn(c.Request.Context(), student.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEnrollmentViews(views))
}
