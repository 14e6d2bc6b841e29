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
	"github.com/google/uuid"
)

type CourseHandler struct {
	courseCommands commands.CourseCommands
	courseQueries  queries.CourseQueries
}

func NewCourseHandler(courseCommands commands.CourseCommands, courseQueries queries.CourseQueries) *CourseHandler {
	return &CourseHandler{
		courseCommands: courseCommands,
		courseQueries:  courseQueries,
	}
}

// @Summary List courses
// @Description List all courses in the catalog
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CourseResponse
// @Failure 401 {object} map[string]string
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	views, err := h.courseQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourseViews(views))
}

// @Summary Get course
// @Description Get course by ID
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} resdto.CourseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID format",
		})
		return
	}

	view, err := h.courseQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Course not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourseView(view))
}

// @Summary Create course
// @Description Create a new course owned by the calling instructor
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourseRequest true "Course request"
// @Success 201 {object} resdto.CourseResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req reqdto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actor := middleware.GetPrincipal(c)
	view, err := h.courseCommands.Create(c.Request.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCourseInvalid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Course validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCourseView(view))
}

// @Summary Update course
// @Description Apply a partial update to a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.UpdateCourseRequest true "Course patch"
// @Success 200 {object} resdto.CourseResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [patch]
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID format",
		})
		return
	}

	var req reqdto.UpdateCourseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actor := middleware.GetPrincipal(c)
	view, err := h.courseCommands.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Course not found",
			})
		case errors.Is(err, commands.ErrNotCourseOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Course belongs to another instructor",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourseView(view))
}

// @Summary Delete course
// @Description Delete a course
// @Tags courses
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID format",
		})
		return
	}

	actor := middleware.GetPrincipal(c)
	if err := h.courseCommands.Delete(c.Request.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Course not found",
			})
		case errors.Is(err, commands.ErrNotCourseOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Course belongs to another instructor",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
