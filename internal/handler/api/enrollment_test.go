//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"learnhub-api/internal/handler/api"
	reqdto "learnhub-api/internal/handler/dto/request"
	resdto "learnhub-api/internal/handler/dto/response"
	"learnhub-api/internal/usecase/commands"
	"learnhub-api/internal/usecase/queries"
	"learnhub-api/tests/common/builder"
	"learnhub-api/tests/common/httptest"
	commandsmock "learnhub-api/tests/mock/commands"
	queriesmock "learnhub-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EnrollmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEnrollmentCommands
	mockQueries  *queriesmock.MockEnrollmentQueries
	handler      *api.EnrollmentHandler
	student      *builder.UserBuilder
}

func (s *EnrollmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEnrollmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEnrollmentQueries(s.mockCtrl)
	s.handler = api.NewEnrollmentHandler(s.mockCommands, s.mockQueries)
	s.student = builder.NewUserBuilder()

	// Simulate the auth middleware having resolved a student.
	asStudent := func(c *gin.Context) {
		c.Set("principal", s.student.BuildPrincipal())
	}

	s.router.POST("/enrollments", asStudent, s.handler.Enroll)
	s.router.GET("/enrollments", asStudent, s.handler.ListOwn)
}

func (s *EnrollmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEnrollmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(EnrollmentHandlerTestSuite))
}

func (s *EnrollmentHandlerTestSuite) TestEnroll() {
	url := "/enrollments"
	courseID := uuid.New()
	reqBody := reqdto.EnrollRequest{CourseID: courseID}

	s.Run("success: returns 201 with the enrollment", func() {
		view := &queries.EnrollmentView{
			ID:             uuid.New(),
			CourseID:       courseID,
			CourseTitle:    "Intro to Go",
			StudentID:      s.student.ID,
			PricePaidCents: 4900,
			Status:         "enrolled",
		}
		s.mockCommands.EXPECT().Enroll(gomock.Any(), s.student.ID, reqBody).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.EnrollmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(courseID, response.CourseID)
		s.Equal(int64(4900), response.PricePaidCents)
	})

	s.Run("error: 404 for unknown course", func() {
		s.mockCommands.EXPECT().Enroll(gomock.Any(), s.student.ID, reqBody).
			Return(nil, commands.ErrCourseNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Course not found")
	})

	s.Run("error: 409 when already enrolled", func() {
		s.mockCommands.EXPECT().Enroll(gomock.Any(), s.student.ID, reqBody).
			Return(nil, commands.ErrAlreadyEnrolled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Already enrolled in this course")
	})

	s.Run("error: 409 when the coupon is exhausted", func() {
		code := "SAVE20"
		withCoupon := reqdto.EnrollRequest{CourseID: courseID, CouponCode: &code}
		s.mockCommands.EXPECT().Enroll(gomock.Any(), s.student.ID, withCoupon).
			Return(nil, commands.ErrCouponExhausted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, withCoupon, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Coupon has no remaining uses")
	})

	s.Run("error: 400 when the coupon is rejected", func() {
		code := "EXPIRED"
		withCoupon := reqdto.EnrollRequest{CourseID: courseID, CouponCode: &code}
		s.mockCommands.EXPECT().Enroll(gomock.Any(), s.student.ID, withCoupon).
			Return(nil, commands.ErrCouponRejected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, withCoupon, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Coupon cannot be applied to this purchase")
	})

	s.Run("error: 400 when the course id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *EnrollmentHandlerTestSuite) TestListOwn() {
	s.Run("success: returns the student's enrollments", func() {
		views := []queries.EnrollmentView{
			{ID: uuid.New(), CourseID: uuid.New(), CourseTitle: "Intro to Go", StudentID: s.student.ID, Status: "enrolled"},
			{ID: uuid.New(), CourseID: uuid.New(), CourseTitle: "SQL Basics", StudentID: s.student.ID, Status: "completed", Progress: 1},
		}
		s.mockQueries.EXPECT().ListOwn(gomock.Any(), s.student.ID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/enrollments", nil, "")

		var response []resdto.EnrollmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("Intro to Go", response[0].CourseTitle)
		s.Equal("completed", response[1].Status)
	})
}
