//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"learnhub-api/internal/handler/api"
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

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/coupons", s.handler.ListCoupons)
	s.router.POST("/coupons", s.handler.CreateCoupon)
	s.router.PATCH("/coupons/:id", s.handler.UpdateCoupon)
	s.router.DELETE("/coupons/:id", s.handler.DeleteCoupon)
	s.router.POST("/coupons/validate", s.handler.ValidateCoupon)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestListCoupons() {
	s.Run("success: returns the collection", func() {
		views := []queries.CouponView{
			*builder.NewCouponBuilder().WithCode("FIRST").BuildView(),
			*builder.NewCouponBuilder().WithCode("SECOND").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coupons", nil, "")

		var response []resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("FIRST", response[0].Code)
		s.Equal("SECOND", response[1].Code)
	})
}

func (s *CouponHandlerTestSuite) TestCreateCoupon() {
	url := "/coupons"
	reqBody := builder.NewCouponBuilder().BuildCreateDTO()

	s.Run("success: returns 201 with the stored record", func() {
		view := builder.NewCouponBuilder().BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.Code, response.Code)
	})

	s.Run("error: 409 on duplicate code", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrCouponCodeTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Coupon code already exists")
	})

	s.Run("error: 422 when domain validation rejects", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrCouponInvalid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Coupon validation failed")
	})

	s.Run("error: 400 on unknown discount type", func() {
		bad := map[string]any{
			"code":           "SAVE20",
			"discount_type":  "half-price",
			"discount_value": 20,
			"usage_limit":    10,
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CouponHandlerTestSuite) TestUpdateCoupon() {
	id := uuid.New()
	url := "/coupons/" + id.String()
	newLimit := int64(500)
	reqBody := map[string]any{"usage_limit": newLimit}

	s.Run("success: returns the merged record", func() {
		view := builder.NewCouponBuilder().WithUsage(newLimit, 0).BuildView()
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")

		var response resdto.CouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(newLimit, response.UsageLimit)
	})

	s.Run("error: 404 on unknown coupon", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(nil, commands.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/coupons/not-a-uuid", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coupon ID format")
	})
}

func (s *CouponHandlerTestSuite) TestDeleteCoupon() {
	id := uuid.New()
	url := "/coupons/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 on unknown coupon", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(commands.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")
	})
}

func (s *CouponHandlerTestSuite) TestValidateCoupon() {
	url := "/coupons/validate"

	s.Run("valid coupon reports its discount", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), "SAVE20", gomock.Nil()).
			Return(queries.CouponValidation{Valid: true, Discount: 1000}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "SAVE20"}, "")

		var response resdto.CouponValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Equal(int64(1000), response.Discount)
	})

	s.Run("invalid coupon still answers 200", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), "NOPE99", gomock.Nil()).
			Return(queries.CouponValidation{Valid: false, Discount: 0}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "NOPE99"}, "")

		var response resdto.CouponValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
		s.Zero(response.Discount)
	})

	s.Run("error: 400 without a code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
