package api

import (
	"errors"
	"net/http"

	reqdto "learnhub-api/internal/handler/dto/request"
	resdto "learnhub-api/internal/handler/dto/response"
	"learnhub-api/internal/usecase/commands"
	"learnhub-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	couponCommands commands.CouponCommands
	couponQueries  queries.CouponQueries
}

func NewCouponHandler(couponCommands commands.CouponCommands, couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		couponCommands: couponCommands,
		couponQueries:  couponQueries,
	}
}

// @Summary List coupons
// @Description List all coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CouponResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /coupons [get]
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	views, err := h.couponQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponViews(views))
}

// @Summary Create coupon
// @Description Create a new coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons [post]
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.couponCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponCodeTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon code already exists",
			})
		case errors.Is(err, commands.ErrCouponInvalid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Coupon validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCouponView(view))
}

// @Summary Update coupon
// @Description Apply a partial update to a coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.UpdateCouponRequest true "Coupon patch"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons/{id} [patch]
func (h *CouponHandler) UpdateCoupon(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coupon ID format",
		})
		return
	}

	var req reqdto.UpdateCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.couponCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, commands.ErrCouponCodeTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon code already exists",
			})
		case errors.Is(err, commands.ErrCouponInvalid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Coupon validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary Delete coupon
// @Description Delete a coupon
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [delete]
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coupon ID format",
		})
		return
	}

	if err := h.couponCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
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

// @Summary Validate coupon
// @Description Check whether a coupon code can be redeemed; never errors
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateCouponRequest true "Validation request"
// @Success 200 {object} resdto.CouponValidationResponse
// @Failure 400 {object} map[string]string
// @Router /coupons/validate [post]
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	validation := h.couponQueries.Validate(c.Request.Context(), req.Code, req.CourseID)
	c.JSON(http.StatusOK, resdto.FromCouponValidation(&validation))
}
