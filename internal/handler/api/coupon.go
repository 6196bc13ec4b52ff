package api

import (
	"errors"
	"net/http"

	reqdto "cuponera/internal/handler/dto/request"
	resdto "cuponera/internal/handler/dto/response"
	"cuponera/internal/handler/middleware"
	"cuponera/internal/pkg/clock"
	"cuponera/internal/usecase/commands"
	"cuponera/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponQueries   queries.CouponQueries
	customerQueries queries.CustomerQueries
	redeemCommands  commands.RedeemCommands
	clock           clock.Clock
}

func NewCouponHandler(
	couponQueries queries.CouponQueries,
	customerQueries queries.CustomerQueries,
	redeemCommands commands.RedeemCommands,
	clock clock.Clock,
) *CouponHandler {
	return &CouponHandler{
		couponQueries:   couponQueries,
		customerQueries: customerQueries,
		redeemCommands:  redeemCommands,
		clock:           clock,
	}
}

// @Summary List my coupons
// @Description List the current customer's coupons split into available, redeemed and expired
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ClassifiedCouponsResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons [get]
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	customer, err := h.customerQueries.GetByAccountID(c.Request.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	classified, err := h.couponQueries.ListClassified(c.Request.Context(), customer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromClassifiedCoupons(classified))
}

// @Summary Redeem a coupon
// @Description Mark a coupon as redeemed by its code
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemCouponRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons/redeem [post]
func (h *CouponHandler) RedeemCoupon(c *gin.Context) {
	var req reqdto.RedeemCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	record, err := h.redeemCommands.Redeem(c.Request.Context(), req.GetCode())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, commands.ErrCouponAlreadyRedeemed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon already redeemed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedeemedCoupon(record, h.clock.Now()))
}
