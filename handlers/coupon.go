package handlers

import (
	"net/http"

	"slotbook/services/coupon"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
)

// CouponHandler exposes coupon verification. Redemption accounting happens
// later, on the booking path, once a payment is captured.
type CouponHandler struct {
	Service coupon.CouponService
}

func NewCouponHandler(svc coupon.CouponService) *CouponHandler {
	return &CouponHandler{Service: svc}
}

// VerifyCoupon handles POST /api/coupons/verify. It returns the discount
// terms without touching the usage counter.
func (h *CouponHandler) VerifyCoupon(c *gin.Context) {
	var input struct {
		Code   string  `json:"code" binding:"required"`
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	redemption, err := h.Service.Redeem(c.Request.Context(), input.Code, input.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, redemption)
}
