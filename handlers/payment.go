package handlers

import (
	"net/http"

	"slotbook/services/payment"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes payment-signature verification.
type PaymentHandler struct {
	Verifier *payment.Verifier
}

func NewPaymentHandler(verifier *payment.Verifier) *PaymentHandler {
	return &PaymentHandler{Verifier: verifier}
}

// VerifyPayment handles POST /api/payments/verify.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var input struct {
		OrderRef   string `json:"orderRef" binding:"required"`
		PaymentRef string `json:"paymentRef" binding:"required"`
		Signature  string `json:"signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Verifier.Verify(input.OrderRef, input.PaymentRef, input.Signature); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}
