package models

// PaymentInput is the payment confirmation attached to a booking request.
// Signature is the provider-signed digest over OrderRef and PaymentRef.
type PaymentInput struct {
	OrderRef   string  `json:"orderRef" binding:"required"`
	PaymentRef string  `json:"paymentRef"`
	Signature  string  `json:"signature"`
	Amount     float64 `json:"amount"`
}

// BookingRequest is the input to the booking orchestrator.
type BookingRequest struct {
	RequesterID string        `json:"-"`
	ProviderID  string        `json:"providerId" binding:"required"`
	Date        string        `json:"date" binding:"required"`
	StartTime   string        `json:"startTime" binding:"required"`
	EndTime     string        `json:"endTime" binding:"required"`
	Notes       string        `json:"notes"`
	Payment     *PaymentInput `json:"payment"`
	CouponCode  string        `json:"couponCode"`
}
