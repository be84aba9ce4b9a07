package models

// Payment statuses.
const (
	PaymentPending  = "pending"
	PaymentCaptured = "captured"
	PaymentFailed   = "failed"
)

// PlatformFeeRate is the share of every captured payment retained by the platform.
const PlatformFeeRate = 0.05

// PaymentDetails is the financial subdocument embedded in an appointment.
// It is set exactly once at creation and never recomputed afterwards.
type PaymentDetails struct {
	OrderRef         string  `bson:"orderRef" json:"orderRef"`
	PaymentRef       string  `bson:"paymentRef,omitempty" json:"paymentRef,omitempty"`
	Amount           float64 `bson:"amount" json:"amount"`
	Status           string  `bson:"status" json:"status"`
	PlatformFee      float64 `bson:"platformFee" json:"platformFee"`
	ProviderEarnings float64 `bson:"providerEarnings" json:"providerEarnings"`
}

// SplitAmount computes the platform fee and provider earnings for a captured
// amount at the moment of persistence, so the split stays auditable even if
// the fee policy changes later.
func SplitAmount(amount float64) (platformFee, providerEarnings float64) {
	platformFee = amount * PlatformFeeRate
	providerEarnings = amount - platformFee
	return platformFee, providerEarnings
}
