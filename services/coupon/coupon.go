package coupon

import (
	"context"

	"slotbook/models"
)

// Redemption is the outcome of applying a coupon to a base amount.
type Redemption struct {
	FinalAmount float64        `json:"finalAmount"`
	Coupon      *models.Coupon `json:"coupon"`
}

// CouponService validates coupons and accounts for their redemptions.
type CouponService interface {
	// Redeem validates the coupon and computes the discounted charge.
	// It does not touch the usage counter.
	Redeem(ctx context.Context, code string, baseAmount float64) (*Redemption, error)
	// MarkUsed records one redemption against the coupon. Must be called
	// exactly once per captured payment that referenced the coupon.
	MarkUsed(ctx context.Context, code string) error
}
