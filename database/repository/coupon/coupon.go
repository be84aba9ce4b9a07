package couponRepo

import (
	"context"

	"slotbook/models"
)

// CouponRepository defines the data access methods over the coupon ledger.
type CouponRepository interface {
	// GetByCode retrieves a coupon by its upper-cased code.
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	// IncrementUsage atomically bumps usedCount by one, but only while the
	// coupon is active and still under its usage limit. Returns the updated
	// coupon, or an error when no redeemable coupon matched.
	IncrementUsage(ctx context.Context, code string) (*models.Coupon, error)
}
