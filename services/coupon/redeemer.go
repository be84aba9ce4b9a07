package coupon

import (
	"context"
	"errors"
	"fmt"
	"time"

	couponRepo "slotbook/database/repository/coupon"
	"slotbook/models"
	"slotbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// MinFinalAmount is the floor for a discounted charge. Payment providers
// reject zero and negative order amounts.
const MinFinalAmount = 1.0

// DefaultCouponService implements CouponService over the coupon ledger.
type DefaultCouponService struct {
	Repo couponRepo.CouponRepository

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultCouponService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Redeem validates the coupon against its eligibility rules and computes the
// discounted amount. Rejection order: not found, inactive, expired, limit.
func (s *DefaultCouponService) Redeem(ctx context.Context, code string, baseAmount float64) (*Redemption, error) {
	c, err := s.Repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("coupon not found")
		}
		return nil, fmt.Errorf("coupon lookup failed: %w", err)
	}

	if !c.IsActive {
		return nil, utils.NewValidationError("coupon is inactive")
	}
	if s.now().After(c.ExpirationDate) {
		return nil, utils.NewValidationError("coupon has expired")
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return nil, utils.NewValidationError("coupon usage limit reached")
	}

	return &Redemption{
		FinalAmount: applyDiscount(c, baseAmount),
		Coupon:      c,
	}, nil
}

// MarkUsed increments the coupon's usage counter through the ledger's atomic
// conditional update.
func (s *DefaultCouponService) MarkUsed(ctx context.Context, code string) error {
	if _, err := s.Repo.IncrementUsage(ctx, code); err != nil {
		return fmt.Errorf("coupon usage update failed: %w", err)
	}
	return nil
}

// applyDiscount computes the discounted charge, clamped to the provider minimum.
func applyDiscount(c *models.Coupon, baseAmount float64) float64 {
	var final float64
	switch c.DiscountType {
	case models.DiscountPercentage:
		final = baseAmount * (1 - c.Value/100)
	case models.DiscountFixed:
		final = baseAmount - c.Value
	default:
		final = baseAmount
	}
	if final < MinFinalAmount {
		final = MinFinalAmount
	}
	return final
}
