package coupon

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"slotbook/models"
	"slotbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeCouponRepo mirrors the ledger's conditional-increment semantics.
type fakeCouponRepo struct {
	mu      sync.Mutex
	coupons map[string]*models.Coupon
}

func newFakeCouponRepo(coupons ...*models.Coupon) *fakeCouponRepo {
	r := &fakeCouponRepo{coupons: make(map[string]*models.Coupon)}
	for _, c := range coupons {
		r.coupons[strings.ToUpper(c.Code)] = c
	}
	return r
}

func (r *fakeCouponRepo) GetByCode(_ context.Context, code string) (*models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.coupons[strings.ToUpper(code)]
	if !ok {
		return nil, fmt.Errorf("coupon %s not found: %w", code, mongo.ErrNoDocuments)
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCouponRepo) IncrementUsage(_ context.Context, code string) (*models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.coupons[strings.ToUpper(code)]
	if !ok || !c.IsActive || !c.ExpirationDate.After(time.Now()) ||
		(c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit) {
		return nil, fmt.Errorf("coupon %s not redeemable: %w", code, mongo.ErrNoDocuments)
	}
	c.UsedCount++
	cp := *c
	return &cp, nil
}

func intPtr(v int) *int { return &v }

func activeCoupon(code, discountType string, value float64, limit *int) *models.Coupon {
	return &models.Coupon{
		Code:           strings.ToUpper(code),
		DiscountType:   discountType,
		Value:          value,
		ExpirationDate: time.Now().Add(24 * time.Hour),
		UsageLimit:     limit,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
}

func TestRedeem_DiscountMath(t *testing.T) {
	svc := &DefaultCouponService{Repo: newFakeCouponRepo(
		activeCoupon("SAVE10", models.DiscountPercentage, 10, nil),
		activeCoupon("FLAT2000", models.DiscountFixed, 2000, nil),
		activeCoupon("FLAT100", models.DiscountFixed, 100, nil),
	)}
	ctx := context.Background()

	r, err := svc.Redeem(ctx, "SAVE10", 1000)
	require.NoError(t, err)
	assert.InDelta(t, 900.0, r.FinalAmount, 1e-9)
	assert.Equal(t, "SAVE10", r.Coupon.Code)

	r, err = svc.Redeem(ctx, "FLAT100", 1000)
	require.NoError(t, err)
	assert.InDelta(t, 900.0, r.FinalAmount, 1e-9)

	// Oversized fixed discount clamps to the floor, never zero or negative.
	r, err = svc.Redeem(ctx, "FLAT2000", 1000)
	require.NoError(t, err)
	assert.InDelta(t, MinFinalAmount, r.FinalAmount, 1e-9)
}

func TestRedeem_CaseInsensitiveLookup(t *testing.T) {
	svc := &DefaultCouponService{Repo: newFakeCouponRepo(
		activeCoupon("SAVE10", models.DiscountPercentage, 10, nil),
	)}

	r, err := svc.Redeem(context.Background(), "save10", 1000)
	require.NoError(t, err)
	assert.InDelta(t, 900.0, r.FinalAmount, 1e-9)
}

func TestRedeem_Rejections(t *testing.T) {
	inactive := activeCoupon("OFF", models.DiscountPercentage, 10, nil)
	inactive.IsActive = false

	expired := activeCoupon("OLD", models.DiscountPercentage, 10, nil)
	expired.ExpirationDate = time.Now().Add(-time.Hour)

	exhausted := activeCoupon("DONE", models.DiscountPercentage, 10, intPtr(1))
	exhausted.UsedCount = 1

	svc := &DefaultCouponService{Repo: newFakeCouponRepo(inactive, expired, exhausted)}
	ctx := context.Background()

	_, err := svc.Redeem(ctx, "MISSING", 1000)
	require.Error(t, err)
	assert.Equal(t, utils.CodeNotFound, err.(*utils.AppError).Code)

	for _, code := range []string{"OFF", "OLD", "DONE"} {
		_, err := svc.Redeem(ctx, code, 1000)
		require.Error(t, err, "coupon %s must be rejected", code)
		assert.Equal(t, utils.CodeValidation, err.(*utils.AppError).Code)
	}
}

func TestMarkUsed_RespectsLimit(t *testing.T) {
	repo := newFakeCouponRepo(activeCoupon("SAVE10", models.DiscountPercentage, 10, intPtr(1)))
	svc := &DefaultCouponService{Repo: repo}
	ctx := context.Background()

	require.NoError(t, svc.MarkUsed(ctx, "SAVE10"))

	c, err := repo.GetByCode(ctx, "SAVE10")
	require.NoError(t, err)
	assert.Equal(t, 1, c.UsedCount)

	// The limit is spent; the second redemption must fail.
	assert.Error(t, svc.MarkUsed(ctx, "SAVE10"))
	_, err = svc.Redeem(ctx, "SAVE10", 1000)
	require.Error(t, err)
	assert.Equal(t, utils.CodeValidation, err.(*utils.AppError).Code)
}

func TestMarkUsed_ExpiredCouponCounterFrozen(t *testing.T) {
	// A coupon can expire between discount verification and redemption;
	// the counter must not move for it.
	expired := activeCoupon("OLD10", models.DiscountPercentage, 10, nil)
	expired.ExpirationDate = time.Now().Add(-48 * time.Hour)

	repo := newFakeCouponRepo(expired)
	svc := &DefaultCouponService{Repo: repo}
	ctx := context.Background()

	assert.Error(t, svc.MarkUsed(ctx, "OLD10"))

	c, err := repo.GetByCode(ctx, "OLD10")
	require.NoError(t, err)
	assert.Equal(t, 0, c.UsedCount, "expired coupon's counter must not move")
}

func TestMarkUsed_ConcurrentNearLimit(t *testing.T) {
	repo := newFakeCouponRepo(activeCoupon("LAST1", models.DiscountPercentage, 10, intPtr(1)))
	svc := &DefaultCouponService{Repo: repo}

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.MarkUsed(context.Background(), "LAST1")
		}(i)
	}
	wg.Wait()

	var successes int
	for _, err := range errs {
		if err == nil {
			successes++
		}
	}
	assert.Equal(t, 1, successes)

	c, err := repo.GetByCode(context.Background(), "LAST1")
	require.NoError(t, err)
	assert.Equal(t, 1, c.UsedCount, "usedCount must never pass the limit")
}
