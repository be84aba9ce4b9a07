package models

import "time"

// Discount types.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon is a discount code with redemption accounting.
// UsageLimit is nil for unlimited coupons. UsedCount only ever increases.
type Coupon struct {
	Code           string    `bson:"code" json:"code"` // stored upper-case
	DiscountType   string    `bson:"discountType" json:"discountType"`
	Value          float64   `bson:"value" json:"value"`
	ExpirationDate time.Time `bson:"expirationDate" json:"expirationDate"`
	UsageLimit     *int      `bson:"usageLimit,omitempty" json:"usageLimit,omitempty"`
	UsedCount      int       `bson:"usedCount" json:"usedCount"`
	IsActive       bool      `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
