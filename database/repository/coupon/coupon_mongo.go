package couponRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"slotbook/database"
	"slotbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCouponRepo implements CouponRepository using MongoDB.
type MongoCouponRepo struct {
	coll *mongo.Collection
}

// NewMongoCouponRepo constructs a new instance of MongoCouponRepo.
func NewMongoCouponRepo() *MongoCouponRepo {
	return &MongoCouponRepo{
		coll: database.DB().Collection("coupons"),
	}
}

// GetByCode retrieves a coupon by its code. Lookup is case-insensitive via
// upper-casing; codes are stored upper-case.
func (repo *MongoCouponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var coupon models.Coupon
	filter := bson.M{"code": strings.ToUpper(code)}
	if err := repo.coll.FindOne(ctx, filter).Decode(&coupon); err != nil {
		return nil, fmt.Errorf("coupon %s not found: %w", code, err)
	}
	return &coupon, nil
}

// IncrementUsage performs a single conditional update so that concurrent
// redemptions near the usage limit cannot push usedCount past it. The filter
// re-checks active and unexpired: a coupon that expired between verification
// and redemption must not have its counter moved.
func (repo *MongoCouponRepo) IncrementUsage(ctx context.Context, code string) (*models.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"code":           strings.ToUpper(code),
		"isActive":       true,
		"expirationDate": bson.M{"$gt": time.Now()},
		"$or": []bson.M{
			{"usageLimit": nil},
			{"usageLimit": bson.M{"$exists": false}},
			{"$expr": bson.M{"$lt": bson.A{"$usedCount", "$usageLimit"}}},
		},
	}
	update := bson.M{"$inc": bson.M{"usedCount": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var coupon models.Coupon
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&coupon); err != nil {
		return nil, fmt.Errorf("coupon %s not redeemable: %w", code, err)
	}
	return &coupon, nil
}
