package billingsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "meta_booking/internal/api/base/service"
	models "meta_booking/internal/api/billing/models"
	"meta_booking/internal/common"
	"meta_booking/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreditBalanceService là cấu trúc chứa các phương thức liên quan đến số dư credit
type CreditBalanceService struct {
	*basesvc.BaseServiceMongoImpl[models.CreditBalance]
}

// NewCreditBalanceService tạo mới CreditBalanceService
func NewCreditBalanceService() (*CreditBalanceService, error) {
	creditBalanceCollection, exist := global.RegistryCollections.Get(global.ColNames.CreditBalances)
	if !exist {
		return nil, fmt.Errorf("failed to get credit_balances collection: %v", common.ErrNotFound)
	}

	return &CreditBalanceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.CreditBalance](creditBalanceCollection),
	}, nil
}

// CreditPurchaseLogService là cấu trúc chứa các phương thức liên quan đến log nạp credit
type CreditPurchaseLogService struct {
	*basesvc.BaseServiceMongoImpl[models.CreditPurchaseLog]
}

// NewCreditPurchaseLogService tạo mới CreditPurchaseLogService
func NewCreditPurchaseLogService() (*CreditPurchaseLogService, error) {
	purchaseLogCollection, exist := global.RegistryCollections.Get(global.ColNames.CreditPurchaseLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get credit_purchase_logs collection: %v", common.ErrNotFound)
	}

	return &CreditPurchaseLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.CreditPurchaseLog](purchaseLogCollection),
	}, nil
}

// CreditService gom nghiệp vụ cộng credit: upsert số dư + ghi log nạp
type CreditService struct {
	balanceService  *CreditBalanceService
	purchaseService *CreditPurchaseLogService
}

// NewCreditService tạo mới CreditService
func NewCreditService() (*CreditService, error) {
	balanceService, err := NewCreditBalanceService()
	if err != nil {
		return nil, err
	}
	purchaseService, err := NewCreditPurchaseLogService()
	if err != nil {
		return nil, err
	}
	return &CreditService{
		balanceService:  balanceService,
		purchaseService: purchaseService,
	}, nil
}

// AddCredits cộng credits vào số dư của user (tạo mới nếu chưa có),
// reset limitReachedAt/warningSentAt và ghi một log nạp credit.
func (s *CreditService) AddCredits(ctx context.Context, userID primitive.ObjectID, credits int64, stripeSessionID string) (*models.CreditBalance, error) {
	now := time.Now().UnixMilli()
	filter := bson.M{"userId": userID}
	update := bson.M{
		"$inc": bson.M{"additionalCredits": credits},
		"$unset": bson.M{
			"limitReachedAt": "",
			"warningSentAt":  "",
		},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"userId": userID, "createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	balance, err := s.balanceService.FindOneAndUpdate(ctx, filter, update, opts)
	if err != nil {
		return nil, err
	}

	_, err = s.purchaseService.InsertOne(ctx, models.CreditPurchaseLog{
		CreditBalanceID: balance.ID,
		Credits:         credits,
		StripeSessionID: stripeSessionID,
		CreatedAt:       now,
	})
	if err != nil {
		return nil, err
	}

	return &balance, nil
}
