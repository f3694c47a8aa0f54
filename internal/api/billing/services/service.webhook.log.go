package billingsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "meta_booking/internal/api/base/service"
	models "meta_booking/internal/api/billing/models"
	"meta_booking/internal/common"
	"meta_booking/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WebhookLogService là cấu trúc chứa các phương thức liên quan đến webhook logs
type WebhookLogService struct {
	*basesvc.BaseServiceMongoImpl[models.WebhookLog]
}

// NewWebhookLogService tạo mới WebhookLogService
func NewWebhookLogService() (*WebhookLogService, error) {
	webhookLogCollection, exist := global.RegistryCollections.Get(global.ColNames.WebhookLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get webhook_logs collection: %v", common.ErrNotFound)
	}

	return &WebhookLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.WebhookLog](webhookLogCollection),
	}, nil
}

// CreateWebhookLog tạo mới webhook log
func (s *WebhookLogService) CreateWebhookLog(ctx context.Context, log models.WebhookLog) (*models.WebhookLog, error) {
	result, err := s.InsertOne(ctx, log)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateProcessedStatus cập nhật trạng thái đã xử lý của webhook log
func (s *WebhookLogService) UpdateProcessedStatus(ctx context.Context, logID primitive.ObjectID, processed bool, errorMsg string) error {
	setFields := map[string]interface{}{
		"processed":    processed,
		"processError": errorMsg,
		"updatedAt":    time.Now().UnixMilli(),
	}
	if processed {
		setFields["processedAt"] = time.Now().UnixMilli()
	}

	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, logID, &basesvc.UpdateData{Set: setFields})
	return err
}
