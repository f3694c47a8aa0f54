package billinghdl

import (
	"fmt"

	basehdl "meta_booking/internal/api/base/handler"
	billingdto "meta_booking/internal/api/billing/dto"
	models "meta_booking/internal/api/billing/models"
	billingsvc "meta_booking/internal/api/billing/services"
)

// WebhookLogHandler xử lý các route đọc/xóa webhook log
type WebhookLogHandler struct {
	*basehdl.BaseHandler[models.WebhookLog, billingdto.WebhookLogCreateInput, billingdto.WebhookLogCreateInput]
	WebhookLogService *billingsvc.WebhookLogService
}

// NewWebhookLogHandler tạo instance mới của WebhookLogHandler
func NewWebhookLogHandler() (*WebhookLogHandler, error) {
	webhookLogService, err := billingsvc.NewWebhookLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook log service: %v", err)
	}
	return &WebhookLogHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.WebhookLog, billingdto.WebhookLogCreateInput, billingdto.WebhookLogCreateInput](webhookLogService),
		WebhookLogService: webhookLogService,
	}, nil
}

// CreditBalanceHandler xử lý các route đọc/cập nhật số dư credit
type CreditBalanceHandler struct {
	*basehdl.BaseHandler[models.CreditBalance, billingdto.CreditBalanceCreateInput, billingdto.CreditBalanceUpdateInput]
	CreditBalanceService *billingsvc.CreditBalanceService
}

// NewCreditBalanceHandler tạo instance mới của CreditBalanceHandler
func NewCreditBalanceHandler() (*CreditBalanceHandler, error) {
	creditBalanceService, err := billingsvc.NewCreditBalanceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create credit balance service: %v", err)
	}
	return &CreditBalanceHandler{
		BaseHandler:          basehdl.NewBaseHandler[models.CreditBalance, billingdto.CreditBalanceCreateInput, billingdto.CreditBalanceUpdateInput](creditBalanceService),
		CreditBalanceService: creditBalanceService,
	}, nil
}

// CreditPurchaseLogHandler xử lý các route đọc log nạp credit
type CreditPurchaseLogHandler struct {
	*basehdl.BaseHandler[models.CreditPurchaseLog, billingdto.CreditPurchaseLogCreateInput, billingdto.CreditPurchaseLogCreateInput]
	CreditPurchaseLogService *billingsvc.CreditPurchaseLogService
}

// NewCreditPurchaseLogHandler tạo instance mới của CreditPurchaseLogHandler
func NewCreditPurchaseLogHandler() (*CreditPurchaseLogHandler, error) {
	purchaseLogService, err := billingsvc.NewCreditPurchaseLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create credit purchase log service: %v", err)
	}
	return &CreditPurchaseLogHandler{
		BaseHandler:              basehdl.NewBaseHandler[models.CreditPurchaseLog, billingdto.CreditPurchaseLogCreateInput, billingdto.CreditPurchaseLogCreateInput](purchaseLogService),
		CreditPurchaseLogService: purchaseLogService,
	}, nil
}
