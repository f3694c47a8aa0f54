// Package billinghdl - handler webhook Stripe và CRUD các collection billing.
package billinghdl

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	basehdl "meta_booking/internal/api/base/handler"
	billingmodels "meta_booking/internal/api/billing/models"
	billingsvc "meta_booking/internal/api/billing/services"
	"meta_booking/internal/common"
	"meta_booking/internal/global"
	"meta_booking/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StripeWebhookHandler xử lý webhook từ Stripe
type StripeWebhookHandler struct {
	creditService     *billingsvc.CreditService
	webhookLogService *billingsvc.WebhookLogService
}

// NewStripeWebhookHandler tạo mới StripeWebhookHandler
func NewStripeWebhookHandler() (*StripeWebhookHandler, error) {
	creditService, err := billingsvc.NewCreditService()
	if err != nil {
		return nil, fmt.Errorf("failed to create credit service: %v", err)
	}
	webhookLogService, err := billingsvc.NewWebhookLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook log service: %v", err)
	}
	return &StripeWebhookHandler{
		creditService:     creditService,
		webhookLogService: webhookLogService,
	}, nil
}

// HandleStripeWebhook nhận webhook Stripe: xác minh chữ ký trước khi làm bất
// cứ việc gì khác, lưu log rồi xử lý theo event type. Event không nhận diện
// được vẫn được ack để Stripe không gửi lại.
func (h *StripeWebhookHandler) HandleStripeWebhook(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		log := logger.GetAppLogger()
		ctx := c.UserContext()
		rawBody := c.Body()
		signature := c.Get("Stripe-Signature")

		if err := billingsvc.VerifyStripeSignature(rawBody, signature, global.ServerConfig.StripeWebhookSecret, time.Now()); err != nil {
			log.WithField("ip", c.IP()).Warn("💳 [STRIPE WEBHOOK] Chữ ký không hợp lệ")
			return basehdl.HandleResponse(c, nil, common.ErrWebhookSignature)
		}

		var event billingsvc.StripeEvent
		parseErr := json.Unmarshal(rawBody, &event)

		webhookLog, logErr := h.webhookLogService.CreateWebhookLog(ctx, billingmodels.WebhookLog{
			Source:    "stripe",
			EventType: event.Type,
			EventID:   event.ID,
			RawBody:   string(rawBody),
			Signature: signature,
			IPAddress: c.IP(),
			CreatedAt: time.Now().UnixMilli(),
			UpdatedAt: time.Now().UnixMilli(),
		})
		if logErr != nil {
			log.WithError(logErr).Warn("💳 [STRIPE WEBHOOK] Không thể lưu webhook log")
		}

		if parseErr != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeWebhookPayload, "Payload không hợp lệ", common.StatusBadRequest, parseErr))
		}

		var processErr error
		switch event.Type {
		case "checkout.session.completed":
			processErr = h.handleCheckoutSessionCompleted(ctx, event.Data.Object)
		default:
			log.WithField("eventType", event.Type).Info("💳 [STRIPE WEBHOOK] Event type chưa được xử lý, chỉ lưu log")
		}

		if webhookLog != nil {
			errorMsg := ""
			if processErr != nil {
				errorMsg = processErr.Error()
			}
			_ = h.webhookLogService.UpdateProcessedStatus(ctx, webhookLog.ID, processErr == nil, errorMsg)
		}

		if processErr != nil {
			log.WithError(processErr).WithField("eventType", event.Type).Error("💳 [STRIPE WEBHOOK] Lỗi khi xử lý webhook")
			return basehdl.HandleResponse(c, nil, processErr)
		}

		return basehdl.HandleResponse(c, fiber.Map{"received": true}, nil)
	})
}

// handleCheckoutSessionCompleted cộng credit cho user sau khi thanh toán thành công
func (h *StripeWebhookHandler) handleCheckoutSessionCompleted(ctx context.Context, object json.RawMessage) error {
	var session billingsvc.CheckoutSession
	if err := json.Unmarshal(object, &session); err != nil {
		return common.NewError(common.ErrCodeWebhookPayload, "Không đọc được checkout session", common.StatusBadRequest, err)
	}

	userIDStr, credits, err := billingsvc.ValidateCheckoutSession(&session, global.ServerConfig.StripeCreditsPriceID)
	if err != nil {
		return err
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return common.NewError(common.ErrCodeWebhookPayload, "userId trong metadata không hợp lệ", common.StatusBadRequest, err)
	}

	_, err = h.creditService.AddCredits(ctx, userID, credits, session.ID)
	return err
}
