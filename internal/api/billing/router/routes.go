// Package router đăng ký các route thuộc domain billing.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	billinghdl "meta_booking/internal/api/billing/handlers"
	apirouter "meta_booking/internal/api/router"
)

// Register đăng ký route webhook Stripe và các collection billing lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	stripeHandler, err := billinghdl.NewStripeWebhookHandler()
	if err != nil {
		return fmt.Errorf("failed to create stripe webhook handler: %w", err)
	}
	webhookLogHandler, err := billinghdl.NewWebhookLogHandler()
	if err != nil {
		return fmt.Errorf("failed to create webhook log handler: %w", err)
	}
	creditBalanceHandler, err := billinghdl.NewCreditBalanceHandler()
	if err != nil {
		return fmt.Errorf("failed to create credit balance handler: %w", err)
	}
	purchaseLogHandler, err := billinghdl.NewCreditPurchaseLogHandler()
	if err != nil {
		return fmt.Errorf("failed to create credit purchase log handler: %w", err)
	}

	// Webhook không qua AuthMiddleware: tự bảo vệ bằng chữ ký Stripe-Signature
	v1.Post("/webhook/stripe", stripeHandler.HandleStripeWebhook)

	// Webhook log: chỉ đọc và xóa, không tạo/sửa qua API
	webhookLogConfig := apirouter.ReadOnlyConfig
	webhookLogConfig.DelOne = true
	webhookLogConfig.DelById = true
	webhookLogConfig.DelMany = true
	r.RegisterCRUDRoutes(v1, "/webhook-logs", webhookLogHandler, webhookLogConfig, "WebhookLog")

	// Số dư credit: đọc và điều chỉnh, không tạo/xóa qua API
	creditBalanceConfig := apirouter.ReadOnlyConfig
	creditBalanceConfig.UpdOne = true
	creditBalanceConfig.UpdById = true
	r.RegisterCRUDRoutes(v1, "/credit-balances", creditBalanceHandler, creditBalanceConfig, "CreditBalance")

	r.RegisterCRUDRoutes(v1, "/credit-purchase-logs", purchaseLogHandler, apirouter.ReadOnlyConfig, "CreditPurchaseLog")
	return nil
}
