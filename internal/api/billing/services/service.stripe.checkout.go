package billingsvc

import (
	"encoding/json"

	"meta_booking/internal/common"
)

// StripeEvent khung chung của một event webhook Stripe
type StripeEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// CheckoutSession phần dữ liệu cần thiết của checkout.session.completed
type CheckoutSession struct {
	ID          string            `json:"id"`
	AmountTotal int64             `json:"amount_total"`
	Metadata    map[string]string `json:"metadata"`
	LineItems   struct {
		Data []CheckoutLineItem `json:"data"`
	} `json:"line_items"`
}

// CheckoutLineItem một dòng hàng trong phiên checkout
type CheckoutLineItem struct {
	Quantity int64 `json:"quantity"`
	Price    struct {
		ID         string `json:"id"`
		UnitAmount int64  `json:"unit_amount"`
	} `json:"price"`
}

// amountDeltaCents sai số làm tròn cho phép giữa số tiền trả và số credit nhận
const amountDeltaCents = 1

// ValidateCheckoutSession kiểm tra một phiên checkout đã hoàn tất và trả về
// (userId trong metadata, số credit). Từ chối khi thiếu amount_total, thiếu
// userId, sai price id, hoặc số tiền trả thấp hơn đơn giá × số credit quá 1 cent.
func ValidateCheckoutSession(session *CheckoutSession, creditsPriceID string) (string, int64, error) {
	if session.AmountTotal <= 0 {
		return "", 0, common.NewError(common.ErrCodeWebhookPayload, "Thiếu thông tin thanh toán bắt buộc", common.StatusBadRequest, nil)
	}

	userID := session.Metadata["userId"]
	if userID == "" {
		return "", 0, common.NewError(common.ErrCodeWebhookPayload, "Thiếu userId trong metadata", common.StatusBadRequest, nil)
	}

	if len(session.LineItems.Data) == 0 {
		return "", 0, common.NewError(common.ErrCodeWebhookPayload, "Phiên checkout không có line item", common.StatusBadRequest, nil)
	}
	item := session.LineItems.Data[0]
	credits := item.Quantity

	if item.Price.ID == "" || item.Price.ID != creditsPriceID || credits <= 0 {
		return "", 0, common.NewError(common.ErrCodeWebhookPayload, "Price ID không hợp lệ", common.StatusBadRequest, nil)
	}
	if item.Price.UnitAmount <= 0 {
		return "", 0, common.NewError(common.ErrCodeWebhookPayload, "Cấu hình giá Stripe không hợp lệ", common.StatusBadRequest, nil)
	}

	expectedTotal := item.Price.UnitAmount * credits
	if session.AmountTotal < expectedTotal-amountDeltaCents {
		return "", 0, common.NewError(common.ErrCodeWebhookPayload, "Số tiền thanh toán không khớp số credit", common.StatusBadRequest, nil)
	}

	return userID, credits, nil
}
