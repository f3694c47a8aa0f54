package billingdto

// WebhookLogCreateInput webhook log chỉ được tạo từ handler webhook,
// DTO này tồn tại cho surface CRUD đọc/xóa.
type WebhookLogCreateInput struct {
	Source    string `json:"source" validate:"required"`
	EventType string `json:"eventType"`
	RawBody   string `json:"rawBody"`
}

// CreditBalanceCreateInput đầu vào tạo số dư credit (chỉ qua seed/điều chỉnh thủ công).
type CreditBalanceCreateInput struct {
	UserID            string `json:"userId" validate:"required" transform:"str_objectid"`
	AdditionalCredits int64  `json:"additionalCredits"`
}

// CreditBalanceUpdateInput đầu vào điều chỉnh số dư credit.
type CreditBalanceUpdateInput struct {
	AdditionalCredits int64 `json:"additionalCredits"`
}

// CreditPurchaseLogCreateInput log nạp credit chỉ được tạo từ webhook,
// DTO này tồn tại cho surface CRUD đọc.
type CreditPurchaseLogCreateInput struct {
	CreditBalanceID string `json:"creditBalanceId" validate:"required" transform:"str_objectid"`
	Credits         int64  `json:"credits" validate:"required"`
}
