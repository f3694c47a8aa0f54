package billingsvc

import (
	"testing"
)

const testPriceID = "price_credits"

func validSession() *CheckoutSession {
	s := &CheckoutSession{
		ID:          "cs_test_1",
		AmountTotal: 5000,
		Metadata:    map[string]string{"userId": "64f000000000000000000001"},
	}
	item := CheckoutLineItem{Quantity: 100}
	item.Price.ID = testPriceID
	item.Price.UnitAmount = 50
	s.LineItems.Data = []CheckoutLineItem{item}
	return s
}

func TestValidateCheckoutSession_Valid(t *testing.T) {
	userID, credits, err := ValidateCheckoutSession(validSession(), testPriceID)
	if err != nil {
		t.Fatalf("Phiên hợp lệ không được lỗi: %v", err)
	}
	if userID != "64f000000000000000000001" {
		t.Errorf("userId phải lấy từ metadata, got %q", userID)
	}
	if credits != 100 {
		t.Errorf("Số credit phải bằng quantity, got %d", credits)
	}
}

func TestValidateCheckoutSession_RejectsMissingAmount(t *testing.T) {
	session := validSession()
	session.AmountTotal = 0

	if _, _, err := ValidateCheckoutSession(session, testPriceID); err == nil {
		t.Error("Thiếu amount_total phải bị từ chối")
	}
}

func TestValidateCheckoutSession_RejectsMissingUser(t *testing.T) {
	session := validSession()
	session.Metadata = map[string]string{}

	if _, _, err := ValidateCheckoutSession(session, testPriceID); err == nil {
		t.Error("Thiếu userId trong metadata phải bị từ chối")
	}
}

func TestValidateCheckoutSession_RejectsWrongPriceID(t *testing.T) {
	session := validSession()
	session.LineItems.Data[0].Price.ID = "price_other"

	if _, _, err := ValidateCheckoutSession(session, testPriceID); err == nil {
		t.Error("Price ID không khớp cấu hình phải bị từ chối")
	}
}

func TestValidateCheckoutSession_RejectsUnderpayment(t *testing.T) {
	// 100 credit × 50 cent = 5000, trả 4998 là thiếu quá 1 cent
	session := validSession()
	session.AmountTotal = 4998

	if _, _, err := ValidateCheckoutSession(session, testPriceID); err == nil {
		t.Error("Trả thiếu quá 1 cent phải bị từ chối")
	}
}

func TestValidateCheckoutSession_AllowsOneCentRounding(t *testing.T) {
	session := validSession()
	session.AmountTotal = 4999

	if _, _, err := ValidateCheckoutSession(session, testPriceID); err != nil {
		t.Errorf("Sai số làm tròn 1 cent phải được chấp nhận, got %v", err)
	}
}

func TestValidateCheckoutSession_RejectsZeroCredits(t *testing.T) {
	session := validSession()
	session.LineItems.Data[0].Quantity = 0

	if _, _, err := ValidateCheckoutSession(session, testPriceID); err == nil {
		t.Error("Quantity bằng 0 phải bị từ chối")
	}
}
