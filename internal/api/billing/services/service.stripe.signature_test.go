package billingsvc

import (
	"strings"
	"testing"
	"time"
)

const testWebhookSecret = "whsec_test"

func TestVerifyStripeSignature_Valid(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	now := time.Now()
	header := ComputeStripeSignature(payload, testWebhookSecret, now)

	if err := VerifyStripeSignature(payload, header, testWebhookSecret, now); err != nil {
		t.Errorf("Chữ ký hợp lệ phải được chấp nhận, got %v", err)
	}
}

func TestVerifyStripeSignature_RejectsTamperedPayload(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	now := time.Now()
	header := ComputeStripeSignature(payload, testWebhookSecret, now)

	tampered := []byte(`{"id":"evt_2"}`)
	if err := VerifyStripeSignature(tampered, header, testWebhookSecret, now); err == nil {
		t.Error("Payload bị sửa phải bị từ chối")
	}
}

func TestVerifyStripeSignature_RejectsWrongSecret(t *testing.T) {
	payload := []byte(`{}`)
	now := time.Now()
	header := ComputeStripeSignature(payload, testWebhookSecret, now)

	if err := VerifyStripeSignature(payload, header, "whsec_other", now); err == nil {
		t.Error("Chữ ký ký bằng secret khác phải bị từ chối")
	}
}

func TestVerifyStripeSignature_RejectsStaleTimestamp(t *testing.T) {
	payload := []byte(`{}`)
	signedAt := time.Now().Add(-10 * time.Minute)
	header := ComputeStripeSignature(payload, testWebhookSecret, signedAt)

	if err := VerifyStripeSignature(payload, header, testWebhookSecret, time.Now()); err == nil {
		t.Error("Chữ ký quá 5 phút phải bị từ chối để chặn replay")
	}
}

func TestVerifyStripeSignature_AcceptsSecondV1(t *testing.T) {
	// Stripe có thể gửi nhiều v1 khi đang xoay secret; chỉ cần một cái khớp
	payload := []byte(`{}`)
	now := time.Now()
	valid := ComputeStripeSignature(payload, testWebhookSecret, now)
	parts := strings.SplitN(valid, ",", 2)
	header := parts[0] + ",v1=" + strings.Repeat("ab", 32) + "," + parts[1]

	if err := VerifyStripeSignature(payload, header, testWebhookSecret, now); err != nil {
		t.Errorf("Một trong các v1 khớp là đủ, got %v", err)
	}
}

func TestVerifyStripeSignature_RejectsMalformedHeader(t *testing.T) {
	payload := []byte(`{}`)
	now := time.Now()

	for _, header := range []string{"", "t=abc,v1=00", "v1=00", "t=123"} {
		if err := VerifyStripeSignature(payload, header, testWebhookSecret, now); err == nil {
			t.Errorf("Header %q không hợp lệ phải bị từ chối", header)
		}
	}
}
