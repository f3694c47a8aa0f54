// Package billingsvc - xác minh chữ ký webhook Stripe và cộng credit.
package billingsvc

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"meta_booking/internal/common"
)

// SignatureTolerance độ lệch thời gian tối đa cho phép của chữ ký webhook
const SignatureTolerance = 5 * time.Minute

// VerifyStripeSignature xác minh header Stripe-Signature theo scheme t/v1:
// HMAC-SHA256 với secret trên chuỗi "<t>.<payload>", so sánh constant-time
// với từng giá trị v1. Timestamp lệch quá tolerance bị từ chối để chặn replay.
func VerifyStripeSignature(payload []byte, header string, secret string, now time.Time) error {
	if header == "" || secret == "" {
		return common.ErrWebhookSignature
	}

	var timestamp int64 = -1
	signatures := [][]byte{}

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			parsed, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return common.ErrWebhookSignature
			}
			timestamp = parsed
		case "v1":
			decoded, err := hex.DecodeString(kv[1])
			if err != nil {
				continue
			}
			signatures = append(signatures, decoded)
		}
	}

	if timestamp < 0 || len(signatures) == 0 {
		return common.ErrWebhookSignature
	}

	delta := now.Unix() - timestamp
	if delta < 0 {
		delta = -delta
	}
	if delta > int64(SignatureTolerance/time.Second) {
		return common.ErrWebhookSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	for _, signature := range signatures {
		if hmac.Equal(signature, expected) {
			return nil
		}
	}
	return common.ErrWebhookSignature
}

// ComputeStripeSignature sinh header Stripe-Signature hợp lệ cho payload.
// Dùng trong test và tool phát lại webhook.
func ComputeStripeSignature(payload []byte, secret string, timestamp time.Time) string {
	ts := strconv.FormatInt(timestamp.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	return "t=" + ts + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}
