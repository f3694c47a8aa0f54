package oauthsvc

import (
	"testing"
	"time"

	"meta_booking/config"
	"meta_booking/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func withTestSecret(t *testing.T) {
	t.Helper()
	previous := global.ServerConfig
	global.ServerConfig = &config.Configuration{JwtSecret: "test-secret"}
	t.Cleanup(func() { global.ServerConfig = previous })
}

func TestHasAllScopes(t *testing.T) {
	granted := []string{"READ_BOOKING", "READ_PROFILE"}

	if !HasAllScopes(granted, []string{"READ_BOOKING"}) {
		t.Error("Scope đã cấp phải thỏa yêu cầu")
	}
	if !HasAllScopes(granted, nil) {
		t.Error("Không yêu cầu scope nào thì luôn thỏa")
	}
	if HasAllScopes(granted, []string{"WRITE_BOOKING"}) {
		t.Error("Thiếu scope yêu cầu phải bị từ chối")
	}
	if HasAllScopes(nil, []string{"READ_BOOKING"}) {
		t.Error("Không được cấp scope nào thì không thỏa yêu cầu nào")
	}
}

func TestParseAccessToken_RoundTrip(t *testing.T) {
	withTestSecret(t)
	userID := primitive.NewObjectID()
	now := time.Now().Unix()

	token, err := IssueAccessToken(userID, []string{"READ_BOOKING"}, now, now+3600)
	if err != nil {
		t.Fatalf("IssueAccessToken không được lỗi: %v", err)
	}

	claims, err := ParseAccessToken(token, []string{"READ_BOOKING"})
	if err != nil {
		t.Fatalf("Token hợp lệ phải parse được: %v", err)
	}
	if claims.UserID != userID.Hex() {
		t.Errorf("UserID trong claims phải khớp, got %q", claims.UserID)
	}
	if claims.TokenType != AccessTokenType {
		t.Errorf("token_type phải là %q, got %q", AccessTokenType, claims.TokenType)
	}
}

func TestParseAccessToken_RejectsMissingScope(t *testing.T) {
	withTestSecret(t)
	userID := primitive.NewObjectID()
	now := time.Now().Unix()

	token, err := IssueAccessToken(userID, []string{"READ_BOOKING"}, now, now+3600)
	if err != nil {
		t.Fatalf("IssueAccessToken không được lỗi: %v", err)
	}

	if _, err := ParseAccessToken(token, []string{"WRITE_BOOKING"}); err == nil {
		t.Error("Token thiếu scope yêu cầu phải bị từ chối")
	}
}

func TestParseAccessToken_RejectsGarbageAndExpired(t *testing.T) {
	withTestSecret(t)
	userID := primitive.NewObjectID()

	if _, err := ParseAccessToken("not-a-jwt", nil); err == nil {
		t.Error("Chuỗi không phải JWT phải bị từ chối")
	}

	expired, err := IssueAccessToken(userID, nil, time.Now().Add(-2*time.Hour).Unix(), time.Now().Add(-time.Hour).Unix())
	if err != nil {
		t.Fatalf("IssueAccessToken không được lỗi: %v", err)
	}
	if _, err := ParseAccessToken(expired, nil); err == nil {
		t.Error("Token hết hạn phải bị từ chối")
	}
}

func TestParseAccessToken_RejectsWrongSecret(t *testing.T) {
	withTestSecret(t)
	userID := primitive.NewObjectID()
	now := time.Now().Unix()

	token, err := IssueAccessToken(userID, nil, now, now+3600)
	if err != nil {
		t.Fatalf("IssueAccessToken không được lỗi: %v", err)
	}

	global.ServerConfig.JwtSecret = "another-secret"
	if _, err := ParseAccessToken(token, nil); err == nil {
		t.Error("Token ký bằng secret khác phải bị từ chối")
	}
}
