// Package calendarsyncsvc - provider lịch ngoài (Google Calendar push channels).
package calendarsyncsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	models "meta_booking/internal/api/calendarsync/models"
	"meta_booking/internal/global"
	"meta_booking/internal/logger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchChannel thông tin channel mà provider trả về sau khi đăng ký watch thành công
type WatchChannel struct {
	ChannelID  string
	ResourceID string
	ExpiresAt  int64 // unix milli
}

// CalendarProvider trừu tượng hóa thao tác watch/unwatch với provider lịch ngoài.
// Một lời gọi phục vụ cả batch: một externalId + toàn bộ eventTypeIds liên quan,
// xác thực bằng đúng credential của batch.
type CalendarProvider interface {
	Watch(ctx context.Context, credential *models.CalendarCredential, externalID string, eventTypeIDs []*primitive.ObjectID) (*WatchChannel, error)
	Unwatch(ctx context.Context, credential *models.CalendarCredential, channelID string, resourceID string) error
}

// GoogleCalendarProvider hiện thực CalendarProvider qua Google Calendar API v3 push channels
type GoogleCalendarProvider struct {
	httpClient *http.Client
	baseURL    string
}

// NewGoogleCalendarProvider tạo mới GoogleCalendarProvider
func NewGoogleCalendarProvider() *GoogleCalendarProvider {
	return &GoogleCalendarProvider{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    global.ServerConfig.GoogleAPIBaseURL,
	}
}

// Watch đăng ký push channel cho một calendar.
// eventTypeIds được gửi kèm trong token của channel để webhook receiver
// biết notification thuộc những event type nào.
func (p *GoogleCalendarProvider) Watch(ctx context.Context, credential *models.CalendarCredential, externalID string, eventTypeIDs []*primitive.ObjectID) (*WatchChannel, error) {
	channelToken := buildChannelToken(eventTypeIDs)

	payload := map[string]interface{}{
		"id":      uuid.NewString(),
		"type":    "web_hook",
		"address": global.ServerConfig.WebhookReceiverURL,
		"token":   channelToken,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/calendar/v3/calendars/%s/events/watch", p.baseURL, externalID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential.AccessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"externalId": externalID,
			"status":     resp.StatusCode,
			"body":       string(body),
		}).Warn("📅 [CALENDAR_SYNC] Google watch call failed")
		return nil, fmt.Errorf("google watch failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		ID         string `json:"id"`
		ResourceID string `json:"resourceId"`
		Expiration string `json:"expiration"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("google watch response decode failed: %w", err)
	}

	var expiresAt int64
	fmt.Sscanf(result.Expiration, "%d", &expiresAt)

	return &WatchChannel{
		ChannelID:  result.ID,
		ResourceID: result.ResourceID,
		ExpiresAt:  expiresAt,
	}, nil
}

// Unwatch dừng một push channel đang hoạt động
func (p *GoogleCalendarProvider) Unwatch(ctx context.Context, credential *models.CalendarCredential, channelID string, resourceID string) error {
	payload := map[string]interface{}{
		"id":         channelID,
		"resourceId": resourceID,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/calendar/v3/channels/stop", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential.AccessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("google unwatch failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// buildChannelToken ghép eventTypeIds thành token của channel (bỏ qua nil)
func buildChannelToken(eventTypeIDs []*primitive.ObjectID) string {
	token := "eventTypeIds="
	first := true
	for _, id := range eventTypeIDs {
		if id == nil {
			continue
		}
		if !first {
			token += ","
		}
		token += id.Hex()
		first = false
	}
	return token
}
