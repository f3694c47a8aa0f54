// Package calendarsyncsvc - service lịch đã chọn (SelectedCalendar): CRUD,
// truy vấn pending watch/unwatch và ghi nhận trạng thái lỗi từng chiều.
package calendarsyncsvc

import (
	"context"
	"fmt"
	"time"

	models "meta_booking/internal/api/calendarsync/models"
	basesvc "meta_booking/internal/api/base/service"
	"meta_booking/internal/common"
	"meta_booking/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// channelRenewWindow khoảng thời gian trước khi channel hết hạn mà bản ghi
// được coi là cần watch lại.
const channelRenewWindow = 24 * time.Hour

// SelectedCalendarService là cấu trúc chứa các phương thức liên quan đến lịch đã chọn
type SelectedCalendarService struct {
	*basesvc.BaseServiceMongoImpl[models.SelectedCalendar]
}

// NewSelectedCalendarService tạo mới SelectedCalendarService
func NewSelectedCalendarService() (*SelectedCalendarService, error) {
	selectedCollection, exist := global.RegistryCollections.Get(global.ColNames.SelectedCalendars)
	if !exist {
		return nil, fmt.Errorf("failed to get selected calendars collection: %v", common.ErrNotFound)
	}

	return &SelectedCalendarService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.SelectedCalendar](selectedCollection),
	}, nil
}

// FetchPendingToWatch lấy tối đa limit bản ghi cần đăng ký watch:
// watch đang bật, chưa có lỗi watch, và chưa có channel hoặc channel sắp hết hạn.
// Bản ghi đã ghi lỗi watch (kể cả "missing-credential") không được lấy lại
// cho tới khi lỗi được xóa - tránh gọi lặp vô ích vào provider.
func (s *SelectedCalendarService) FetchPendingToWatch(ctx context.Context, limit int64) ([]models.SelectedCalendar, error) {
	renewBefore := time.Now().Add(channelRenewWindow).UnixMilli()
	filter := bson.M{
		"watchEnabled": true,
		"watchError":   bson.M{"$exists": false},
		"$or": []bson.M{
			{"googleChannelId": ""},
			{"googleChannelExpiresAt": bson.M{"$lt": renewBefore}},
		},
	}
	opts := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "_id", Value: 1}})
	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}

// FetchPendingToUnwatch lấy tối đa limit bản ghi cần hủy watch:
// watch đã tắt nhưng vẫn còn channel phía provider, và chưa có lỗi unwatch.
func (s *SelectedCalendarService) FetchPendingToUnwatch(ctx context.Context, limit int64) ([]models.SelectedCalendar, error) {
	filter := bson.M{
		"watchEnabled":    false,
		"unwatchError":    bson.M{"$exists": false},
		"googleChannelId": bson.M{"$ne": ""},
	}
	opts := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "_id", Value: 1}})
	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}

// RecordWatchError ghi lý do lỗi watch cho một bản ghi
func (s *SelectedCalendarService) RecordWatchError(ctx context.Context, id primitive.ObjectID, reason string) error {
	updateData := &basesvc.UpdateData{Set: map[string]interface{}{"watchError": reason}}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	return err
}

// ClearWatchError xóa trạng thái lỗi watch và lưu thông tin channel mới.
// Idempotent: xóa trên bản ghi đã sạch không gây tác dụng phụ.
func (s *SelectedCalendarService) ClearWatchError(ctx context.Context, id primitive.ObjectID, channelID string, resourceID string, expiresAt int64) error {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"googleChannelId":        channelID,
			"googleResourceId":       resourceID,
			"googleChannelExpiresAt": expiresAt,
		},
		Unset: map[string]interface{}{"watchError": ""},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	return err
}

// RecordUnwatchError ghi lý do lỗi unwatch cho một bản ghi
func (s *SelectedCalendarService) RecordUnwatchError(ctx context.Context, id primitive.ObjectID, reason string) error {
	updateData := &basesvc.UpdateData{Set: map[string]interface{}{"unwatchError": reason}}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	return err
}

// ClearUnwatchError xóa trạng thái lỗi unwatch và gỡ thông tin channel.
// Idempotent như ClearWatchError.
func (s *SelectedCalendarService) ClearUnwatchError(ctx context.Context, id primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"googleChannelId":        "",
			"googleResourceId":       "",
			"googleChannelExpiresAt": int64(0),
		},
		Unset: map[string]interface{}{"unwatchError": ""},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	return err
}
