// Package calendarsyncsvc - reconcile watch/unwatch: gom bản ghi theo
// (externalId, credentialId), gọi provider một lần cho mỗi batch và ghi
// kết quả thành công/lỗi cho từng bản ghi.
package calendarsyncsvc

import (
	"context"
	"fmt"
	"sync"

	models "meta_booking/internal/api/calendarsync/models"
	"meta_booking/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BatchKey khóa gom nhóm có cấu trúc: so sánh theo từng trường,
// không ghép chuỗi để tránh va chạm giữa các cặp (externalId, credentialId)
// khác nhau nhưng ghép ra cùng một chuỗi.
type BatchKey struct {
	ExternalID   string
	CredentialID primitive.ObjectID
}

// SyncBatch một nhóm bản ghi cùng externalId và credentialId.
// Credential là ranh giới tenant: mọi thành viên dùng chung một phiên provider.
type SyncBatch struct {
	ExternalID   string
	CredentialID primitive.ObjectID
	RecordIDs    []primitive.ObjectID
	EventTypeIDs []*primitive.ObjectID // giữ nguyên thứ tự và trùng lặp
}

// OutcomeStatus trạng thái kết quả reconcile của một bản ghi
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeFailed  OutcomeStatus = "failed"
	OutcomeSkipped OutcomeStatus = "skipped"
)

// SkipReasonMissingCredential lý do skip khi bản ghi không có credential
const SkipReasonMissingCredential = "missing-credential"

// SyncOutcome kết quả reconcile của một bản ghi trong một lượt chạy
type SyncOutcome struct {
	RecordID primitive.ObjectID `json:"recordId"`
	Status   OutcomeStatus      `json:"status"`
	Reason   string             `json:"reason,omitempty"`
}

// SyncReport tổng hợp kết quả của một lượt reconcile theo một chiều
type SyncReport struct {
	Direction string        `json:"direction"`
	Processed int           `json:"processed"`
	Batches   int           `json:"batches"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
	Outcomes  []SyncOutcome `json:"outcomes"`
}

// GroupByExternalAndCredential gom danh sách bản ghi thành các batch theo
// (externalId, credentialId). Bản ghi không có credential không vào batch nào
// mà được trả riêng để đánh dấu skip ngay - không bao giờ bị âm thầm bỏ rơi.
func GroupByExternalAndCredential(records []models.SelectedCalendar) (map[BatchKey]*SyncBatch, []models.SelectedCalendar) {
	batches := make(map[BatchKey]*SyncBatch)
	skipped := make([]models.SelectedCalendar, 0)

	for _, record := range records {
		if record.CredentialID == nil {
			skipped = append(skipped, record)
			continue
		}

		key := BatchKey{ExternalID: record.ExternalID, CredentialID: *record.CredentialID}
		batch, ok := batches[key]
		if !ok {
			batch = &SyncBatch{
				ExternalID:   record.ExternalID,
				CredentialID: *record.CredentialID,
			}
			batches[key] = batch
		}
		batch.RecordIDs = append(batch.RecordIDs, record.ID)
		batch.EventTypeIDs = append(batch.EventTypeIDs, record.EventTypeID)
	}

	return batches, skipped
}

// CalendarSyncService điều phối reconcile watch/unwatch
type CalendarSyncService struct {
	selectedCalendarService *SelectedCalendarService
	credentialService       *CalendarCredentialService
	credentialLookup        func(ctx context.Context, id primitive.ObjectID) (*models.CalendarCredential, error)
	provider                CalendarProvider
	batchSize               int64
}

// NewCalendarSyncService tạo mới CalendarSyncService với provider được cung cấp
func NewCalendarSyncService(provider CalendarProvider, batchSize int64) (*CalendarSyncService, error) {
	selectedCalendarService, err := NewSelectedCalendarService()
	if err != nil {
		return nil, fmt.Errorf("failed to create selected calendar service: %v", err)
	}
	credentialService, err := NewCalendarCredentialService()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar credential service: %v", err)
	}
	if batchSize <= 0 {
		batchSize = 500
	}
	return &CalendarSyncService{
		selectedCalendarService: selectedCalendarService,
		credentialService:       credentialService,
		credentialLookup: func(ctx context.Context, id primitive.ObjectID) (*models.CalendarCredential, error) {
			credential, err := credentialService.FindOneById(ctx, id)
			if err != nil {
				return nil, err
			}
			return &credential, nil
		},
		provider:  provider,
		batchSize: batchSize,
	}, nil
}

// batchAction thực hiện lời gọi provider cho một chiều và ghi kết quả từng bản ghi
type batchAction struct {
	direction string
	// call gọi provider một lần cho cả batch
	call func(ctx context.Context, credential *models.CalendarCredential, batch *SyncBatch, members []models.SelectedCalendar) error
	// persistSuccess ghi trạng thái thành công cho một bản ghi
	persistSuccess func(ctx context.Context, record models.SelectedCalendar) error
	// persistFailure ghi lý do lỗi cho một bản ghi
	persistFailure func(ctx context.Context, id primitive.ObjectID, reason string) error
}

// ProcessCalendarsToWatch chạy một lượt reconcile chiều watch
func (s *CalendarSyncService) ProcessCalendarsToWatch(ctx context.Context) (*SyncReport, error) {
	records, err := s.selectedCalendarService.FetchPendingToWatch(ctx, s.batchSize)
	if err != nil {
		return nil, err
	}

	// Channel mới của batch được chia sẻ cho mọi thành viên của nó
	channelByBatch := make(map[BatchKey]*WatchChannel)
	var channelMu sync.Mutex

	action := batchAction{
		direction: "watch",
		call: func(ctx context.Context, credential *models.CalendarCredential, batch *SyncBatch, members []models.SelectedCalendar) error {
			channel, err := s.provider.Watch(ctx, credential, batch.ExternalID, batch.EventTypeIDs)
			if err != nil {
				return err
			}
			channelMu.Lock()
			channelByBatch[BatchKey{ExternalID: batch.ExternalID, CredentialID: batch.CredentialID}] = channel
			channelMu.Unlock()
			return nil
		},
		persistSuccess: func(ctx context.Context, record models.SelectedCalendar) error {
			channelMu.Lock()
			channel := channelByBatch[BatchKey{ExternalID: record.ExternalID, CredentialID: *record.CredentialID}]
			channelMu.Unlock()
			return s.selectedCalendarService.ClearWatchError(ctx, record.ID, channel.ChannelID, channel.ResourceID, channel.ExpiresAt)
		},
		persistFailure: s.selectedCalendarService.RecordWatchError,
	}

	return s.runReconciliation(ctx, records, action), nil
}

// ProcessCalendarsToUnwatch chạy một lượt reconcile chiều unwatch
func (s *CalendarSyncService) ProcessCalendarsToUnwatch(ctx context.Context) (*SyncReport, error) {
	records, err := s.selectedCalendarService.FetchPendingToUnwatch(ctx, s.batchSize)
	if err != nil {
		return nil, err
	}

	action := batchAction{
		direction: "unwatch",
		call: func(ctx context.Context, credential *models.CalendarCredential, batch *SyncBatch, members []models.SelectedCalendar) error {
			// Các thành viên có thể giữ channel khác nhau (đăng ký ở các lượt khác nhau);
			// dừng từng channel duy nhất một lần
			stopped := make(map[string]bool)
			for _, member := range members {
				if member.GoogleChannelID == "" || stopped[member.GoogleChannelID] {
					continue
				}
				if err := s.provider.Unwatch(ctx, credential, member.GoogleChannelID, member.GoogleResourceID); err != nil {
					return err
				}
				stopped[member.GoogleChannelID] = true
			}
			return nil
		},
		persistSuccess: func(ctx context.Context, record models.SelectedCalendar) error {
			return s.selectedCalendarService.ClearUnwatchError(ctx, record.ID)
		},
		persistFailure: s.selectedCalendarService.RecordUnwatchError,
	}

	return s.runReconciliation(ctx, records, action), nil
}

// runReconciliation gom bản ghi thành batch, chạy các batch đồng thời và
// gom settlement của tất cả. Lỗi của một batch chỉ ảnh hưởng thành viên của
// chính nó - không batch nào bị hủy vì batch khác thất bại.
func (s *CalendarSyncService) runReconciliation(ctx context.Context, records []models.SelectedCalendar, action batchAction) *SyncReport {
	log := logger.GetAppLogger()
	report := &SyncReport{Direction: action.direction, Processed: len(records)}

	batches, skippedRecords := GroupByExternalAndCredential(records)
	report.Batches = len(batches)

	// Index thành viên theo batch key để persist theo từng bản ghi
	membersByKey := make(map[BatchKey][]models.SelectedCalendar)
	for _, record := range records {
		if record.CredentialID == nil {
			continue
		}
		key := BatchKey{ExternalID: record.ExternalID, CredentialID: *record.CredentialID}
		membersByKey[key] = append(membersByKey[key], record)
	}

	var mu sync.Mutex
	outcomes := make([]SyncOutcome, 0, len(records))

	// Bản ghi thiếu credential: skip ngay, persist lý do, không gọi provider
	for _, record := range skippedRecords {
		if err := action.persistFailure(ctx, record.ID, SkipReasonMissingCredential); err != nil {
			log.WithError(err).WithField("recordId", record.ID.Hex()).Error("📅 [CALENDAR_SYNC] Không thể ghi trạng thái skip")
		}
		outcomes = append(outcomes, SyncOutcome{
			RecordID: record.ID,
			Status:   OutcomeSkipped,
			Reason:   SkipReasonMissingCredential,
		})
	}

	var wg sync.WaitGroup
	for key, batch := range batches {
		wg.Add(1)
		go func(key BatchKey, batch *SyncBatch) {
			defer wg.Done()
			// Panic trong một batch được settle thành failure, không sập cả lượt chạy
			defer func() {
				if r := recover(); r != nil {
					reason := fmt.Sprintf("panic: %v", r)
					s.settleBatch(ctx, action, key, membersByKey[key], reason, &mu, &outcomes)
				}
			}()

			reason := ""
			credential, err := s.credentialLookup(ctx, batch.CredentialID)
			if err != nil {
				reason = errorReason(err)
			} else if err := action.call(ctx, credential, batch, membersByKey[key]); err != nil {
				reason = errorReason(err)
			}

			s.settleBatch(ctx, action, key, membersByKey[key], reason, &mu, &outcomes)
		}(key, batch)
	}
	wg.Wait()

	for _, outcome := range outcomes {
		switch outcome.Status {
		case OutcomeSuccess:
			report.Succeeded++
		case OutcomeFailed:
			report.Failed++
			log.WithFields(map[string]interface{}{
				"direction": action.direction,
				"recordId":  outcome.RecordID.Hex(),
				"reason":    outcome.Reason,
			}).Warn("📅 [CALENDAR_SYNC] Settlement bị reject")
		case OutcomeSkipped:
			report.Skipped++
			log.WithFields(map[string]interface{}{
				"direction": action.direction,
				"recordId":  outcome.RecordID.Hex(),
				"reason":    outcome.Reason,
			}).Warn("📅 [CALENDAR_SYNC] Bản ghi bị skip")
		}
	}
	report.Outcomes = outcomes

	log.WithFields(map[string]interface{}{
		"direction": action.direction,
		"processed": report.Processed,
		"batches":   report.Batches,
		"succeeded": report.Succeeded,
		"failed":    report.Failed,
		"skipped":   report.Skipped,
	}).Info("📅 [CALENDAR_SYNC] Hoàn thành lượt reconcile")

	return report
}

// settleBatch ghi kết quả cho mọi thành viên của một batch.
// reason rỗng nghĩa là batch thành công: xóa trạng thái lỗi của từng bản ghi.
// reason khác rỗng: lưu lý do lỗi cho từng bản ghi.
func (s *CalendarSyncService) settleBatch(ctx context.Context, action batchAction, key BatchKey, members []models.SelectedCalendar, reason string, mu *sync.Mutex, outcomes *[]SyncOutcome) {
	log := logger.GetAppLogger()

	for _, member := range members {
		outcome := SyncOutcome{RecordID: member.ID}
		if reason == "" {
			if err := action.persistSuccess(ctx, member); err != nil {
				outcome.Status = OutcomeFailed
				outcome.Reason = errorReason(err)
			} else {
				outcome.Status = OutcomeSuccess
			}
		} else {
			outcome.Status = OutcomeFailed
			outcome.Reason = reason
			if err := action.persistFailure(ctx, member.ID, reason); err != nil {
				log.WithError(err).WithFields(map[string]interface{}{
					"direction": action.direction,
					"recordId":  member.ID.Hex(),
				}).Error("📅 [CALENDAR_SYNC] Không thể ghi trạng thái lỗi")
			}
		}

		mu.Lock()
		*outcomes = append(*outcomes, outcome)
		mu.Unlock()
	}
}

// errorReason trích thông điệp lỗi dễ đọc, fallback "Unknown error"
func errorReason(err error) string {
	if err == nil || err.Error() == "" {
		return "Unknown error"
	}
	return err.Error()
}
