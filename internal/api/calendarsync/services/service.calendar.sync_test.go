// Package calendarsyncsvc - Test gom batch theo (externalId, credentialId) và
// reconcile đồng thời với lỗi được cô lập theo từng batch.
package calendarsyncsvc

import (
	"context"
	"errors"
	"sync"
	"testing"

	models "meta_booking/internal/api/calendarsync/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGroupByExternalAndCredential_SamePairSameBatch(t *testing.T) {
	cred := primitive.NewObjectID()
	et1 := primitive.NewObjectID()
	et2 := primitive.NewObjectID()
	records := []models.SelectedCalendar{
		{ID: primitive.NewObjectID(), ExternalID: "cal1", CredentialID: &cred, EventTypeID: &et1},
		{ID: primitive.NewObjectID(), ExternalID: "cal1", CredentialID: &cred, EventTypeID: &et2},
	}

	batches, skipped := GroupByExternalAndCredential(records)
	if len(skipped) != 0 {
		t.Errorf("Không có bản ghi nào thiếu credential, skipped phải rỗng, got %d", len(skipped))
	}
	if len(batches) != 1 {
		t.Fatalf("Hai bản ghi cùng (externalId, credentialId) phải vào cùng một batch, got %d batches", len(batches))
	}
	batch := batches[BatchKey{ExternalID: "cal1", CredentialID: cred}]
	if batch == nil {
		t.Fatal("Không tìm thấy batch theo đúng key")
	}
	if len(batch.RecordIDs) != 2 {
		t.Errorf("Batch phải có 2 thành viên, got %d", len(batch.RecordIDs))
	}
	if len(batch.EventTypeIDs) != 2 {
		t.Errorf("Batch phải giữ đủ 2 eventTypeIds (kể cả trùng lặp), got %d", len(batch.EventTypeIDs))
	}
}

func TestGroupByExternalAndCredential_DifferentCredentialDifferentBatch(t *testing.T) {
	cred1 := primitive.NewObjectID()
	cred2 := primitive.NewObjectID()
	records := []models.SelectedCalendar{
		{ID: primitive.NewObjectID(), ExternalID: "cal1", CredentialID: &cred1},
		{ID: primitive.NewObjectID(), ExternalID: "cal1", CredentialID: &cred2},
	}

	batches, _ := GroupByExternalAndCredential(records)
	if len(batches) != 2 {
		t.Fatalf("Cùng externalId nhưng khác credential là khác tenant, phải tách 2 batch, got %d", len(batches))
	}
}

func TestGroupByExternalAndCredential_NoKeyCollisionOnSeparator(t *testing.T) {
	// Khóa là struct so sánh theo trường, nên externalId chứa ký tự phân cách
	// không bao giờ va chạm với cặp khác
	cred1 := primitive.NewObjectID()
	cred2 := primitive.NewObjectID()
	records := []models.SelectedCalendar{
		{ID: primitive.NewObjectID(), ExternalID: "a::" + cred2.Hex(), CredentialID: &cred1},
		{ID: primitive.NewObjectID(), ExternalID: "a", CredentialID: &cred2},
	}

	batches, _ := GroupByExternalAndCredential(records)
	if len(batches) != 2 {
		t.Fatalf("Hai cặp (externalId, credentialId) khác nhau phải luôn tách batch, got %d", len(batches))
	}
}

func TestGroupByExternalAndCredential_NilCredentialSkipped(t *testing.T) {
	cred := primitive.NewObjectID()
	noCredential := models.SelectedCalendar{ID: primitive.NewObjectID(), ExternalID: "cal2"}
	records := []models.SelectedCalendar{
		{ID: primitive.NewObjectID(), ExternalID: "cal1", CredentialID: &cred},
		noCredential,
	}

	batches, skipped := GroupByExternalAndCredential(records)
	if len(skipped) != 1 || skipped[0].ID != noCredential.ID {
		t.Fatalf("Bản ghi thiếu credential phải được trả riêng, got %d skipped", len(skipped))
	}
	for _, batch := range batches {
		for _, id := range batch.RecordIDs {
			if id == noCredential.ID {
				t.Error("Bản ghi thiếu credential không bao giờ được xuất hiện trong batch")
			}
		}
	}
}

func TestGroupByExternalAndCredential_EndToEndScenario(t *testing.T) {
	cred10 := primitive.NewObjectID()
	cred20 := primitive.NewObjectID()
	et5 := primitive.NewObjectID()
	et7 := primitive.NewObjectID()

	r1 := models.SelectedCalendar{ID: primitive.NewObjectID(), ExternalID: "cal1", CredentialID: &cred10, EventTypeID: &et5}
	r2 := models.SelectedCalendar{ID: primitive.NewObjectID(), ExternalID: "cal1", CredentialID: &cred10, EventTypeID: &et7}
	r3 := models.SelectedCalendar{ID: primitive.NewObjectID(), ExternalID: "cal1", CredentialID: &cred20, EventTypeID: &et5}
	r4 := models.SelectedCalendar{ID: primitive.NewObjectID(), ExternalID: "cal2"}

	batches, skipped := GroupByExternalAndCredential([]models.SelectedCalendar{r1, r2, r3, r4})

	if len(batches) != 2 {
		t.Fatalf("Kịch bản chuẩn phải cho 2 batch, got %d", len(batches))
	}
	if len(skipped) != 1 || skipped[0].ID != r4.ID {
		t.Fatalf("Bản ghi 4 phải bị skip ngay")
	}

	b1 := batches[BatchKey{ExternalID: "cal1", CredentialID: cred10}]
	if b1 == nil || len(b1.RecordIDs) != 2 {
		t.Fatal("Batch (cal1, cred10) phải chứa đúng 2 bản ghi")
	}
	if b1.RecordIDs[0] != r1.ID || b1.RecordIDs[1] != r2.ID {
		t.Error("Thứ tự thành viên trong batch phải theo thứ tự chèn")
	}
	if len(b1.EventTypeIDs) != 2 || *b1.EventTypeIDs[0] != et5 || *b1.EventTypeIDs[1] != et7 {
		t.Error("EventTypeIDs của batch (cal1, cred10) phải là [et5, et7] theo thứ tự")
	}

	b2 := batches[BatchKey{ExternalID: "cal1", CredentialID: cred20}]
	if b2 == nil || len(b2.RecordIDs) != 1 || b2.RecordIDs[0] != r3.ID {
		t.Fatal("Batch (cal1, cred20) phải chứa đúng bản ghi 3")
	}
}

// fakeStore ghi nhận các lời gọi persist trong test driver
type fakeStore struct {
	mu      sync.Mutex
	cleared map[primitive.ObjectID]bool
	errors  map[primitive.ObjectID]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cleared: make(map[primitive.ObjectID]bool),
		errors:  make(map[primitive.ObjectID]string),
	}
}

func (f *fakeStore) persistSuccess(ctx context.Context, record models.SelectedCalendar) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared[record.ID] = true
	delete(f.errors, record.ID)
	return nil
}

func (f *fakeStore) persistFailure(ctx context.Context, id primitive.ObjectID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[id] = reason
	return nil
}

// newTestSyncService tạo CalendarSyncService với credential lookup giả
func newTestSyncService(lookup func(ctx context.Context, id primitive.ObjectID) (*models.CalendarCredential, error)) *CalendarSyncService {
	return &CalendarSyncService{
		credentialLookup: lookup,
		batchSize:        500,
	}
}

func TestRunReconciliation_PartialFailureIsolation(t *testing.T) {
	credOK := primitive.NewObjectID()
	credBad := primitive.NewObjectID()
	rOK1 := models.SelectedCalendar{ID: primitive.NewObjectID(), ExternalID: "cal1", CredentialID: &credOK}
	rOK2 := models.SelectedCalendar{ID: primitive.NewObjectID(), ExternalID: "cal1", CredentialID: &credOK}
	rBad := models.SelectedCalendar{ID: primitive.NewObjectID(), ExternalID: "cal2", CredentialID: &credBad}

	store := newFakeStore()
	svc := newTestSyncService(func(ctx context.Context, id primitive.ObjectID) (*models.CalendarCredential, error) {
		return &models.CalendarCredential{ID: id}, nil
	})

	action := batchAction{
		direction: "watch",
		call: func(ctx context.Context, credential *models.CalendarCredential, batch *SyncBatch, members []models.SelectedCalendar) error {
			if credential.ID == credBad {
				return errors.New("provider rejected channel")
			}
			return nil
		},
		persistSuccess: store.persistSuccess,
		persistFailure: store.persistFailure,
	}

	report := svc.runReconciliation(context.Background(), []models.SelectedCalendar{rOK1, rOK2, rBad}, action)

	if report.Succeeded != 2 {
		t.Errorf("Batch thành công phải settle 2 bản ghi success, got %d", report.Succeeded)
	}
	if report.Failed != 1 {
		t.Errorf("Batch lỗi phải settle đúng 1 bản ghi failed, got %d", report.Failed)
	}
	if !store.cleared[rOK1.ID] || !store.cleared[rOK2.ID] {
		t.Error("Mọi thành viên của batch thành công phải được xóa trạng thái lỗi")
	}
	if reason := store.errors[rBad.ID]; reason != "provider rejected channel" {
		t.Errorf("Thành viên batch lỗi phải được lưu đúng lý do, got %q", reason)
	}
	if _, hasErr := store.errors[rOK1.ID]; hasErr {
		t.Error("Lỗi của batch khác không được lan sang batch thành công")
	}
}

func TestRunReconciliation_MissingCredentialSkippedImmediately(t *testing.T) {
	providerCalled := false
	store := newFakeStore()
	svc := newTestSyncService(func(ctx context.Context, id primitive.ObjectID) (*models.CalendarCredential, error) {
		return &models.CalendarCredential{ID: id}, nil
	})

	noCred := models.SelectedCalendar{ID: primitive.NewObjectID(), ExternalID: "cal1"}
	action := batchAction{
		direction: "watch",
		call: func(ctx context.Context, credential *models.CalendarCredential, batch *SyncBatch, members []models.SelectedCalendar) error {
			providerCalled = true
			return nil
		},
		persistSuccess: store.persistSuccess,
		persistFailure: store.persistFailure,
	}

	report := svc.runReconciliation(context.Background(), []models.SelectedCalendar{noCred}, action)

	if providerCalled {
		t.Error("Bản ghi thiếu credential không được phép sinh lời gọi provider")
	}
	if report.Skipped != 1 {
		t.Errorf("Phải có đúng 1 outcome skipped, got %d", report.Skipped)
	}
	if reason := store.errors[noCred.ID]; reason != SkipReasonMissingCredential {
		t.Errorf("Lý do skip phải được persist là %q, got %q", SkipReasonMissingCredential, reason)
	}
}

func TestRunReconciliation_PanicSettledAsFailure(t *testing.T) {
	cred := primitive.NewObjectID()
	record := models.SelectedCalendar{ID: primitive.NewObjectID(), ExternalID: "cal1", CredentialID: &cred}

	store := newFakeStore()
	svc := newTestSyncService(func(ctx context.Context, id primitive.ObjectID) (*models.CalendarCredential, error) {
		return &models.CalendarCredential{ID: id}, nil
	})

	action := batchAction{
		direction: "watch",
		call: func(ctx context.Context, credential *models.CalendarCredential, batch *SyncBatch, members []models.SelectedCalendar) error {
			panic("provider exploded")
		},
		persistSuccess: store.persistSuccess,
		persistFailure: store.persistFailure,
	}

	report := svc.runReconciliation(context.Background(), []models.SelectedCalendar{record}, action)

	if report.Failed != 1 {
		t.Fatalf("Panic trong batch phải được settle thành failure, got failed=%d", report.Failed)
	}
	if store.errors[record.ID] == "" {
		t.Error("Lý do panic phải được persist cho thành viên batch")
	}
}

func TestRunReconciliation_CredentialLookupFailureIsolated(t *testing.T) {
	credOK := primitive.NewObjectID()
	credMissing := primitive.NewObjectID()
	rOK := models.SelectedCalendar{ID: primitive.NewObjectID(), ExternalID: "cal1", CredentialID: &credOK}
	rMissing := models.SelectedCalendar{ID: primitive.NewObjectID(), ExternalID: "cal2", CredentialID: &credMissing}

	store := newFakeStore()
	svc := newTestSyncService(func(ctx context.Context, id primitive.ObjectID) (*models.CalendarCredential, error) {
		if id == credMissing {
			return nil, errors.New("credential not found")
		}
		return &models.CalendarCredential{ID: id}, nil
	})

	action := batchAction{
		direction: "unwatch",
		call: func(ctx context.Context, credential *models.CalendarCredential, batch *SyncBatch, members []models.SelectedCalendar) error {
			return nil
		},
		persistSuccess: store.persistSuccess,
		persistFailure: store.persistFailure,
	}

	report := svc.runReconciliation(context.Background(), []models.SelectedCalendar{rOK, rMissing}, action)

	if report.Succeeded != 1 || report.Failed != 1 {
		t.Fatalf("Lỗi lookup credential chỉ ảnh hưởng batch của nó: want 1 success + 1 failed, got %d/%d", report.Succeeded, report.Failed)
	}
	if store.errors[rMissing.ID] != "credential not found" {
		t.Errorf("Lý do lỗi lookup phải được persist, got %q", store.errors[rMissing.ID])
	}
}

func TestRunReconciliation_Idempotent(t *testing.T) {
	cred := primitive.NewObjectID()
	record := models.SelectedCalendar{ID: primitive.NewObjectID(), ExternalID: "cal1", CredentialID: &cred}

	store := newFakeStore()
	svc := newTestSyncService(func(ctx context.Context, id primitive.ObjectID) (*models.CalendarCredential, error) {
		return &models.CalendarCredential{ID: id}, nil
	})

	action := batchAction{
		direction: "watch",
		call: func(ctx context.Context, credential *models.CalendarCredential, batch *SyncBatch, members []models.SelectedCalendar) error {
			return nil
		},
		persistSuccess: store.persistSuccess,
		persistFailure: store.persistFailure,
	}

	first := svc.runReconciliation(context.Background(), []models.SelectedCalendar{record}, action)
	second := svc.runReconciliation(context.Background(), []models.SelectedCalendar{record}, action)

	if first.Succeeded != 1 || second.Succeeded != 1 {
		t.Error("Chạy lại với cùng trạng thái phải cho cùng phân loại outcome (success)")
	}
	if !store.cleared[record.ID] {
		t.Error("Trạng thái cleared phải giữ nguyên sau lần chạy thứ hai")
	}
}

func TestErrorReason_Fallback(t *testing.T) {
	if got := errorReason(errors.New("")); got != "Unknown error" {
		t.Errorf("Lỗi không có message phải fallback về Unknown error, got %q", got)
	}
	if got := errorReason(errors.New("boom")); got != "boom" {
		t.Errorf("errorReason phải giữ nguyên message, got %q", got)
	}
}
