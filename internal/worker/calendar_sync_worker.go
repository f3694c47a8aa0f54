// Package worker chứa các worker chạy nền định kỳ.
package worker

import (
	"context"
	"sync"
	"time"

	calendarsyncsvc "meta_booking/internal/api/calendarsync/services"
	"meta_booking/internal/logger"
)

// CalendarSyncWorker worker reconcile calendar watch/unwatch định kỳ.
// Bổ trợ cho endpoint cron: môi trường không có scheduler ngoài vẫn
// được đồng bộ đều đặn.
type CalendarSyncWorker struct {
	syncService *calendarsyncsvc.CalendarSyncService
	interval    time.Duration
}

// NewCalendarSyncWorker tạo mới CalendarSyncWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (mặc định: 5 phút)
//   - batchSize: Số bản ghi tối đa mỗi lượt watch/unwatch
func NewCalendarSyncWorker(interval time.Duration, batchSize int64) (*CalendarSyncWorker, error) {
	provider := calendarsyncsvc.NewGoogleCalendarProvider()
	syncService, err := calendarsyncsvc.NewCalendarSyncService(provider, batchSize)
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 5 * time.Minute
	}
	return &CalendarSyncWorker{
		syncService: syncService,
		interval:    interval,
	}, nil
}

// Start chạy worker trong vòng lặp: mỗi interval chạy đồng thời hai lượt
// reconcile watch và unwatch. Panic trong một lần chạy không dừng worker.
func (w *CalendarSyncWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithField("interval", w.interval.String()).Info("📅 [CALENDAR_SYNC] Starting Calendar Sync Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📅 [CALENDAR_SYNC] Calendar Sync Worker stopped")
			return
		case <-ticker.C:
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						log.WithField("panic", r).Error("📅 [CALENDAR_SYNC] Panic lượt watch, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()
				if _, err := w.syncService.ProcessCalendarsToWatch(ctx); err != nil {
					log.WithError(err).Error("📅 [CALENDAR_SYNC] Lỗi lượt watch")
				}
			}()
			go func() {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						log.WithField("panic", r).Error("📅 [CALENDAR_SYNC] Panic lượt unwatch, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()
				if _, err := w.syncService.ProcessCalendarsToUnwatch(ctx); err != nil {
					log.WithError(err).Error("📅 [CALENDAR_SYNC] Lỗi lượt unwatch")
				}
			}()
			wg.Wait()
		}
	}
}
