// Package calendarsynchdl - handler domain calendarsync: cron reconcile và CRUD.
package calendarsynchdl

import (
	"context"
	"fmt"
	"sync"
	"time"

	basehdl "meta_booking/internal/api/base/handler"
	calendarsyncsvc "meta_booking/internal/api/calendarsync/services"
	"meta_booking/internal/global"

	"github.com/gofiber/fiber/v3"
)

// CalendarCronHandler xử lý endpoint cron reconcile watch/unwatch
type CalendarCronHandler struct {
	syncService *calendarsyncsvc.CalendarSyncService
}

// NewCalendarCronHandler tạo instance mới của CalendarCronHandler
func NewCalendarCronHandler() (*CalendarCronHandler, error) {
	provider := calendarsyncsvc.NewGoogleCalendarProvider()
	syncService, err := calendarsyncsvc.NewCalendarSyncService(provider, int64(global.ServerConfig.CalendarSyncBatchSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar sync service: %v", err)
	}
	return &CalendarCronHandler{syncService: syncService}, nil
}

// HandleCalendarSync chạy đồng thời hai lượt reconcile (watch và unwatch).
// Hai lượt độc lập: lỗi setup của lượt này không chặn lượt kia.
// Credential của scheduler đã được CronAuthMiddleware kiểm tra trước khi tới đây.
func (h *CalendarCronHandler) HandleCalendarSync(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		executedAt := time.Now().UnixMilli()
		ctx := context.Background()

		var wg sync.WaitGroup
		var watchReport, unwatchReport *calendarsyncsvc.SyncReport
		var watchErr, unwatchErr error

		wg.Add(2)
		go func() {
			defer wg.Done()
			watchReport, watchErr = h.syncService.ProcessCalendarsToWatch(ctx)
		}()
		go func() {
			defer wg.Done()
			unwatchReport, unwatchErr = h.syncService.ProcessCalendarsToUnwatch(ctx)
		}()
		wg.Wait()

		result := fiber.Map{"executedAt": executedAt}
		if watchErr != nil {
			result["watch"] = fiber.Map{"error": watchErr.Error()}
		} else {
			result["watch"] = watchReport
		}
		if unwatchErr != nil {
			result["unwatch"] = fiber.Map{"error": unwatchErr.Error()}
		} else {
			result["unwatch"] = unwatchReport
		}

		return basehdl.HandleResponse(c, result, nil)
	})
}
