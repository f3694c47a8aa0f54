// Package router đăng ký các route thuộc domain calendarsync.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	calendarsynchdl "meta_booking/internal/api/calendarsync/handlers"
	"meta_booking/internal/api/middleware"
	apirouter "meta_booking/internal/api/router"
)

// Register đăng ký route calendar credential, selected calendar và cron reconcile lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	credentialHandler, err := calendarsynchdl.NewCalendarCredentialHandler()
	if err != nil {
		return fmt.Errorf("failed to create calendar credential handler: %w", err)
	}
	selectedCalendarHandler, err := calendarsynchdl.NewSelectedCalendarHandler()
	if err != nil {
		return fmt.Errorf("failed to create selected calendar handler: %w", err)
	}
	cronHandler, err := calendarsynchdl.NewCalendarCronHandler()
	if err != nil {
		return fmt.Errorf("failed to create calendar cron handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/calendar-credentials", credentialHandler, apirouter.ReadWriteConfig, "CalendarCredential")
	r.RegisterCRUDRoutes(v1, "/selected-calendars", selectedCalendarHandler, apirouter.ReadWriteConfig, "SelectedCalendar")

	// Cron endpoint: chỉ scheduler ngoài với shared secret được gọi
	cronMiddleware := middleware.CronAuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/cron", "POST", "/calendar-sync", []fiber.Handler{cronMiddleware}, cronHandler.HandleCalendarSync)
	return nil
}
