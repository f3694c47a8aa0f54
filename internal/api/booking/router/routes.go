// Package router đăng ký các route thuộc domain booking.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	bookinghdl "meta_booking/internal/api/booking/handlers"
	apirouter "meta_booking/internal/api/router"
)

// Register đăng ký route event type và booking lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	eventTypeHandler, err := bookinghdl.NewEventTypeHandler()
	if err != nil {
		return fmt.Errorf("failed to create event type handler: %w", err)
	}
	bookingHandler, err := bookinghdl.NewBookingHandler()
	if err != nil {
		return fmt.Errorf("failed to create booking handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/event-types", eventTypeHandler, apirouter.ReadWriteConfig, "EventType")
	r.RegisterCRUDRoutes(v1, "/bookings", bookingHandler, apirouter.ReadWriteConfig, "Booking")
	return nil
}
