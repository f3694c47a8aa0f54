// Package bookinghdl - handler CRUD cho Booking và EventType.
package bookinghdl

import (
	"fmt"

	basehdl "meta_booking/internal/api/base/handler"
	bookingdto "meta_booking/internal/api/booking/dto"
	models "meta_booking/internal/api/booking/models"
	bookingsvc "meta_booking/internal/api/booking/services"
)

// EventTypeHandler xử lý các route CRUD loại sự kiện
type EventTypeHandler struct {
	*basehdl.BaseHandler[models.EventType, bookingdto.EventTypeCreateInput, bookingdto.EventTypeUpdateInput]
	EventTypeService *bookingsvc.EventTypeService
}

// NewEventTypeHandler tạo instance mới của EventTypeHandler
func NewEventTypeHandler() (*EventTypeHandler, error) {
	eventTypeService, err := bookingsvc.NewEventTypeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create event type service: %v", err)
	}
	return &EventTypeHandler{
		BaseHandler:      basehdl.NewBaseHandler[models.EventType, bookingdto.EventTypeCreateInput, bookingdto.EventTypeUpdateInput](eventTypeService),
		EventTypeService: eventTypeService,
	}, nil
}

// BookingHandler xử lý các route CRUD booking
type BookingHandler struct {
	*basehdl.BaseHandler[models.Booking, bookingdto.BookingCreateInput, bookingdto.BookingUpdateInput]
	BookingService *bookingsvc.BookingService
}

// NewBookingHandler tạo instance mới của BookingHandler
func NewBookingHandler() (*BookingHandler, error) {
	bookingService, err := bookingsvc.NewBookingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create booking service: %v", err)
	}
	return &BookingHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Booking, bookingdto.BookingCreateInput, bookingdto.BookingUpdateInput](bookingService),
		BookingService: bookingService,
	}, nil
}
