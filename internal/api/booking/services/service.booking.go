// Package bookingsvc - service cho Booking và EventType.
package bookingsvc

import (
	"fmt"

	models "meta_booking/internal/api/booking/models"
	basesvc "meta_booking/internal/api/base/service"
	"meta_booking/internal/common"
	"meta_booking/internal/global"
)

// EventTypeService là cấu trúc chứa các phương thức liên quan đến loại sự kiện
type EventTypeService struct {
	*basesvc.BaseServiceMongoImpl[models.EventType]
}

// NewEventTypeService tạo mới EventTypeService
func NewEventTypeService() (*EventTypeService, error) {
	eventTypeCollection, exist := global.RegistryCollections.Get(global.ColNames.EventTypes)
	if !exist {
		return nil, fmt.Errorf("failed to get event_types collection: %v", common.ErrNotFound)
	}

	return &EventTypeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.EventType](eventTypeCollection),
	}, nil
}

// BookingService là cấu trúc chứa các phương thức liên quan đến booking
type BookingService struct {
	*basesvc.BaseServiceMongoImpl[models.Booking]
}

// NewBookingService tạo mới BookingService
func NewBookingService() (*BookingService, error) {
	bookingCollection, exist := global.RegistryCollections.Get(global.ColNames.Bookings)
	if !exist {
		return nil, fmt.Errorf("failed to get bookings collection: %v", common.ErrNotFound)
	}

	return &BookingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Booking](bookingCollection),
	}, nil
}
