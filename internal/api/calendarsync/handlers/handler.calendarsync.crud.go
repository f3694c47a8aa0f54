package calendarsynchdl

import (
	"fmt"

	basehdl "meta_booking/internal/api/base/handler"
	calendarsyncdto "meta_booking/internal/api/calendarsync/dto"
	models "meta_booking/internal/api/calendarsync/models"
	calendarsyncsvc "meta_booking/internal/api/calendarsync/services"
)

// CalendarCredentialHandler xử lý các route CRUD credential lịch
type CalendarCredentialHandler struct {
	*basehdl.BaseHandler[models.CalendarCredential, calendarsyncdto.CalendarCredentialCreateInput, calendarsyncdto.CalendarCredentialUpdateInput]
	CredentialService *calendarsyncsvc.CalendarCredentialService
}

// NewCalendarCredentialHandler tạo instance mới của CalendarCredentialHandler
func NewCalendarCredentialHandler() (*CalendarCredentialHandler, error) {
	credentialService, err := calendarsyncsvc.NewCalendarCredentialService()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar credential service: %v", err)
	}
	return &CalendarCredentialHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.CalendarCredential, calendarsyncdto.CalendarCredentialCreateInput, calendarsyncdto.CalendarCredentialUpdateInput](credentialService),
		CredentialService: credentialService,
	}, nil
}

// SelectedCalendarHandler xử lý các route CRUD lịch đã chọn
type SelectedCalendarHandler struct {
	*basehdl.BaseHandler[models.SelectedCalendar, calendarsyncdto.SelectedCalendarCreateInput, calendarsyncdto.SelectedCalendarUpdateInput]
	SelectedCalendarService *calendarsyncsvc.SelectedCalendarService
}

// NewSelectedCalendarHandler tạo instance mới của SelectedCalendarHandler
func NewSelectedCalendarHandler() (*SelectedCalendarHandler, error) {
	selectedCalendarService, err := calendarsyncsvc.NewSelectedCalendarService()
	if err != nil {
		return nil, fmt.Errorf("failed to create selected calendar service: %v", err)
	}
	return &SelectedCalendarHandler{
		BaseHandler:             basehdl.NewBaseHandler[models.SelectedCalendar, calendarsyncdto.SelectedCalendarCreateInput, calendarsyncdto.SelectedCalendarUpdateInput](selectedCalendarService),
		SelectedCalendarService: selectedCalendarService,
	}, nil
}
