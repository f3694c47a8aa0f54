// Package calendarsyncsvc - service credential lịch (CalendarCredential).
package calendarsyncsvc

import (
	"fmt"

	models "meta_booking/internal/api/calendarsync/models"
	basesvc "meta_booking/internal/api/base/service"
	"meta_booking/internal/common"
	"meta_booking/internal/global"
)

// CalendarCredentialService là cấu trúc chứa các phương thức liên quan đến credential lịch
type CalendarCredentialService struct {
	*basesvc.BaseServiceMongoImpl[models.CalendarCredential]
}

// NewCalendarCredentialService tạo mới CalendarCredentialService
func NewCalendarCredentialService() (*CalendarCredentialService, error) {
	credentialCollection, exist := global.RegistryCollections.Get(global.ColNames.CalendarCredentials)
	if !exist {
		return nil, fmt.Errorf("failed to get calendar credentials collection: %v", common.ErrNotFound)
	}

	return &CalendarCredentialService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.CalendarCredential](credentialCollection),
	}, nil
}
