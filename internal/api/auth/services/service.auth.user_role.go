// Package authsvc - service vai trò người dùng (UserRole).
package authsvc

import (
	"fmt"

	models "meta_booking/internal/api/auth/models"
	basesvc "meta_booking/internal/api/base/service"
	"meta_booking/internal/common"
	"meta_booking/internal/global"
)

// UserRoleService là cấu trúc chứa các phương thức liên quan đến vai trò người dùng
type UserRoleService struct {
	*basesvc.BaseServiceMongoImpl[models.UserRole]
}

// NewUserRoleService tạo mới UserRoleService
func NewUserRoleService() (*UserRoleService, error) {
	userRoleCollection, exist := global.RegistryCollections.Get(global.ColNames.UserRoles)
	if !exist {
		return nil, fmt.Errorf("failed to get user roles collection: %v", common.ErrNotFound)
	}

	return &UserRoleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.UserRole](userRoleCollection),
	}, nil
}
