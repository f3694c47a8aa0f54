// Package authsvc - service quyền vai trò (RolePermission).
package authsvc

import (
	"fmt"

	models "meta_booking/internal/api/auth/models"
	basesvc "meta_booking/internal/api/base/service"
	"meta_booking/internal/common"
	"meta_booking/internal/global"
)

// RolePermissionService là cấu trúc chứa các phương thức liên quan đến quyền vai trò
type RolePermissionService struct {
	*basesvc.BaseServiceMongoImpl[models.RolePermission]
}

// NewRolePermissionService tạo mới RolePermissionService
func NewRolePermissionService() (*RolePermissionService, error) {
	rolePermissionCollection, exist := global.RegistryCollections.Get(global.ColNames.RolePermissions)
	if !exist {
		return nil, fmt.Errorf("failed to get role permissions collection: %v", common.ErrNotFound)
	}

	return &RolePermissionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.RolePermission](rolePermissionCollection),
	}, nil
}
