// Package authsvc - service vai trò (Role).
package authsvc

import (
	"fmt"

	models "meta_booking/internal/api/auth/models"
	basesvc "meta_booking/internal/api/base/service"
	"meta_booking/internal/common"
	"meta_booking/internal/global"
)

// RoleService là cấu trúc chứa các phương thức liên quan đến vai trò
type RoleService struct {
	*basesvc.BaseServiceMongoImpl[models.Role]
}

// NewRoleService tạo mới RoleService
func NewRoleService() (*RoleService, error) {
	roleCollection, exist := global.RegistryCollections.Get(global.ColNames.Roles)
	if !exist {
		return nil, fmt.Errorf("failed to get roles collection: %v", common.ErrNotFound)
	}

	return &RoleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Role](roleCollection),
	}, nil
}
