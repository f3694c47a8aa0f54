package authhdl

import (
	"fmt"

	authdto "meta_booking/internal/api/auth/dto"
	models "meta_booking/internal/api/auth/models"
	authsvc "meta_booking/internal/api/auth/services"
	basehdl "meta_booking/internal/api/base/handler"
)

// RolePermissionHandler xử lý các route liên quan đến quyền vai trò
type RolePermissionHandler struct {
	*basehdl.BaseHandler[models.RolePermission, authdto.RolePermissionCreateInput, authdto.RolePermissionUpdateInput]
	RolePermissionService *authsvc.RolePermissionService
}

// NewRolePermissionHandler tạo instance mới của RolePermissionHandler
func NewRolePermissionHandler() (*RolePermissionHandler, error) {
	rolePermissionService, err := authsvc.NewRolePermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role permission service: %v", err)
	}
	return &RolePermissionHandler{
		BaseHandler: basehdl.NewBaseHandler[models.RolePermission, authdto.RolePermissionCreateInput, authdto.RolePermissionUpdateInput](rolePermissionService),
		RolePermissionService: rolePermissionService,
	}, nil
}
