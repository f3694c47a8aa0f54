package authhdl

import (
	"fmt"

	authdto "meta_booking/internal/api/auth/dto"
	models "meta_booking/internal/api/auth/models"
	authsvc "meta_booking/internal/api/auth/services"
	basehdl "meta_booking/internal/api/base/handler"
)

// UserRoleHandler xử lý các route liên quan đến vai trò người dùng
type UserRoleHandler struct {
	*basehdl.BaseHandler[models.UserRole, authdto.UserRoleCreateInput, authdto.UserRoleUpdateInput]
	UserRoleService *authsvc.UserRoleService
}

// NewUserRoleHandler tạo instance mới của UserRoleHandler
func NewUserRoleHandler() (*UserRoleHandler, error) {
	userRoleService, err := authsvc.NewUserRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user role service: %v", err)
	}
	return &UserRoleHandler{
		BaseHandler: basehdl.NewBaseHandler[models.UserRole, authdto.UserRoleCreateInput, authdto.UserRoleUpdateInput](userRoleService),
		UserRoleService: userRoleService,
	}, nil
}
