package authhdl

import (
	"fmt"

	authdto "meta_booking/internal/api/auth/dto"
	models "meta_booking/internal/api/auth/models"
	authsvc "meta_booking/internal/api/auth/services"
	basehdl "meta_booking/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// PermissionHandler xử lý các route liên quan đến quyền
type PermissionHandler struct {
	*basehdl.BaseHandler[models.Permission, authdto.PermissionCreateInput, authdto.PermissionUpdateInput]
	PermissionService *authsvc.PermissionService
}

// NewPermissionHandler tạo instance mới của PermissionHandler
func NewPermissionHandler() (*PermissionHandler, error) {
	permissionService, err := authsvc.NewPermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create permission service: %v", err)
	}
	return &PermissionHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Permission, authdto.PermissionCreateInput, authdto.PermissionUpdateInput](permissionService),
		PermissionService: permissionService,
	}, nil
}

// HandleRegistry trả về toàn bộ registry quyền tĩnh (danh sách permission string hợp lệ)
func (h *PermissionHandler) HandleRegistry(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		return h.HandleResponse(c, fiber.Map{
			"permissions": authsvc.GetAllPermissions(),
			"categories":  authsvc.GetPermissionCategories(),
		}, nil)
	})
}

// HandleRegistryByCategory trả về các permission string thuộc một category
func (h *PermissionHandler) HandleRegistryByCategory(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		category := c.Params("category")
		return h.HandleResponse(c, fiber.Map{
			"category":    category,
			"permissions": authsvc.GetPermissionsByCategory(category),
		}, nil)
	})
}
