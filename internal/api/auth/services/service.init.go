// Package authsvc - InitService: seed dữ liệu mặc định khi khởi động.
package authsvc

import (
	"context"
	"fmt"

	models "meta_booking/internal/api/auth/models"
	basesvc "meta_booking/internal/api/base/service"

	"go.mongodb.org/mongo-driver/bson"
)

// AdministratorRoleName tên vai trò quản trị được seed sẵn
const AdministratorRoleName = "Administrator"

// InitService seed quyền từ registry tĩnh và vai trò Administrator
type InitService struct {
	permissionService     *PermissionService
	roleService           *RoleService
	rolePermissionService *RolePermissionService
}

// NewInitService tạo mới InitService
func NewInitService() (*InitService, error) {
	permissionService, err := NewPermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create permission service: %v", err)
	}
	roleService, err := NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	rolePermissionService, err := NewRolePermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role permission service: %v", err)
	}
	return &InitService{
		permissionService:     permissionService,
		roleService:           roleService,
		rolePermissionService: rolePermissionService,
	}, nil
}

// InitPermission seed các document permission từ registry tĩnh.
// Idempotent: upsert theo tên, quyền đã có được cập nhật metadata.
func (s *InitService) InitPermission() error {
	ctx := basesvc.WithSystemDataInsertAllowed(context.Background())

	for _, name := range GetAllPermissions() {
		meta, ok := GetPermissionMeta(name)
		if !ok {
			continue
		}
		permission := models.Permission{
			Name:     name,
			Describe: meta.Describe,
			Category: meta.Category,
			Group:    meta.Group,
			IsSystem: true,
		}
		if _, err := s.permissionService.Upsert(ctx, bson.M{"name": name}, permission); err != nil {
			return fmt.Errorf("failed to seed permission %s: %v", name, err)
		}
	}
	return nil
}

// CheckPermissionForAdministrator đảm bảo vai trò Administrator tồn tại và
// giữ grant "*.*" - khớp mọi permission nên không cần đồng bộ từng quyền mới.
func (s *InitService) CheckPermissionForAdministrator() error {
	ctx := basesvc.WithSystemDataInsertAllowed(context.Background())

	adminRole, err := s.roleService.Upsert(ctx, bson.M{"name": AdministratorRoleName}, models.Role{
		Name:     AdministratorRoleName,
		Describe: "Vai trò quản trị hệ thống, có mọi quyền",
		IsSystem: true,
	})
	if err != nil {
		return fmt.Errorf("failed to seed administrator role: %v", err)
	}

	wildcard := models.Permission{
		Name:     "*.*",
		Describe: "Khớp mọi permission",
		Category: "System",
		Group:    "System",
		IsSystem: true,
	}
	wildcardPermission, err := s.permissionService.Upsert(ctx, bson.M{"name": wildcard.Name}, wildcard)
	if err != nil {
		return fmt.Errorf("failed to seed wildcard permission: %v", err)
	}

	_, err = s.rolePermissionService.Upsert(ctx, bson.M{
		"roleId":       adminRole.ID,
		"permissionId": wildcardPermission.ID,
	}, models.RolePermission{
		RoleID:       adminRole.ID,
		PermissionID: wildcardPermission.ID,
		Scope:        0,
	})
	if err != nil {
		return fmt.Errorf("failed to grant wildcard to administrator: %v", err)
	}
	return nil
}
