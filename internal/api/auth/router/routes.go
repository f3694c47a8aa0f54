// Package router đăng ký các route thuộc domain auth: Auth, RBAC, Admin, System.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "meta_booking/internal/api/auth/handlers"
	basehdl "meta_booking/internal/api/base/handler"
	"meta_booking/internal/api/middleware"
	apirouter "meta_booking/internal/api/router"
)

// Register đăng ký tất cả route auth (auth, RBAC, admin, system) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerRBACRoutes(v1, r); err != nil {
		return err
	}
	if err := registerAdminRoutes(v1); err != nil {
		return err
	}
	registerSystemRoutes(v1)
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Đăng ký / đăng nhập không cần xác thực
	router.Post("/auth/register", userHandler.HandleRegister)
	router.Post("/auth/login", userHandler.HandleLogin)

	// Các route cần đăng nhập
	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/change-info", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleChangeInfo)
	return nil
}

func registerRBACRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	roleHandler, err := authhdl.NewRoleHandler()
	if err != nil {
		return fmt.Errorf("failed to create role handler: %w", err)
	}
	permissionHandler, err := authhdl.NewPermissionHandler()
	if err != nil {
		return fmt.Errorf("failed to create permission handler: %w", err)
	}
	rolePermissionHandler, err := authhdl.NewRolePermissionHandler()
	if err != nil {
		return fmt.Errorf("failed to create role permission handler: %w", err)
	}
	userRoleHandler, err := authhdl.NewUserRoleHandler()
	if err != nil {
		return fmt.Errorf("failed to create user role handler: %w", err)
	}

	r.RegisterCRUDRoutes(router, "/users", userHandler, apirouter.ReadWriteConfig, "User")
	r.RegisterCRUDRoutes(router, "/roles", roleHandler, apirouter.ReadWriteConfig, "Role")
	r.RegisterCRUDRoutes(router, "/permissions", permissionHandler, apirouter.ReadOnlyConfig, "Permission")
	r.RegisterCRUDRoutes(router, "/role-permissions", rolePermissionHandler, apirouter.ReadWriteConfig, "RolePermission")
	r.RegisterCRUDRoutes(router, "/user-roles", userRoleHandler, apirouter.ReadWriteConfig, "UserRole")

	// Registry quyền tĩnh (chỉ cần quyền đọc permission)
	permissionReadMiddleware := middleware.AuthMiddleware("Permission.Read")
	apirouter.RegisterRouteWithMiddleware(router, "/permissions", "GET", "/registry", []fiber.Handler{permissionReadMiddleware}, permissionHandler.HandleRegistry)
	apirouter.RegisterRouteWithMiddleware(router, "/permissions", "GET", "/registry/:category", []fiber.Handler{permissionReadMiddleware}, permissionHandler.HandleRegistryByCategory)
	return nil
}

func registerAdminRoutes(router fiber.Router) error {
	adminHandler, err := authhdl.NewAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin handler: %w", err)
	}
	blockMiddleware := middleware.AuthMiddleware("User.Update")
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/block", []fiber.Handler{blockMiddleware}, adminHandler.HandleBlockUser)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/unblock", []fiber.Handler{blockMiddleware}, adminHandler.HandleUnBlockUser)
	setAdminMiddleware := middleware.AuthMiddleware("UserRole.Insert")
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/set-administrator/:id", []fiber.Handler{setAdminMiddleware}, adminHandler.HandleSetAdministrator)
	return nil
}

func registerSystemRoutes(router fiber.Router) {
	systemHandler := basehdl.NewSystemHandler()
	router.Get("/system/health", systemHandler.HandleHealth)
}
