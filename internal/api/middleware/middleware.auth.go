// Package middleware - xác thực và phân quyền cho Fiber.
package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	authsvc "meta_booking/internal/api/auth/services"
	basehdl "meta_booking/internal/api/base/handler"
	"meta_booking/internal/common"
	"meta_booking/internal/logger"
	"meta_booking/internal/utility"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// AuthManager quản lý xác thực và phân quyền người dùng
type AuthManager struct {
	UserCRUD           *authsvc.UserService
	RoleCRUD           *authsvc.RoleService
	PermissionCRUD     *authsvc.PermissionService
	RolePermissionCRUD *authsvc.RolePermissionService
	UserRoleCRUD       *authsvc.UserRoleService
	Cache              *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	newManager.UserCRUD = userService

	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	newManager.RoleCRUD = roleService

	permissionService, err := authsvc.NewPermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create permission service: %v", err)
	}
	newManager.PermissionCRUD = permissionService

	rolePermissionService, err := authsvc.NewRolePermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role permission service: %v", err)
	}
	newManager.RolePermissionCRUD = rolePermissionService

	userRoleService, err := authsvc.NewUserRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user role service: %v", err)
	}
	newManager.UserRoleCRUD = userRoleService

	// Cache permissions với thời gian sống 5 phút, dọn dẹp mỗi 10 phút
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// getUserPermissions lấy danh sách permissions của user từ cache hoặc database.
// Gom permissions từ tất cả các role được gán cho user.
func (am *AuthManager) getUserPermissions(userID string) (map[string]byte, error) {
	cacheKey := "user_permissions:" + userID

	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(map[string]byte), nil
	}

	permissions := make(map[string]byte)

	findRoles, err := am.UserRoleCRUD.Find(context.TODO(), bson.M{"userId": utility.String2ObjectID(userID)}, nil)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	for _, userRole := range findRoles {
		findRolePermissions, err := am.RolePermissionCRUD.Find(context.TODO(), bson.M{"roleId": userRole.RoleID}, nil)
		if err != nil {
			continue
		}

		for _, rolePermission := range findRolePermissions {
			permission, err := am.PermissionCRUD.FindOneById(context.TODO(), rolePermission.PermissionID)
			if err != nil {
				continue
			}
			permissions[permission.Name] = rolePermission.Scope
		}
	}

	am.Cache.Set(cacheKey, permissions)
	return permissions, nil
}

// hasPermission kiểm tra user có quyền yêu cầu hay không.
// Một quyền được coi là có nếu user sở hữu chính xác permission đó,
// hoặc sở hữu một pattern wildcard khớp với nó ("*.*", "Booking.*", "*.Read").
func hasPermission(granted map[string]byte, requirePermission string) bool {
	if _, ok := granted[requirePermission]; ok {
		return true
	}
	for pattern := range granted {
		if authsvc.PermissionMatches(pattern, requirePermission) {
			return true
		}
	}
	return false
}

// AuthMiddleware middleware xác thực cho Fiber.
// requirePermission rỗng nghĩa là chỉ cần đăng nhập, không cần quyền cụ thể.
func AuthMiddleware(requirePermission string) fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			return basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
		}

		token := parts[1]

		// Tìm user sở hữu token
		user, err := authManager.UserCRUD.FindByToken(context.Background(), token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token not found in database")
			return basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", *user)

		// Không yêu cầu permission cụ thể thì cho qua ngay sau khi xác thực
		if requirePermission == "" {
			return c.Next()
		}

		permissions, err := authManager.getUserPermissions(user.ID.Hex())
		if err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeAuthRole,
				"Không thể lấy thông tin quyền",
				common.StatusForbidden,
				nil,
			))
		}

		if !hasPermission(permissions, requirePermission) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":             user.ID.Hex(),
				"user_email":          user.Email,
				"required_permission": requirePermission,
				"path":                c.Path(),
			}).Warn("❌ [AUTH] User does not have required permission")
			return basehdl.HandleResponse(c, nil, common.ErrPermissionDenied)
		}

		c.Locals("permission_name", requirePermission)
		return c.Next()
	}
}

// InvalidateUserPermissionCache xóa cache permissions của một user (gọi khi đổi role/permission)
func InvalidateUserPermissionCache(userID string) {
	GetAuthManager().Cache.Delete("user_permissions:" + userID)
}
