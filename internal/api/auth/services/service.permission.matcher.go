// Package authsvc - registry quyền tĩnh và bộ so khớp permission (resource.action).
package authsvc

import (
	"sort"
	"strings"
)

// PermissionMeta metadata của một action trong registry.
type PermissionMeta struct {
	Describe string // Mô tả quyền
	Category string // Nhóm hiển thị (thường trùng tên resource)
	Group    string // Nhóm chức năng lớn (Auth, Booking, Calendar, Billing...)
}

// PermissionRegistry ánh xạ resource → action → metadata.
// Registry là dữ liệu tĩnh, chỉ đọc sau khi khởi động. Mọi phép tra cứu
// đều dùng comma-ok trên map có khóa tường minh, không tin bất kỳ giá trị
// nào không được khai báo trực tiếp trong bảng này.
type PermissionRegistry map[string]map[string]PermissionMeta

// permissionRegistry bảng quyền tĩnh của hệ thống.
// Tên resource/action đúng với permissionPrefix dùng khi đăng ký route CRUD.
var permissionRegistry = PermissionRegistry{
	"User": {
		"Insert": {Describe: "Quyền tạo người dùng", Category: "User", Group: "Auth"},
		"Read":   {Describe: "Quyền xem danh sách người dùng", Category: "User", Group: "Auth"},
		"Update": {Describe: "Quyền cập nhật người dùng", Category: "User", Group: "Auth"},
		"Delete": {Describe: "Quyền xóa người dùng", Category: "User", Group: "Auth"},
	},
	"Role": {
		"Insert": {Describe: "Quyền tạo vai trò", Category: "Role", Group: "Auth"},
		"Read":   {Describe: "Quyền xem danh sách vai trò", Category: "Role", Group: "Auth"},
		"Update": {Describe: "Quyền cập nhật vai trò", Category: "Role", Group: "Auth"},
		"Delete": {Describe: "Quyền xóa vai trò", Category: "Role", Group: "Auth"},
	},
	"Permission": {
		"Read": {Describe: "Quyền xem danh sách quyền", Category: "Permission", Group: "Auth"},
	},
	"RolePermission": {
		"Insert": {Describe: "Quyền gán quyền cho vai trò", Category: "RolePermission", Group: "Auth"},
		"Read":   {Describe: "Quyền xem quyền của vai trò", Category: "RolePermission", Group: "Auth"},
		"Update": {Describe: "Quyền cập nhật quyền của vai trò", Category: "RolePermission", Group: "Auth"},
		"Delete": {Describe: "Quyền gỡ quyền khỏi vai trò", Category: "RolePermission", Group: "Auth"},
	},
	"UserRole": {
		"Insert": {Describe: "Quyền gán vai trò cho người dùng", Category: "UserRole", Group: "Auth"},
		"Read":   {Describe: "Quyền xem vai trò của người dùng", Category: "UserRole", Group: "Auth"},
		"Update": {Describe: "Quyền cập nhật vai trò của người dùng", Category: "UserRole", Group: "Auth"},
		"Delete": {Describe: "Quyền gỡ vai trò khỏi người dùng", Category: "UserRole", Group: "Auth"},
	},
	"ApiKey": {
		"Insert": {Describe: "Quyền tạo API key", Category: "ApiKey", Group: "Auth"},
		"Read":   {Describe: "Quyền xem danh sách API key", Category: "ApiKey", Group: "Auth"},
		"Update": {Describe: "Quyền cập nhật API key", Category: "ApiKey", Group: "Auth"},
		"Delete": {Describe: "Quyền thu hồi API key", Category: "ApiKey", Group: "Auth"},
	},
	"EventType": {
		"Insert": {Describe: "Quyền tạo loại sự kiện", Category: "EventType", Group: "Booking"},
		"Read":   {Describe: "Quyền xem danh sách loại sự kiện", Category: "EventType", Group: "Booking"},
		"Update": {Describe: "Quyền cập nhật loại sự kiện", Category: "EventType", Group: "Booking"},
		"Delete": {Describe: "Quyền xóa loại sự kiện", Category: "EventType", Group: "Booking"},
	},
	"Booking": {
		"Insert": {Describe: "Quyền tạo booking", Category: "Booking", Group: "Booking"},
		"Read":   {Describe: "Quyền xem danh sách booking", Category: "Booking", Group: "Booking"},
		"Update": {Describe: "Quyền cập nhật booking", Category: "Booking", Group: "Booking"},
		"Delete": {Describe: "Quyền xóa booking", Category: "Booking", Group: "Booking"},
	},
	"CalendarCredential": {
		"Insert": {Describe: "Quyền kết nối credential lịch", Category: "CalendarCredential", Group: "Calendar"},
		"Read":   {Describe: "Quyền xem danh sách credential lịch", Category: "CalendarCredential", Group: "Calendar"},
		"Update": {Describe: "Quyền cập nhật credential lịch", Category: "CalendarCredential", Group: "Calendar"},
		"Delete": {Describe: "Quyền gỡ credential lịch", Category: "CalendarCredential", Group: "Calendar"},
	},
	"SelectedCalendar": {
		"Insert": {Describe: "Quyền chọn lịch đồng bộ", Category: "SelectedCalendar", Group: "Calendar"},
		"Read":   {Describe: "Quyền xem danh sách lịch đã chọn", Category: "SelectedCalendar", Group: "Calendar"},
		"Update": {Describe: "Quyền cập nhật lịch đã chọn", Category: "SelectedCalendar", Group: "Calendar"},
		"Delete": {Describe: "Quyền bỏ chọn lịch đồng bộ", Category: "SelectedCalendar", Group: "Calendar"},
	},
	"CalendarSync": {
		"Run": {Describe: "Quyền chạy reconcile watch/unwatch lịch", Category: "CalendarSync", Group: "Calendar"},
	},
	"WebhookLog": {
		"Read":   {Describe: "Quyền xem danh sách webhook log", Category: "WebhookLog", Group: "Webhook"},
		"Delete": {Describe: "Quyền xóa webhook log", Category: "WebhookLog", Group: "Webhook"},
	},
	"CreditBalance": {
		"Read":   {Describe: "Quyền xem số dư credit", Category: "CreditBalance", Group: "Billing"},
		"Update": {Describe: "Quyền điều chỉnh số dư credit", Category: "CreditBalance", Group: "Billing"},
	},
	"CreditPurchaseLog": {
		"Read": {Describe: "Quyền xem lịch sử mua credit", Category: "CreditPurchaseLog", Group: "Billing"},
	},
}

// ValidatePermission kiểm tra một permission string dạng "resource.action"
// có được khai báo trực tiếp trong registry hay không.
// Trả về false thay vì lỗi với mọi input không hợp lệ - caller coi false là deny.
func ValidatePermission(permission string) bool {
	parts := strings.SplitN(permission, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}

	actions, ok := permissionRegistry[parts[0]]
	if !ok || actions == nil {
		return false
	}

	_, ok = actions[parts[1]]
	return ok
}

// ValidatePermissions kiểm tra tất cả permission trong danh sách đều hợp lệ.
func ValidatePermissions(permissions []string) bool {
	valid := true
	for _, permission := range permissions {
		if !ValidatePermission(permission) {
			valid = false
		}
	}
	return valid
}

// PermissionMatches so khớp một pattern (có thể chứa wildcard "*") với một permission.
// Pattern "*.*" luôn khớp, kể cả với chuỗi không đúng định dạng.
// Hàm này KHÔNG kiểm tra permission có tồn tại trong registry hay không -
// caller phải gọi ValidatePermission trước nếu cần registry-truth.
func PermissionMatches(pattern string, permission string) bool {
	if pattern == "*.*" {
		return true
	}

	patternParts := strings.SplitN(pattern, ".", 2)
	permissionParts := strings.SplitN(permission, ".", 2)
	if len(patternParts) != 2 || len(permissionParts) != 2 {
		return false
	}

	resourceMatch := patternParts[0] == "*" || patternParts[0] == permissionParts[0]
	actionMatch := patternParts[1] == "*" || patternParts[1] == permissionParts[1]
	return resourceMatch && actionMatch
}

// CreatePermissionString ghép resource và action thành permission string.
// isCustom = true thêm prefix "custom:". Không validate - caller tự kiểm tra nếu cần.
func CreatePermissionString(resource string, action string, isCustom bool) string {
	permission := resource + "." + action
	if isCustom {
		return "custom:" + permission
	}
	return permission
}

// PermissionResource trả về phần resource của một permission string.
func PermissionResource(permission string) string {
	parts := strings.SplitN(permission, ".", 2)
	return parts[0]
}

// PermissionAction trả về phần action của một permission string (rỗng nếu không có).
func PermissionAction(permission string) string {
	parts := strings.SplitN(permission, ".", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// GetAllPermissions trả về toàn bộ permission string trong registry, đã sắp xếp.
func GetAllPermissions() []string {
	permissions := make([]string, 0)
	for resource, actions := range permissionRegistry {
		for action := range actions {
			permissions = append(permissions, resource+"."+action)
		}
	}
	sort.Strings(permissions)
	return permissions
}

// GetPermissionsByCategory trả về các permission string thuộc một category.
func GetPermissionsByCategory(category string) []string {
	permissions := make([]string, 0)
	for resource, actions := range permissionRegistry {
		for action, meta := range actions {
			if meta.Category == category {
				permissions = append(permissions, resource+"."+action)
			}
		}
	}
	sort.Strings(permissions)
	return permissions
}

// GetPermissionsByResource trả về các permission string của một resource.
func GetPermissionsByResource(resource string) []string {
	actions, ok := permissionRegistry[resource]
	if !ok {
		return []string{}
	}
	permissions := make([]string, 0, len(actions))
	for action := range actions {
		permissions = append(permissions, resource+"."+action)
	}
	sort.Strings(permissions)
	return permissions
}

// GetPermissionsByAction trả về các permission string có cùng action trên mọi resource.
func GetPermissionsByAction(action string) []string {
	permissions := make([]string, 0)
	for resource, actions := range permissionRegistry {
		if _, ok := actions[action]; ok {
			permissions = append(permissions, resource+"."+action)
		}
	}
	sort.Strings(permissions)
	return permissions
}

// GetPermissionCategories trả về danh sách category duy nhất trong registry.
func GetPermissionCategories() []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, actions := range permissionRegistry {
		for _, meta := range actions {
			if !seen[meta.Category] {
				seen[meta.Category] = true
				categories = append(categories, meta.Category)
			}
		}
	}
	sort.Strings(categories)
	return categories
}

// GetPermissionMeta trả về metadata của một permission nếu nó được khai báo trực tiếp.
func GetPermissionMeta(permission string) (PermissionMeta, bool) {
	parts := strings.SplitN(permission, ".", 2)
	if len(parts) != 2 {
		return PermissionMeta{}, false
	}
	actions, ok := permissionRegistry[parts[0]]
	if !ok || actions == nil {
		return PermissionMeta{}, false
	}
	meta, ok := actions[parts[1]]
	return meta, ok
}
