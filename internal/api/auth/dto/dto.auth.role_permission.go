package authdto

// RolePermissionCreateInput đầu vào tạo quyền vai trò.
type RolePermissionCreateInput struct {
	RoleID       string `json:"roleId" validate:"required" transform:"str_objectid"`
	PermissionID string `json:"permissionId" validate:"required" transform:"str_objectid"`
	Scope        byte   `json:"scope"`
}

// RolePermissionUpdateInput đầu vào cập nhật quyền vai trò.
type RolePermissionUpdateInput struct {
	Scope byte `json:"scope"`
}
