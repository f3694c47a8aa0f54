package authdto

// UserRoleCreateInput đầu vào gán vai trò cho người dùng.
type UserRoleCreateInput struct {
	UserID string `json:"userId" validate:"required" transform:"str_objectid"`
	RoleID string `json:"roleId" validate:"required" transform:"str_objectid"`
}

// UserRoleUpdateInput đầu vào cập nhật vai trò người dùng.
type UserRoleUpdateInput struct {
	RoleID string `json:"roleId" validate:"required" transform:"str_objectid"`
}
