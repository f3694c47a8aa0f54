package authdto

// PermissionCreateInput đầu vào tạo quyền (chỉ dùng nội bộ khi seed).
type PermissionCreateInput struct {
	Name     string `json:"name" validate:"required"`
	Describe string `json:"describe"`
	Category string `json:"category"`
	Group    string `json:"group"`
}

// PermissionUpdateInput đầu vào cập nhật mô tả quyền.
type PermissionUpdateInput struct {
	Describe string `json:"describe"`
}
