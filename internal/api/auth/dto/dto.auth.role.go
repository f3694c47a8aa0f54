package authdto

// RoleCreateInput đầu vào tạo vai trò.
type RoleCreateInput struct {
	Name     string `json:"name" validate:"required"`
	Describe string `json:"describe"`
}

// RoleUpdateInput đầu vào cập nhật vai trò.
type RoleUpdateInput struct {
	Name     string `json:"name"`
	Describe string `json:"describe"`
}
