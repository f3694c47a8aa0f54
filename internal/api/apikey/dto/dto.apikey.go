package apikeydto

// ApiKeyCreateInput đầu vào tạo khóa API mới.
type ApiKeyCreateInput struct {
	Name string `json:"name" validate:"required" maxLength:"100"`
}
