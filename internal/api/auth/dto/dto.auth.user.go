package authdto

// UserCreateInput đầu vào tạo người dùng (CRUD).
type UserCreateInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UserUpdateInput đầu vào cập nhật người dùng (CRUD).
type UserUpdateInput struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Timezone  string `json:"timezone"`
}

// UserRegisterInput đầu vào đăng ký tài khoản.
type UserRegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
}

// UserLoginInput đầu vào đăng nhập bằng email + mật khẩu.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Hwid     string `json:"hwid" validate:"required"`
}

// UserLogoutInput đầu vào đăng xuất người dùng.
type UserLogoutInput struct {
	Hwid string `json:"hwid" validate:"required"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin người dùng.
type UserChangeInfoInput struct {
	Name string `json:"name"`
}

// BlockUserInput đầu vào khóa người dùng.
type BlockUserInput struct {
	Email string `json:"email" validate:"required"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockUserInput đầu vào mở khóa người dùng.
type UnBlockUserInput struct {
	Email string `json:"email" validate:"required"`
}
