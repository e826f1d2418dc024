package authdto

// UserRegisterInput đầu vào đăng ký người dùng (multipart form, kèm file avatar và coverImage).
type UserRegisterInput struct {
	FullName string `json:"fullname" form:"fullname" validate:"required,no_xss"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Username string `json:"username" form:"username" validate:"required,min=3,no_xss"`
	Password string `json:"password" form:"password" validate:"required,strong_password"`
}

// UserLoginInput đầu vào đăng nhập. Chấp nhận username hoặc email, cần ít nhất một trong hai.
type UserLoginInput struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RefreshTokenInput đầu vào cấp lại token. RefreshToken có thể rỗng nếu gửi qua cookie.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" form:"refreshToken"`
}

// ChangePasswordInput đầu vào đổi mật khẩu.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" form:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" form:"newPassword" validate:"required,strong_password"`
}

// UpdateAccountInput đầu vào cập nhật thông tin tài khoản.
type UpdateAccountInput struct {
	FullName string `json:"fullname" form:"fullname" validate:"required,no_xss"`
	Email    string `json:"email" form:"email" validate:"required,email"`
}
