// Package userdto - các cấu trúc input/output cho domain user.
package userdto

// UserRegisterInput dữ liệu đăng ký tài khoản.
// Password chỉ yêu cầu khác rỗng khi đăng ký; ràng buộc độ mạnh
// áp dụng ở ChangePasswordInput.
type UserRegisterInput struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,max=100,no_xss"`
	Password string `json:"password" validate:"required"`
	Avatar   string `json:"avatar,omitempty" validate:"omitempty,url"`
	Cover    string `json:"coverImage,omitempty" validate:"omitempty,url"`
}

// UserLoginInput dữ liệu đăng nhập, chấp nhận username hoặc email
type UserLoginInput struct {
	Username string `json:"username,omitempty" validate:"omitempty,username"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput dữ liệu refresh access token (nếu không gửi cookie)
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// ChangePasswordInput dữ liệu đổi mật khẩu
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UpdateAccountInput dữ liệu cập nhật thông tin tài khoản
type UpdateAccountInput struct {
	FullName string `json:"fullName,omitempty" validate:"omitempty,max=100,no_xss"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateImageInput dữ liệu cập nhật avatar hoặc ảnh bìa (URL metadata)
type UpdateImageInput struct {
	URL string `json:"url" validate:"required,url"`
}

// LoginResult kết quả đăng nhập trả về cho client
type LoginResult struct {
	User         interface{} `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// TokenPairResult cặp token sau khi refresh
type TokenPairResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
