package userdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vid_tube/internal/global"
)

func TestUserRegisterInput_Validation(t *testing.T) {
	global.InitValidator()

	valid := UserRegisterInput{
		Username: "chitoge_99",
		Email:    "chitoge@example.com",
		FullName: "Chitoge Kirisaki",
		Password: "MatKhau123",
	}
	assert.NoError(t, global.Validate.Struct(valid))

	tests := []struct {
		name   string
		mutate func(*UserRegisterInput)
	}{
		{"thiếu username", func(i *UserRegisterInput) { i.Username = "" }},
		{"username chữ hoa", func(i *UserRegisterInput) { i.Username = "Chitoge" }},
		{"email sai định dạng", func(i *UserRegisterInput) { i.Email = "không-phải-email" }},
		{"thiếu mật khẩu", func(i *UserRegisterInput) { i.Password = "" }},
		{"fullName chứa script", func(i *UserRegisterInput) { i.FullName = "<script>alert(1)</script>" }},
		{"avatar không phải url", func(i *UserRegisterInput) { i.Avatar = "not a url" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			assert.Error(t, global.Validate.Struct(input))
		})
	}

	// Đăng ký chỉ yêu cầu mật khẩu khác rỗng, không ràng buộc độ mạnh
	short := valid
	short.Password = "p"
	assert.NoError(t, global.Validate.Struct(short))
}

func TestUserLoginInput_Validation(t *testing.T) {
	global.InitValidator()

	// Username và email đều có thể bỏ trống, service tự kiểm tra phải có một trong hai
	assert.NoError(t, global.Validate.Struct(UserLoginInput{Password: "MatKhau123"}))
	assert.NoError(t, global.Validate.Struct(UserLoginInput{Username: "chitoge", Password: "MatKhau123"}))
	assert.NoError(t, global.Validate.Struct(UserLoginInput{Email: "chitoge@example.com", Password: "MatKhau123"}))

	assert.Error(t, global.Validate.Struct(UserLoginInput{Username: "chitoge"}))
}

func TestChangePasswordInput_Validation(t *testing.T) {
	global.InitValidator()

	assert.NoError(t, global.Validate.Struct(ChangePasswordInput{OldPassword: "cu", NewPassword: "MatKhauMoi1"}))
	assert.Error(t, global.Validate.Struct(ChangePasswordInput{OldPassword: "cu", NewPassword: "yeu"}))
}
