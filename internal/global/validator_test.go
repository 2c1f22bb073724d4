package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerSample struct {
	Username string `validate:"required,username"`
	Password string `validate:"required,strong_password"`
	Bio      string `validate:"omitempty,no_xss"`
}

func TestValidator_Username(t *testing.T) {
	InitValidator()

	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"hợp lệ", "chitoge_99", true},
		{"quá ngắn", "ab", false},
		{"chữ hoa", "Chitoge", false},
		{"ký tự đặc biệt", "chitoge!", false},
		{"khoảng trắng", "chi toge", false},
		{"tối thiểu 3 ký tự", "abc", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := registerSample{Username: tt.username, Password: "MatKhau123"}
			err := Validate.Struct(s)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidator_StrongPassword(t *testing.T) {
	InitValidator()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"đủ hoa thường số", "MatKhau123", true},
		{"thiếu chữ hoa", "matkhau123", false},
		{"thiếu chữ thường", "MATKHAU123", false},
		{"thiếu chữ số", "MatKhauAbc", false},
		{"quá ngắn", "Mk12345", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := registerSample{Username: "chitoge", Password: tt.password}
			err := Validate.Struct(s)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidator_NoXSS(t *testing.T) {
	InitValidator()

	tests := []struct {
		name  string
		bio   string
		valid bool
	}{
		{"nội dung thường", "Xin chào, mình làm video nấu ăn", true},
		{"script tag", "<script>alert(1)</script>", false},
		{"javascript scheme", "javascript:alert(1)", false},
		{"event handler", "<img src=x onerror=alert(1)>", false},
		{"iframe", "<iframe src='http://evil'></iframe>", false},
		{"chữ hoa vẫn bị chặn", "<SCRIPT>alert(1)</SCRIPT>", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := registerSample{Username: "chitoge", Password: "MatKhau123", Bio: tt.bio}
			err := Validate.Struct(s)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
