// Package middleware chứa các middleware xác thực cho Fiber
package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	usersvc "vid_tube/internal/api/user/service"
	"vid_tube/internal/common"
	"vid_tube/internal/global"
	"vid_tube/internal/logger"
	"vid_tube/internal/utility"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *usersvc.UserService
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

func newAuthManager() (*AuthManager, error) {
	userService, err := usersvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &AuthManager{UserCRUD: userService}, nil
}

// extractToken lấy access token từ header Authorization (Bearer) hoặc cookie accessToken
func extractToken(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return c.Cookies("accessToken")
}

// authenticate xác thực token và trả về user_id dạng hex string
func (am *AuthManager) authenticate(c fiber.Ctx, token string) (string, error) {
	claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token)
	if err != nil {
		return "", err
	}

	userID := utility.String2ObjectID(claims.UserID)
	if userID.IsZero() {
		return "", common.ErrTokenInvalid
	}

	// Token hợp lệ nhưng user đã bị xóa thì vẫn từ chối
	user, err := am.UserCRUD.FindOneById(context.Background(), userID)
	if err != nil {
		return "", common.ErrTokenInvalid
	}

	c.Locals("user_id", user.ID.Hex())
	c.Locals("username", user.Username)
	return user.ID.Hex(), nil
}

// AuthMiddleware middleware xác thực bắt buộc: request không có token hợp lệ bị chặn 401
func AuthMiddleware() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Thiếu token xác thực")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		if _, err := authManager.authenticate(c, token); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("Token không hợp lệ")
			HandleErrorResponse(c, err)
			return nil
		}

		return c.Next()
	}
}

// OptionalAuthMiddleware middleware xác thực tùy chọn cho các route đọc công khai.
// Token hợp lệ thì gắn viewer context; token thiếu hoặc không hợp lệ thì
// request vẫn đi tiếp với viewer ẩn danh, không bao giờ trả 401.
func OptionalAuthMiddleware() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		token := extractToken(c)
		if token != "" {
			// Lỗi được nuốt: viewer rơi về ẩn danh
			_, _ = authManager.authenticate(c, token)
		}
		return c.Next()
	}
}
