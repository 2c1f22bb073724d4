// Package userrouter đăng ký route cho domain user.
package userrouter

import (
	"github.com/gofiber/fiber/v3"

	"vid_tube/internal/api/middleware"
	"vid_tube/internal/api/router"
	userhdl "vid_tube/internal/api/user/handler"
)

// Register đăng ký các route người dùng vào group /api/v1.
// Prefix của mỗi group là path đầy đủ để middleware .Use() không
// lan sang các route công khai cùng gốc /users.
func Register(v1 fiber.Router, r *router.Router) error {
	h, err := userhdl.NewUserHandler()
	if err != nil {
		return err
	}

	auth := middleware.AuthMiddleware()
	optionalAuth := middleware.OptionalAuthMiddleware()

	// Route công khai
	v1.Post("/users/register", h.Register)
	v1.Post("/users/login", h.Login)
	v1.Post("/users/refresh-token", h.RefreshToken)

	// Route yêu cầu đăng nhập
	router.RegisterRouteWithMiddleware(v1, "/users/logout", "POST", "/", []fiber.Handler{auth}, h.Logout)
	router.RegisterRouteWithMiddleware(v1, "/users/change-password", "POST", "/", []fiber.Handler{auth}, h.ChangePassword)
	router.RegisterRouteWithMiddleware(v1, "/users/current-user", "GET", "/", []fiber.Handler{auth}, h.CurrentUser)
	router.RegisterRouteWithMiddleware(v1, "/users/update-account", "PATCH", "/", []fiber.Handler{auth}, h.UpdateAccount)
	router.RegisterRouteWithMiddleware(v1, "/users/avatar", "PATCH", "/", []fiber.Handler{auth}, h.UpdateAvatar)
	router.RegisterRouteWithMiddleware(v1, "/users/cover-image", "PATCH", "/", []fiber.Handler{auth}, h.UpdateCoverImage)
	router.RegisterRouteWithMiddleware(v1, "/users/history", "GET", "/", []fiber.Handler{auth}, h.WatchHistory)

	// Hồ sơ kênh: viewer ẩn danh vẫn xem được, flag isSubscribed khi đó là false
	router.RegisterRouteWithMiddleware(v1, "/users/c", "GET", "/:username", []fiber.Handler{optionalAuth}, h.ChannelProfile)

	return nil
}
