// Package dashboardrouter đăng ký route cho dashboard của kênh.
package dashboardrouter

import (
	"github.com/gofiber/fiber/v3"

	dashboardhdl "vid_tube/internal/api/dashboard/handler"
	"vid_tube/internal/api/middleware"
	"vid_tube/internal/api/router"
)

// Register đăng ký các route dashboard vào group /api/v1. Toàn bộ yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *router.Router) error {
	h, err := dashboardhdl.NewDashboardHandler()
	if err != nil {
		return err
	}

	dashboard := v1.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())

	dashboard.Get("/stats", h.Stats)
	dashboard.Get("/videos", h.Videos)

	return nil
}
