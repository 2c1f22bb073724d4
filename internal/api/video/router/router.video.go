// Package videorouter đăng ký route cho domain video.
package videorouter

import (
	"github.com/gofiber/fiber/v3"

	"vid_tube/internal/api/middleware"
	"vid_tube/internal/api/router"
	videohdl "vid_tube/internal/api/video/handler"
)

// Register đăng ký các route video vào group /api/v1.
// Cả group dùng OptionalAuthMiddleware: GET công khai vẫn có viewer context,
// còn các mutation tự chặn 401 qua RequireUserID vì GET và PATCH/DELETE
// dùng chung path nên không tách middleware theo group được.
func Register(v1 fiber.Router, r *router.Router) error {
	h, err := videohdl.NewVideoHandler()
	if err != nil {
		return err
	}

	videos := v1.Group("/videos")
	videos.Use(middleware.OptionalAuthMiddleware())

	videos.Get("/", h.List)
	videos.Post("/", h.Publish)
	videos.Get("/:videoId", h.Detail)
	videos.Patch("/:videoId", h.Update)
	videos.Delete("/:videoId", h.Delete)
	videos.Patch("/toggle/publish/:videoId", h.TogglePublish)

	return nil
}
