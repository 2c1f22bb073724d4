// Package commentrouter đăng ký route cho domain comment.
package commentrouter

import (
	"github.com/gofiber/fiber/v3"

	commenthdl "vid_tube/internal/api/comment/handler"
	"vid_tube/internal/api/middleware"
	"vid_tube/internal/api/router"
)

// Register đăng ký các route bình luận vào group /api/v1.
// Đọc danh sách là công khai với viewer context tùy chọn,
// các mutation tự chặn 401 qua RequireUserID.
func Register(v1 fiber.Router, r *router.Router) error {
	h, err := commenthdl.NewCommentHandler()
	if err != nil {
		return err
	}

	comments := v1.Group("/comments")
	comments.Use(middleware.OptionalAuthMiddleware())

	comments.Get("/:videoId", h.List)
	comments.Post("/:videoId", h.Add)
	comments.Patch("/c/:commentId", h.Update)
	comments.Delete("/c/:commentId", h.Delete)

	return nil
}
