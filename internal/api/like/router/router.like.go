// Package likerouter đăng ký route cho domain like.
package likerouter

import (
	"github.com/gofiber/fiber/v3"

	likehdl "vid_tube/internal/api/like/handler"
	"vid_tube/internal/api/middleware"
	"vid_tube/internal/api/router"
)

// Register đăng ký các route like vào group /api/v1. Toàn bộ yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *router.Router) error {
	h, err := likehdl.NewLikeHandler()
	if err != nil {
		return err
	}

	likes := v1.Group("/likes")
	likes.Use(middleware.AuthMiddleware())

	likes.Post("/toggle/v/:videoId", h.ToggleVideoLike)
	likes.Post("/toggle/c/:commentId", h.ToggleCommentLike)
	likes.Post("/toggle/t/:tweetId", h.ToggleTweetLike)
	likes.Get("/videos", h.LikedVideos)

	return nil
}
