// Package tweetrouter đăng ký route cho domain tweet.
package tweetrouter

import (
	"github.com/gofiber/fiber/v3"

	"vid_tube/internal/api/middleware"
	"vid_tube/internal/api/router"
	tweethdl "vid_tube/internal/api/tweet/handler"
)

// Register đăng ký các route tweet vào group /api/v1.
// Đọc danh sách công khai với viewer context tùy chọn,
// các mutation tự chặn 401 qua RequireUserID.
func Register(v1 fiber.Router, r *router.Router) error {
	h, err := tweethdl.NewTweetHandler()
	if err != nil {
		return err
	}

	tweets := v1.Group("/tweets")
	tweets.Use(middleware.OptionalAuthMiddleware())

	tweets.Post("/", h.Create)
	tweets.Get("/user/:userId", h.UserTweets)
	tweets.Patch("/:tweetId", h.Update)
	tweets.Delete("/:tweetId", h.Delete)

	return nil
}
