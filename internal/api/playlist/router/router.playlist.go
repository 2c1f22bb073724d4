// Package playlistrouter đăng ký route cho domain playlist.
package playlistrouter

import (
	"github.com/gofiber/fiber/v3"

	"vid_tube/internal/api/middleware"
	playlisthdl "vid_tube/internal/api/playlist/handler"
	"vid_tube/internal/api/router"
)

// Register đăng ký các route playlist vào group /api/v1. Toàn bộ yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *router.Router) error {
	h, err := playlisthdl.NewPlaylistHandler()
	if err != nil {
		return err
	}

	playlists := v1.Group("/playlists")
	playlists.Use(middleware.AuthMiddleware())

	playlists.Post("/", h.Create)
	playlists.Get("/user/:userId", h.UserPlaylists)
	playlists.Get("/:playlistId", h.Detail)
	playlists.Patch("/:playlistId", h.Update)
	playlists.Delete("/:playlistId", h.Delete)
	playlists.Patch("/add/:videoId/:playlistId", h.AddVideo)
	playlists.Patch("/remove/:videoId/:playlistId", h.RemoveVideo)

	return nil
}
