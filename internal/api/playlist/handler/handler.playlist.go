// Package playlisthdl - HTTP handler cho domain playlist.
package playlisthdl

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "vid_tube/internal/api/base/handler"
	playlistdto "vid_tube/internal/api/playlist/dto"
	models "vid_tube/internal/api/playlist/models"
	playlistsvc "vid_tube/internal/api/playlist/service"
	"vid_tube/internal/logger"
)

// PlaylistHandler xử lý các request liên quan đến playlist
type PlaylistHandler struct {
	basehdl.BaseHandler
	service *playlistsvc.PlaylistService
}

// NewPlaylistHandler tạo mới PlaylistHandler
func NewPlaylistHandler() (*PlaylistHandler, error) {
	service, err := playlistsvc.NewPlaylistService()
	if err != nil {
		return nil, err
	}
	return &PlaylistHandler{service: service}, nil
}

// Create tạo playlist mới
// POST /api/v1/playlists
func (h *PlaylistHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(playlistdto.PlaylistCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.service.Create(c.Context(), ownerID, input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogCRUD("create", "playlist", playlist.ID.Hex(), c, nil)
		h.HandleCreated(c, playlist)
		return nil
	})
}

// UserPlaylists trả về danh sách playlist của một user
// GET /api/v1/playlists/user/:userId
func (h *PlaylistHandler) UserPlaylists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.ParamObjectID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlists, err := h.service.GetUserPlaylists(c.Context(), ownerID)
		h.HandleResponse(c, playlists, err)
		return nil
	})
}

// Detail trả về chi tiết playlist
// GET /api/v1/playlists/:playlistId
func (h *PlaylistHandler) Detail(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		playlistID, err := h.ParamObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.service.GetByID(c.Context(), playlistID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// Update cập nhật tên/mô tả playlist
// PATCH /api/v1/playlists/:playlistId
func (h *PlaylistHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlistID, err := h.ParamObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(playlistdto.PlaylistUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.service.Update(c.Context(), playlistID, ownerID, input)
		if err == nil {
			logger.LogCRUD("update", "playlist", playlistID.Hex(), c, nil)
		}
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// Delete xóa playlist
// DELETE /api/v1/playlists/:playlistId
func (h *PlaylistHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlistID, err := h.ParamObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.service.Delete(c.Context(), playlistID, ownerID)
		if err == nil {
			logger.LogCRUD("delete", "playlist", playlistID.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// AddVideo thêm video vào playlist
// PATCH /api/v1/playlists/add/:videoId/:playlistId
func (h *PlaylistHandler) AddVideo(c fiber.Ctx) error {
	return h.modifyVideos(c, h.service.AddVideo)
}

// RemoveVideo gỡ video khỏi playlist
// PATCH /api/v1/playlists/remove/:videoId/:playlistId
func (h *PlaylistHandler) RemoveVideo(c fiber.Ctx) error {
	return h.modifyVideos(c, h.service.RemoveVideo)
}

func (h *PlaylistHandler) modifyVideos(c fiber.Ctx, apply func(ctx context.Context, playlistID, videoID, ownerID primitive.ObjectID) (models.Playlist, error)) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoID, err := h.ParamObjectID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := h.ParamObjectID(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := apply(c.Context(), playlistID, videoID, ownerID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}
