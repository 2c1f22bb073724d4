// Package videohdl - HTTP handler cho domain video.
package videohdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "vid_tube/internal/api/base/handler"
	videodto "vid_tube/internal/api/video/dto"
	videosvc "vid_tube/internal/api/video/service"
	"vid_tube/internal/logger"
)

// VideoHandler xử lý các request liên quan đến video
type VideoHandler struct {
	basehdl.BaseHandler
	service *videosvc.VideoService
}

// NewVideoHandler tạo mới VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	service, err := videosvc.NewVideoService()
	if err != nil {
		return nil, err
	}
	return &VideoHandler{service: service}, nil
}

// List trả về feed video công khai có phân trang
// GET /api/v1/videos
func (h *VideoHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		query := &videodto.VideoListQuery{
			Query:    c.Query("query"),
			UserID:   c.Query("userId"),
			SortBy:   c.Query("sortBy"),
			SortType: c.Query("sortType"),
		}

		result, err := h.service.ListVideos(c.Context(), query, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// Publish đăng video mới
// POST /api/v1/videos
func (h *VideoHandler) Publish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(videodto.VideoPublishInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.service.Publish(c.Context(), ownerID, input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogCRUD("create", "video", video.ID.Hex(), c, nil)
		h.HandleCreated(c, video)
		return nil
	})
}

// Detail trả về chi tiết video theo góc nhìn của viewer
// GET /api/v1/videos/:videoId
func (h *VideoHandler) Detail(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID, err := h.ParamObjectID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.service.GetVideoByID(c.Context(), videoID, h.GetViewerID(c))
		h.HandleResponse(c, video, err)
		return nil
	})
}

// Update cập nhật metadata video
// PATCH /api/v1/videos/:videoId
func (h *VideoHandler) Update(c fiber.Ctx) error {
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

		input := new(videodto.VideoUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.service.Update(c.Context(), videoID, ownerID, input)
		if err == nil {
			logger.LogCRUD("update", "video", videoID.Hex(), c, nil)
		}
		h.HandleResponse(c, video, err)
		return nil
	})
}

// Delete xóa video cùng dữ liệu liên quan
// DELETE /api/v1/videos/:videoId
func (h *VideoHandler) Delete(c fiber.Ctx) error {
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

		err = h.service.Delete(c.Context(), videoID, ownerID)
		if err == nil {
			logger.LogCRUD("delete", "video", videoID.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// TogglePublish đảo trạng thái công khai của video
// PATCH /api/v1/videos/toggle/publish/:videoId
func (h *VideoHandler) TogglePublish(c fiber.Ctx) error {
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

		newStatus, err := h.service.TogglePublishStatus(c.Context(), videoID, ownerID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, videodto.PublishStatusResult{IsPublished: newStatus}, nil)
		return nil
	})
}
