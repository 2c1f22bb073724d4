// Package likehdl - HTTP handler cho domain like.
package likehdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "vid_tube/internal/api/base/handler"
	likedto "vid_tube/internal/api/like/dto"
	likesvc "vid_tube/internal/api/like/service"
)

// LikeHandler xử lý các request liên quan đến like
type LikeHandler struct {
	basehdl.BaseHandler
	service *likesvc.LikeService
}

// NewLikeHandler tạo mới LikeHandler
func NewLikeHandler() (*LikeHandler, error) {
	service, err := likesvc.NewLikeService()
	if err != nil {
		return nil, err
	}
	return &LikeHandler{service: service}, nil
}

// handleToggle xử lý chung cho ba loại toggle: parse param rồi gọi toggle tương ứng
func (h *LikeHandler) handleToggle(c fiber.Ctx, paramName string, toggle func(ctx fiber.Ctx, targetID, userID primitive.ObjectID) (bool, error)) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		targetID, err := h.ParamObjectID(c, paramName)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		isLiked, err := toggle(c, targetID, userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, likedto.ToggleLikeResult{IsLiked: isLiked}, nil)
		return nil
	})
}

// ToggleVideoLike toggle like trên video
// POST /api/v1/likes/toggle/v/:videoId
func (h *LikeHandler) ToggleVideoLike(c fiber.Ctx) error {
	return h.handleToggle(c, "videoId", func(ctx fiber.Ctx, targetID, userID primitive.ObjectID) (bool, error) {
		return h.service.ToggleVideoLike(ctx.Context(), targetID, userID)
	})
}

// ToggleCommentLike toggle like trên bình luận
// POST /api/v1/likes/toggle/c/:commentId
func (h *LikeHandler) ToggleCommentLike(c fiber.Ctx) error {
	return h.handleToggle(c, "commentId", func(ctx fiber.Ctx, targetID, userID primitive.ObjectID) (bool, error) {
		return h.service.ToggleCommentLike(ctx.Context(), targetID, userID)
	})
}

// ToggleTweetLike toggle like trên tweet
// POST /api/v1/likes/toggle/t/:tweetId
func (h *LikeHandler) ToggleTweetLike(c fiber.Ctx) error {
	return h.handleToggle(c, "tweetId", func(ctx fiber.Ctx, targetID, userID primitive.ObjectID) (bool, error) {
		return h.service.ToggleTweetLike(ctx.Context(), targetID, userID)
	})
}

// LikedVideos trả về danh sách video user đã like
// GET /api/v1/likes/videos
func (h *LikeHandler) LikedVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.GetLikedVideos(c.Context(), userID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}
