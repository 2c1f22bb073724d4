// Package commenthdl - HTTP handler cho domain comment.
package commenthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "vid_tube/internal/api/base/handler"
	commentdto "vid_tube/internal/api/comment/dto"
	commentsvc "vid_tube/internal/api/comment/service"
	"vid_tube/internal/logger"
)

// CommentHandler xử lý các request liên quan đến bình luận
type CommentHandler struct {
	basehdl.BaseHandler
	service *commentsvc.CommentService
}

// NewCommentHandler tạo mới CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	service, err := commentsvc.NewCommentService()
	if err != nil {
		return nil, err
	}
	return &CommentHandler{service: service}, nil
}

// List trả về bình luận của một video có phân trang
// GET /api/v1/comments/:videoId
func (h *CommentHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID, err := h.ParamObjectID(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.GetVideoComments(c.Context(), videoID, h.GetViewerID(c), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// Add thêm bình luận mới vào video
// POST /api/v1/comments/:videoId
func (h *CommentHandler) Add(c fiber.Ctx) error {
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

		input := new(commentdto.CommentAddInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.service.Add(c.Context(), videoID, ownerID, input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogCRUD("create", "comment", comment.ID.Hex(), c, nil)
		h.HandleCreated(c, comment)
		return nil
	})
}

// Update sửa nội dung bình luận
// PATCH /api/v1/comments/c/:commentId
func (h *CommentHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		commentID, err := h.ParamObjectID(c, "commentId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(commentdto.CommentUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.service.Update(c.Context(), commentID, ownerID, input)
		if err == nil {
			logger.LogCRUD("update", "comment", commentID.Hex(), c, nil)
		}
		h.HandleResponse(c, comment, err)
		return nil
	})
}

// Delete xóa bình luận cùng các like của nó
// DELETE /api/v1/comments/c/:commentId
func (h *CommentHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		commentID, err := h.ParamObjectID(c, "commentId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.service.Delete(c.Context(), commentID, ownerID)
		if err == nil {
			logger.LogCRUD("delete", "comment", commentID.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
