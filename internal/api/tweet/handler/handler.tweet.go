// Package tweethdl - HTTP handler cho domain tweet.
package tweethdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "vid_tube/internal/api/base/handler"
	tweetdto "vid_tube/internal/api/tweet/dto"
	tweetsvc "vid_tube/internal/api/tweet/service"
	"vid_tube/internal/logger"
)

// TweetHandler xử lý các request liên quan đến tweet
type TweetHandler struct {
	basehdl.BaseHandler
	service *tweetsvc.TweetService
}

// NewTweetHandler tạo mới TweetHandler
func NewTweetHandler() (*TweetHandler, error) {
	service, err := tweetsvc.NewTweetService()
	if err != nil {
		return nil, err
	}
	return &TweetHandler{service: service}, nil
}

// Create đăng tweet mới
// POST /api/v1/tweets
func (h *TweetHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(tweetdto.TweetCreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.service.Create(c.Context(), ownerID, input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogCRUD("create", "tweet", tweet.ID.Hex(), c, nil)
		h.HandleCreated(c, tweet)
		return nil
	})
}

// UserTweets trả về danh sách tweet của một user
// GET /api/v1/tweets/user/:userId
func (h *TweetHandler) UserTweets(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.ParamObjectID(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.GetUserTweets(c.Context(), ownerID, h.GetViewerID(c), page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// Update sửa nội dung tweet
// PATCH /api/v1/tweets/:tweetId
func (h *TweetHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweetID, err := h.ParamObjectID(c, "tweetId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(tweetdto.TweetUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.service.Update(c.Context(), tweetID, ownerID, input)
		if err == nil {
			logger.LogCRUD("update", "tweet", tweetID.Hex(), c, nil)
		}
		h.HandleResponse(c, tweet, err)
		return nil
	})
}

// Delete xóa tweet cùng các like của nó
// DELETE /api/v1/tweets/:tweetId
func (h *TweetHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ownerID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweetID, err := h.ParamObjectID(c, "tweetId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.service.Delete(c.Context(), tweetID, ownerID)
		if err == nil {
			logger.LogCRUD("delete", "tweet", tweetID.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
