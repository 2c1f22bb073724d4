// Package subscriptionhdl - HTTP handler cho domain subscription.
package subscriptionhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "vid_tube/internal/api/base/handler"
	subscriptiondto "vid_tube/internal/api/subscription/dto"
	subscriptionsvc "vid_tube/internal/api/subscription/service"
	"vid_tube/internal/logger"
)

// SubscriptionHandler xử lý các request liên quan đến theo dõi kênh
type SubscriptionHandler struct {
	basehdl.BaseHandler
	service *subscriptionsvc.SubscriptionService
}

// NewSubscriptionHandler tạo mới SubscriptionHandler
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	service, err := subscriptionsvc.NewSubscriptionService()
	if err != nil {
		return nil, err
	}
	return &SubscriptionHandler{service: service}, nil
}

// Toggle đảo trạng thái theo dõi kênh
// POST /api/v1/subscriptions/c/:channelId
func (h *SubscriptionHandler) Toggle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subscriberID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		channelID, err := h.ParamObjectID(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		subscribed, err := h.service.Toggle(c.Context(), channelID, subscriberID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAction("toggle_subscription", c, map[string]interface{}{
			"channel_id": channelID.Hex(),
			"subscribed": subscribed,
		})
		h.HandleResponse(c, subscriptiondto.ToggleSubscriptionResult{Subscribed: subscribed}, nil)
		return nil
	})
}

// ChannelSubscribers trả về danh sách subscriber của một kênh
// GET /api/v1/subscriptions/c/:channelId
func (h *SubscriptionHandler) ChannelSubscribers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := h.ParamObjectID(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.GetChannelSubscribers(c.Context(), channelID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// SubscribedChannels trả về danh sách kênh user hiện tại đang theo dõi
// GET /api/v1/subscriptions/u
func (h *SubscriptionHandler) SubscribedChannels(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subscriberID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.GetSubscribedChannels(c.Context(), subscriberID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// SubscriberChannels trả về danh sách kênh mà một user bất kỳ đang theo dõi
// GET /api/v1/subscriptions/u/c/:subscriberId
func (h *SubscriptionHandler) SubscriberChannels(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subscriberID, err := h.ParamObjectID(c, "subscriberId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.GetSubscribedChannels(c.Context(), subscriberID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}
