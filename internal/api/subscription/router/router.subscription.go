// Package subscriptionrouter đăng ký route cho domain subscription.
package subscriptionrouter

import (
	"github.com/gofiber/fiber/v3"

	"vid_tube/internal/api/middleware"
	"vid_tube/internal/api/router"
	subscriptionhdl "vid_tube/internal/api/subscription/handler"
)

// Register đăng ký các route theo dõi kênh vào group /api/v1.
// Các route đọc công khai với viewer context tùy chọn,
// Toggle và danh sách kênh của chính mình tự chặn 401 qua RequireUserID.
func Register(v1 fiber.Router, r *router.Router) error {
	h, err := subscriptionhdl.NewSubscriptionHandler()
	if err != nil {
		return err
	}

	subscriptions := v1.Group("/subscriptions")
	subscriptions.Use(middleware.OptionalAuthMiddleware())

	subscriptions.Post("/c/:channelId", h.Toggle)
	subscriptions.Get("/c/:channelId", h.ChannelSubscribers)
	subscriptions.Get("/u", h.SubscribedChannels)
	subscriptions.Get("/u/c/:subscriberId", h.SubscriberChannels)

	return nil
}
