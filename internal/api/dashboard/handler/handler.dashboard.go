// Package dashboardhdl - HTTP handler cho dashboard của kênh.
package dashboardhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "vid_tube/internal/api/base/handler"
	dashboardsvc "vid_tube/internal/api/dashboard/service"
)

// DashboardHandler xử lý các request dashboard của chủ kênh
type DashboardHandler struct {
	basehdl.BaseHandler
	service *dashboardsvc.DashboardService
}

// NewDashboardHandler tạo mới DashboardHandler
func NewDashboardHandler() (*DashboardHandler, error) {
	service, err := dashboardsvc.NewDashboardService()
	if err != nil {
		return nil, err
	}
	return &DashboardHandler{service: service}, nil
}

// Stats trả về số liệu tổng hợp kênh của user hiện tại
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		stats, err := h.service.GetChannelStats(c.Context(), channelID)
		h.HandleResponse(c, stats, err)
		return nil
	})
}

// Videos trả về toàn bộ video kênh của user hiện tại, kể cả chưa công khai
// GET /api/v1/dashboard/videos
func (h *DashboardHandler) Videos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.service.GetChannelVideos(c.Context(), channelID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}
