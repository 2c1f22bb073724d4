// Package dashboarddto - cấu trúc output cho dashboard của kênh.
package dashboarddto

// ChannelStats số liệu tổng hợp của một kênh
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalSubscribers int64 `json:"totalSubscribers"`
}
