// Package dashboardsvc - service tổng hợp số liệu kênh cho chủ kênh.
package dashboardsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "vid_tube/internal/api/base/models"
	basesvc "vid_tube/internal/api/base/service"
	dashboarddto "vid_tube/internal/api/dashboard/dto"
	subscriptionmodels "vid_tube/internal/api/subscription/models"
	videomodels "vid_tube/internal/api/video/models"
	"vid_tube/internal/common"
	"vid_tube/internal/global"
)

// DashboardService là cấu trúc chứa các phương thức tổng hợp số liệu kênh
type DashboardService struct {
	videoCRUD        *basesvc.BaseServiceMongoImpl[videomodels.Video]
	subscriptionCRUD *basesvc.BaseServiceMongoImpl[subscriptionmodels.Subscription]
}

// NewDashboardService tạo mới DashboardService
func NewDashboardService() (*DashboardService, error) {
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	subscriptionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}

	return &DashboardService{
		videoCRUD:        basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
		subscriptionCRUD: basesvc.NewBaseServiceMongo[subscriptionmodels.Subscription](subscriptionCollection),
	}, nil
}

// toInt64 đọc số từ kết quả aggregation, driver có thể trả int32/int64/float64
func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	}
	return 0
}

// GetChannelStats trả về số liệu tổng hợp của kênh.
// Kênh chưa có video hay subscriber nào nhận toàn số 0 thay vì lỗi.
func (s *DashboardService) GetChannelStats(ctx context.Context, channelID primitive.ObjectID) (dashboarddto.ChannelStats, error) {
	stats := dashboarddto.ChannelStats{}

	results, err := s.videoCRUD.Aggregate(ctx, BuildChannelStatsPipeline(channelID))
	if err != nil {
		return stats, err
	}
	if len(results) > 0 {
		stats.TotalVideos = toInt64(results[0]["totalVideos"])
		stats.TotalViews = toInt64(results[0]["totalViews"])
		stats.TotalLikes = toInt64(results[0]["totalLikes"])
	}

	subscribers, err := s.subscriptionCRUD.CountDocuments(ctx, bson.M{"channel": channelID})
	if err != nil {
		return stats, err
	}
	stats.TotalSubscribers = subscribers

	return stats, nil
}

// GetChannelVideos trả về toàn bộ video của kênh (kể cả chưa công khai) có phân trang
func (s *DashboardService) GetChannelVideos(ctx context.Context, channelID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	return s.videoCRUD.AggregateWithPagination(ctx, BuildChannelVideosPipeline(channelID), page, limit)
}
