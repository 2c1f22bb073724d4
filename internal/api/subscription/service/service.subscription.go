// Package subscriptionsvc - service theo dõi kênh.
package subscriptionsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "vid_tube/internal/api/base/models"
	basesvc "vid_tube/internal/api/base/service"
	models "vid_tube/internal/api/subscription/models"
	usermodels "vid_tube/internal/api/user/models"
	"vid_tube/internal/common"
	"vid_tube/internal/global"
)

// SubscriptionService là cấu trúc chứa các phương thức liên quan đến theo dõi kênh
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[models.Subscription]
	userCRUD *basesvc.BaseServiceMongoImpl[usermodels.User]
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService() (*SubscriptionService, error) {
	subscriptionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Subscription](subscriptionCollection),
		userCRUD:             basesvc.NewBaseServiceMongo[usermodels.User](userCollection),
	}, nil
}

// Toggle đảo trạng thái theo dõi kênh của user.
// Tự theo dõi chính mình là thao tác nghiệp vụ không hợp lệ (422).
func (s *SubscriptionService) Toggle(ctx context.Context, channelID primitive.ObjectID, subscriberID primitive.ObjectID) (bool, error) {
	if channelID == subscriberID {
		return false, common.NewError(common.ErrCodeBusinessOperation, "Không thể tự theo dõi kênh của chính mình", common.StatusUnprocessableEntity, nil)
	}

	exists, err := s.userCRUD.DocumentExists(ctx, bson.M{"_id": channelID})
	if err != nil {
		return false, err
	}
	if !exists {
		return false, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy kênh", common.StatusNotFound, nil)
	}

	filter := bson.M{"channel": channelID, "subscriber": subscriberID}
	existing, err := s.FindOne(ctx, filter, nil)
	if err == nil {
		if err := s.DeleteById(ctx, existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err != common.ErrNotFound {
		return false, err
	}

	if _, err := s.InsertOne(ctx, models.Subscription{
		Channel:    channelID,
		Subscriber: subscriberID,
	}); err != nil {
		return false, err
	}
	return true, nil
}

// GetChannelSubscribers trả về danh sách subscriber của một kênh có phân trang
func (s *SubscriptionService) GetChannelSubscribers(ctx context.Context, channelID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	exists, err := s.userCRUD.DocumentExists(ctx, bson.M{"_id": channelID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy kênh", common.StatusNotFound, nil)
	}

	return s.AggregateWithPagination(ctx, BuildChannelSubscribersPipeline(channelID), page, limit)
}

// GetSubscribedChannels trả về danh sách kênh user đang theo dõi có phân trang
func (s *SubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	return s.AggregateWithPagination(ctx, BuildSubscribedChannelsPipeline(subscriberID), page, limit)
}
