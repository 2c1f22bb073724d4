// Package tweetsvc - service tweet (bài viết ngắn của kênh).
package tweetsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "vid_tube/internal/api/base/models"
	basesvc "vid_tube/internal/api/base/service"
	likemodels "vid_tube/internal/api/like/models"
	tweetdto "vid_tube/internal/api/tweet/dto"
	models "vid_tube/internal/api/tweet/models"
	usermodels "vid_tube/internal/api/user/models"
	"vid_tube/internal/common"
	"vid_tube/internal/global"
	"vid_tube/internal/logger"
)

// TweetService là cấu trúc chứa các phương thức liên quan đến tweet
type TweetService struct {
	*basesvc.BaseServiceMongoImpl[models.Tweet]
	likeCRUD *basesvc.BaseServiceMongoImpl[likemodels.Like]
	userCRUD *basesvc.BaseServiceMongoImpl[usermodels.User]
}

// NewTweetService tạo mới TweetService
func NewTweetService() (*TweetService, error) {
	tweetCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &TweetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Tweet](tweetCollection),
		likeCRUD:             basesvc.NewBaseServiceMongo[likemodels.Like](likeCollection),
		userCRUD:             basesvc.NewBaseServiceMongo[usermodels.User](userCollection),
	}, nil
}

// Create đăng một tweet mới
func (s *TweetService) Create(ctx context.Context, ownerID primitive.ObjectID, input *tweetdto.TweetCreateInput) (models.Tweet, error) {
	return s.InsertOne(ctx, models.Tweet{
		Content: input.Content,
		Owner:   ownerID,
	})
}

// GetUserTweets trả về danh sách tweet của một user có phân trang.
// User không tồn tại trả về 404.
func (s *TweetService) GetUserTweets(ctx context.Context, ownerID primitive.ObjectID, viewerID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	exists, err := s.userCRUD.DocumentExists(ctx, bson.M{"_id": ownerID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy người dùng", common.StatusNotFound, nil)
	}

	return s.AggregateWithPagination(ctx, BuildUserTweetsPipeline(ownerID, viewerID), page, limit)
}

// Update sửa nội dung tweet, chỉ chủ tweet được phép
func (s *TweetService) Update(ctx context.Context, tweetID primitive.ObjectID, ownerID primitive.ObjectID, input *tweetdto.TweetUpdateInput) (models.Tweet, error) {
	var zero models.Tweet

	tweet, err := s.FindOneById(ctx, tweetID)
	if err != nil {
		return zero, err
	}
	if tweet.Owner != ownerID {
		return zero, common.ErrForbidden
	}

	return s.UpdateById(ctx, tweetID, &basesvc.UpdateData{
		Set: map[string]interface{}{"content": input.Content},
	})
}

// Delete xóa tweet rồi dọn các like của nó, chỉ chủ tweet được phép.
// Dọn like best-effort sau khi xóa chính, lỗi được log lại chứ không rollback.
func (s *TweetService) Delete(ctx context.Context, tweetID primitive.ObjectID, ownerID primitive.ObjectID) error {
	tweet, err := s.FindOneById(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet.Owner != ownerID {
		return common.ErrForbidden
	}

	if err := s.DeleteById(ctx, tweetID); err != nil {
		return err
	}

	if _, err := s.likeCRUD.DeleteMany(ctx, bson.M{"tweet": tweetID}); err != nil {
		logger.GetErrorLogger().WithField("tweet_id", tweetID.Hex()).Warnf("Không dọn được like của tweet: %v", err)
	}
	return nil
}
