// Package likesvc - service like cho video, bình luận và tweet.
package likesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "vid_tube/internal/api/base/models"
	basesvc "vid_tube/internal/api/base/service"
	commentmodels "vid_tube/internal/api/comment/models"
	models "vid_tube/internal/api/like/models"
	tweetmodels "vid_tube/internal/api/tweet/models"
	videomodels "vid_tube/internal/api/video/models"
	"vid_tube/internal/common"
	"vid_tube/internal/global"
)

// LikeService là cấu trúc chứa các phương thức liên quan đến like
type LikeService struct {
	*basesvc.BaseServiceMongoImpl[models.Like]
	videoCRUD   *basesvc.BaseServiceMongoImpl[videomodels.Video]
	commentCRUD *basesvc.BaseServiceMongoImpl[commentmodels.Comment]
	tweetCRUD   *basesvc.BaseServiceMongoImpl[tweetmodels.Tweet]
}

// NewLikeService tạo mới LikeService
func NewLikeService() (*LikeService, error) {
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	tweetCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}

	return &LikeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Like](likeCollection),
		videoCRUD:            basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
		commentCRUD:          basesvc.NewBaseServiceMongo[commentmodels.Comment](commentCollection),
		tweetCRUD:            basesvc.NewBaseServiceMongo[tweetmodels.Tweet](tweetCollection),
	}, nil
}

// toggle xóa like nếu đã tồn tại, tạo mới nếu chưa. Trả về trạng thái sau toggle.
func (s *LikeService) toggle(ctx context.Context, filter bson.M, like models.Like) (bool, error) {
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

	if _, err := s.InsertOne(ctx, like); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleVideoLike toggle like của user trên một video
func (s *LikeService) ToggleVideoLike(ctx context.Context, videoID primitive.ObjectID, userID primitive.ObjectID) (bool, error) {
	exists, err := s.videoCRUD.DocumentExists(ctx, bson.M{"_id": videoID})
	if err != nil {
		return false, err
	}
	if !exists {
		return false, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy video", common.StatusNotFound, nil)
	}

	return s.toggle(ctx,
		bson.M{"video": videoID, "likedBy": userID},
		models.NewVideoLike(videoID, userID),
	)
}

// ToggleCommentLike toggle like của user trên một bình luận
func (s *LikeService) ToggleCommentLike(ctx context.Context, commentID primitive.ObjectID, userID primitive.ObjectID) (bool, error) {
	exists, err := s.commentCRUD.DocumentExists(ctx, bson.M{"_id": commentID})
	if err != nil {
		return false, err
	}
	if !exists {
		return false, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy bình luận", common.StatusNotFound, nil)
	}

	return s.toggle(ctx,
		bson.M{"comment": commentID, "likedBy": userID},
		models.NewCommentLike(commentID, userID),
	)
}

// ToggleTweetLike toggle like của user trên một tweet
func (s *LikeService) ToggleTweetLike(ctx context.Context, tweetID primitive.ObjectID, userID primitive.ObjectID) (bool, error) {
	exists, err := s.tweetCRUD.DocumentExists(ctx, bson.M{"_id": tweetID})
	if err != nil {
		return false, err
	}
	if !exists {
		return false, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy tweet", common.StatusNotFound, nil)
	}

	return s.toggle(ctx,
		bson.M{"tweet": tweetID, "likedBy": userID},
		models.NewTweetLike(tweetID, userID),
	)
}

// GetLikedVideos trả về danh sách video đã like của user, chỉ gồm video còn công khai
func (s *LikeService) GetLikedVideos(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	return s.AggregateWithPagination(ctx, BuildLikedVideosPipeline(userID), page, limit)
}
