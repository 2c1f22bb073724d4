// Package commentsvc - service bình luận video.
package commentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "vid_tube/internal/api/base/models"
	basesvc "vid_tube/internal/api/base/service"
	commentdto "vid_tube/internal/api/comment/dto"
	models "vid_tube/internal/api/comment/models"
	likemodels "vid_tube/internal/api/like/models"
	videomodels "vid_tube/internal/api/video/models"
	"vid_tube/internal/common"
	"vid_tube/internal/global"
	"vid_tube/internal/logger"
)

// CommentService là cấu trúc chứa các phương thức liên quan đến bình luận
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[models.Comment]
	videoCRUD *basesvc.BaseServiceMongoImpl[videomodels.Video]
	likeCRUD  *basesvc.BaseServiceMongoImpl[likemodels.Like]
}

// NewCommentService tạo mới CommentService
func NewCommentService() (*CommentService, error) {
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}

	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Comment](commentCollection),
		videoCRUD:            basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
		likeCRUD:             basesvc.NewBaseServiceMongo[likemodels.Like](likeCollection),
	}, nil
}

// GetVideoComments trả về danh sách bình luận của video có phân trang.
// Video không tồn tại trả về 404 thay vì danh sách rỗng.
func (s *CommentService) GetVideoComments(ctx context.Context, videoID primitive.ObjectID, viewerID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	exists, err := s.videoCRUD.DocumentExists(ctx, bson.M{"_id": videoID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy video", common.StatusNotFound, nil)
	}

	pipeline := BuildVideoCommentsPipeline(videoID, viewerID)
	return s.AggregateWithPagination(ctx, pipeline, page, limit)
}

// Add thêm bình luận mới vào một video đang tồn tại
func (s *CommentService) Add(ctx context.Context, videoID primitive.ObjectID, ownerID primitive.ObjectID, input *commentdto.CommentAddInput) (models.Comment, error) {
	var zero models.Comment

	exists, err := s.videoCRUD.DocumentExists(ctx, bson.M{"_id": videoID})
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy video", common.StatusNotFound, nil)
	}

	return s.InsertOne(ctx, models.Comment{
		Content: input.Content,
		Video:   videoID,
		Owner:   ownerID,
	})
}

// Update sửa nội dung bình luận, chỉ chủ bình luận được phép
func (s *CommentService) Update(ctx context.Context, commentID primitive.ObjectID, ownerID primitive.ObjectID, input *commentdto.CommentUpdateInput) (models.Comment, error) {
	var zero models.Comment

	comment, err := s.FindOneById(ctx, commentID)
	if err != nil {
		return zero, err
	}
	if comment.Owner != ownerID {
		return zero, common.ErrForbidden
	}

	return s.UpdateById(ctx, commentID, &basesvc.UpdateData{
		Set: map[string]interface{}{"content": input.Content},
	})
}

// Delete xóa bình luận rồi dọn các like của nó, chỉ chủ bình luận được phép.
// Dọn like best-effort sau khi xóa chính, lỗi được log lại chứ không rollback.
func (s *CommentService) Delete(ctx context.Context, commentID primitive.ObjectID, ownerID primitive.ObjectID) error {
	comment, err := s.FindOneById(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.Owner != ownerID {
		return common.ErrForbidden
	}

	if err := s.DeleteById(ctx, commentID); err != nil {
		return err
	}

	if _, err := s.likeCRUD.DeleteMany(ctx, bson.M{"comment": commentID}); err != nil {
		logger.GetErrorLogger().WithField("comment_id", commentID.Hex()).Warnf("Không dọn được like của bình luận: %v", err)
	}
	return nil
}
