// Package videosvc - service video: đăng, xem, cập nhật, xóa và feed công khai.
package videosvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "vid_tube/internal/api/base/models"
	basesvc "vid_tube/internal/api/base/service"
	commentmodels "vid_tube/internal/api/comment/models"
	likemodels "vid_tube/internal/api/like/models"
	usermodels "vid_tube/internal/api/user/models"
	videodto "vid_tube/internal/api/video/dto"
	models "vid_tube/internal/api/video/models"
	"vid_tube/internal/common"
	"vid_tube/internal/global"
	"vid_tube/internal/logger"
)

// VideoService là cấu trúc chứa các phương thức liên quan đến video
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[models.Video]
	likeCRUD    *basesvc.BaseServiceMongoImpl[likemodels.Like]
	commentCRUD *basesvc.BaseServiceMongoImpl[commentmodels.Comment]
	userCRUD    *basesvc.BaseServiceMongoImpl[usermodels.User]
}

// NewVideoService tạo mới VideoService
func NewVideoService() (*VideoService, error) {
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Video](videoCollection),
		likeCRUD:             basesvc.NewBaseServiceMongo[likemodels.Like](likeCollection),
		commentCRUD:          basesvc.NewBaseServiceMongo[commentmodels.Comment](commentCollection),
		userCRUD:             basesvc.NewBaseServiceMongo[usermodels.User](userCollection),
	}, nil
}

// Publish đăng một video mới, trạng thái mặc định là công khai
func (s *VideoService) Publish(ctx context.Context, ownerID primitive.ObjectID, input *videodto.VideoPublishInput) (models.Video, error) {
	video := models.Video{
		VideoFile:   input.VideoFile,
		Thumbnail:   input.Thumbnail,
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		IsPublished: true,
		Owner:       ownerID,
	}

	created, err := s.InsertOne(ctx, video)
	if err != nil {
		return created, err
	}

	logger.GetAppLogger().WithField("video_id", created.ID.Hex()).Info("Đã đăng video mới")
	return created, nil
}

// GetVideoByID trả về chi tiết video theo góc nhìn của viewer.
// Video chưa công khai chỉ chủ sở hữu thấy được, người khác nhận 404.
// Mỗi lần fetch thành công tăng lượt xem đúng 1, kể cả viewer ẩn danh;
// riêng lịch sử xem chỉ ghi cho viewer đã đăng nhập.
func (s *VideoService) GetVideoByID(ctx context.Context, videoID primitive.ObjectID, viewerID primitive.ObjectID) (bson.M, error) {
	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if !video.IsPublished && video.Owner != viewerID {
		return nil, common.ErrNotFound
	}

	results, err := s.Aggregate(ctx, BuildVideoDetailPipeline(videoID, viewerID))
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}

	if _, err := s.UpdateById(ctx, videoID, &basesvc.UpdateData{
		Inc: map[string]interface{}{"views": 1},
	}); err != nil {
		logger.GetErrorLogger().WithField("video_id", videoID.Hex()).Warnf("Không tăng được lượt xem: %v", err)
	}

	// Lịch sử xem chỉ ghi cho viewer đã đăng nhập
	if !viewerID.IsZero() {
		if _, err := s.userCRUD.UpdateById(ctx, viewerID, &basesvc.UpdateData{
			AddToSet: map[string]interface{}{"watchHistory": videoID},
		}); err != nil {
			logger.GetErrorLogger().WithField("user_id", viewerID.Hex()).Warnf("Không ghi được lịch sử xem: %v", err)
		}
	}

	return results[0], nil
}

// fetchOwned lấy video và kiểm tra quyền sở hữu
func (s *VideoService) fetchOwned(ctx context.Context, videoID primitive.ObjectID, ownerID primitive.ObjectID) (models.Video, error) {
	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return video, err
	}
	if video.Owner != ownerID {
		return video, common.ErrForbidden
	}
	return video, nil
}

// Update cập nhật metadata video, chỉ chủ sở hữu được phép
func (s *VideoService) Update(ctx context.Context, videoID primitive.ObjectID, ownerID primitive.ObjectID, input *videodto.VideoUpdateInput) (models.Video, error) {
	var zero models.Video

	if _, err := s.fetchOwned(ctx, videoID, ownerID); err != nil {
		return zero, err
	}

	set := map[string]interface{}{}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if input.Thumbnail != "" {
		set["thumbnail"] = input.Thumbnail
	}
	if len(set) == 0 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Không có trường nào để cập nhật", common.StatusBadRequest, nil)
	}

	return s.UpdateById(ctx, videoID, &basesvc.UpdateData{Set: set})
}

// Delete xóa video rồi dọn dữ liệu phụ thuộc: like của video, comment của
// video và like của các comment đó. Xóa chính trước, dọn dẹp best-effort sau;
// bước dọn lỗi được log lại chứ không rollback (không có transaction liên collection).
func (s *VideoService) Delete(ctx context.Context, videoID primitive.ObjectID, ownerID primitive.ObjectID) error {
	if _, err := s.fetchOwned(ctx, videoID, ownerID); err != nil {
		return err
	}

	comments, err := s.commentCRUD.Find(ctx, bson.M{"video": videoID}, nil)
	if err != nil {
		return err
	}
	commentIDs := make([]primitive.ObjectID, 0, len(comments))
	for _, comment := range comments {
		commentIDs = append(commentIDs, comment.ID)
	}

	if err := s.DeleteById(ctx, videoID); err != nil {
		return err
	}

	errLog := logger.GetErrorLogger().WithField("video_id", videoID.Hex())
	if len(commentIDs) > 0 {
		if _, err := s.likeCRUD.DeleteMany(ctx, bson.M{"comment": bson.M{"$in": commentIDs}}); err != nil {
			errLog.Warnf("Không dọn được like của các bình luận: %v", err)
		}
	}
	if _, err := s.likeCRUD.DeleteMany(ctx, bson.M{"video": videoID}); err != nil {
		errLog.Warnf("Không dọn được like của video: %v", err)
	}
	if _, err := s.commentCRUD.DeleteMany(ctx, bson.M{"video": videoID}); err != nil {
		errLog.Warnf("Không dọn được bình luận của video: %v", err)
	}

	logger.GetAppLogger().WithField("video_id", videoID.Hex()).Info("Đã xóa video và dữ liệu liên quan")
	return nil
}

// TogglePublishStatus đảo trạng thái công khai của video, trả về trạng thái mới
func (s *VideoService) TogglePublishStatus(ctx context.Context, videoID primitive.ObjectID, ownerID primitive.ObjectID) (bool, error) {
	video, err := s.fetchOwned(ctx, videoID, ownerID)
	if err != nil {
		return false, err
	}

	newStatus := !video.IsPublished
	_, err = s.UpdateById(ctx, videoID, &basesvc.UpdateData{
		Set: map[string]interface{}{"isPublished": newStatus},
	})
	if err != nil {
		return false, err
	}
	return newStatus, nil
}

// ListVideos trả về feed video công khai có phân trang
func (s *VideoService) ListVideos(ctx context.Context, q *videodto.VideoListQuery, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	var ownerID primitive.ObjectID
	if q.UserID != "" {
		if !primitive.IsValidObjectID(q.UserID) {
			return nil, common.NewError(common.ErrCodeValidationFormat, "userId không đúng định dạng ObjectID", common.StatusBadRequest, nil)
		}
		ownerID, _ = primitive.ObjectIDFromHex(q.UserID)
	}

	pipeline := BuildVideoFeedPipeline(q.Query, ownerID, q.SortBy, q.SortType)
	return s.AggregateWithPagination(ctx, pipeline, page, limit)
}
