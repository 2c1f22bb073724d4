// Package playlistsvc - service playlist video.
package playlistsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vid_tube/internal/api/base/service"
	playlistdto "vid_tube/internal/api/playlist/dto"
	models "vid_tube/internal/api/playlist/models"
	videomodels "vid_tube/internal/api/video/models"
	"vid_tube/internal/common"
	"vid_tube/internal/global"
)

// PlaylistService là cấu trúc chứa các phương thức liên quan đến playlist
type PlaylistService struct {
	*basesvc.BaseServiceMongoImpl[models.Playlist]
	videoCRUD *basesvc.BaseServiceMongoImpl[videomodels.Video]
}

// NewPlaylistService tạo mới PlaylistService
func NewPlaylistService() (*PlaylistService, error) {
	playlistCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &PlaylistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Playlist](playlistCollection),
		videoCRUD:            basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
	}, nil
}

// Create tạo playlist mới, danh sách video khởi tạo rỗng
func (s *PlaylistService) Create(ctx context.Context, ownerID primitive.ObjectID, input *playlistdto.PlaylistCreateInput) (models.Playlist, error) {
	return s.InsertOne(ctx, models.Playlist{
		Name:        input.Name,
		Description: input.Description,
		Videos:      []primitive.ObjectID{},
		Owner:       ownerID,
	})
}

// GetUserPlaylists trả về danh sách playlist của một user kèm tổng video/lượt xem
func (s *PlaylistService) GetUserPlaylists(ctx context.Context, ownerID primitive.ObjectID) ([]bson.M, error) {
	return s.Aggregate(ctx, BuildUserPlaylistsPipeline(ownerID))
}

// GetByID trả về chi tiết playlist, danh sách video chỉ gồm video đang công khai
func (s *PlaylistService) GetByID(ctx context.Context, playlistID primitive.ObjectID) (bson.M, error) {
	results, err := s.Aggregate(ctx, BuildPlaylistDetailPipeline(playlistID))
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy playlist", common.StatusNotFound, nil)
	}
	return results[0], nil
}

// fetchOwned lấy playlist và kiểm tra quyền sở hữu
func (s *PlaylistService) fetchOwned(ctx context.Context, playlistID primitive.ObjectID, ownerID primitive.ObjectID) (models.Playlist, error) {
	playlist, err := s.FindOneById(ctx, playlistID)
	if err != nil {
		return playlist, err
	}
	if playlist.Owner != ownerID {
		return playlist, common.ErrForbidden
	}
	return playlist, nil
}

// AddVideo thêm video vào playlist ($addToSet, không trùng lặp), chỉ chủ playlist được phép
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID primitive.ObjectID, ownerID primitive.ObjectID) (models.Playlist, error) {
	var zero models.Playlist

	if _, err := s.fetchOwned(ctx, playlistID, ownerID); err != nil {
		return zero, err
	}

	exists, err := s.videoCRUD.DocumentExists(ctx, bson.M{"_id": videoID})
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy video", common.StatusNotFound, nil)
	}

	return s.UpdateById(ctx, playlistID, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"videos": videoID},
	})
}

// RemoveVideo gỡ video khỏi playlist, chỉ chủ playlist được phép
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID primitive.ObjectID, ownerID primitive.ObjectID) (models.Playlist, error) {
	var zero models.Playlist

	if _, err := s.fetchOwned(ctx, playlistID, ownerID); err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, playlistID, &basesvc.UpdateData{
		Pull: map[string]interface{}{"videos": videoID},
	})
}

// Update cập nhật tên/mô tả playlist, chỉ chủ playlist được phép
func (s *PlaylistService) Update(ctx context.Context, playlistID primitive.ObjectID, ownerID primitive.ObjectID, input *playlistdto.PlaylistUpdateInput) (models.Playlist, error) {
	var zero models.Playlist

	if _, err := s.fetchOwned(ctx, playlistID, ownerID); err != nil {
		return zero, err
	}

	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if len(set) == 0 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Không có trường nào để cập nhật", common.StatusBadRequest, nil)
	}

	return s.UpdateById(ctx, playlistID, &basesvc.UpdateData{Set: set})
}

// Delete xóa playlist, chỉ chủ playlist được phép. Video trong playlist không bị ảnh hưởng.
func (s *PlaylistService) Delete(ctx context.Context, playlistID primitive.ObjectID, ownerID primitive.ObjectID) error {
	if _, err := s.fetchOwned(ctx, playlistID, ownerID); err != nil {
		return err
	}
	return s.DeleteById(ctx, playlistID)
}
