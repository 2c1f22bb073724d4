package likesvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	basesvc "vid_tube/internal/api/base/service"
	commentmodels "vid_tube/internal/api/comment/models"
	models "vid_tube/internal/api/like/models"
	tweetmodels "vid_tube/internal/api/tweet/models"
	videomodels "vid_tube/internal/api/video/models"
	"vid_tube/internal/common"
)

const mockDB = "vid_tube_test"

func newMockLikeService(mt *mtest.T) *LikeService {
	db := mt.Client.Database(mockDB)
	return &LikeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Like](db.Collection("likes")),
		videoCRUD:            basesvc.NewBaseServiceMongo[videomodels.Video](db.Collection("videos")),
		commentCRUD:          basesvc.NewBaseServiceMongo[commentmodels.Comment](db.Collection("comments")),
		tweetCRUD:            basesvc.NewBaseServiceMongo[tweetmodels.Tweet](db.Collection("tweets")),
	}
}

func TestLikeServiceToggleVideoLike(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("chưa like thì tạo mới", func(mt *mtest.T) {
		svc := newMockLikeService(mt)
		videoID := primitive.NewObjectID()
		userID := primitive.NewObjectID()

		mt.AddMockResponses(
			// Đếm video: tồn tại
			mtest.CreateCursorResponse(0, mockDB+".videos", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			// Tìm like theo cặp (video, likedBy): chưa có
			mtest.CreateCursorResponse(0, mockDB+".likes", mtest.FirstBatch),
			// Insert like mới rồi đọc lại bản ghi vừa tạo
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, mockDB+".likes", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "video", Value: videoID},
				{Key: "likedBy", Value: userID},
			}),
		)

		liked, err := svc.ToggleVideoLike(context.Background(), videoID, userID)
		require.NoError(mt, err)
		assert.True(mt, liked, "toggle lần đầu phải trả về trạng thái đã like")
	})

	mt.Run("đã like thì xóa thay vì tạo bản ghi thứ hai", func(mt *mtest.T) {
		svc := newMockLikeService(mt)
		videoID := primitive.NewObjectID()
		userID := primitive.NewObjectID()
		likeID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, mockDB+".videos", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			// Cặp (video, likedBy) đã tồn tại
			mtest.CreateCursorResponse(0, mockDB+".likes", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: likeID},
				{Key: "video", Value: videoID},
				{Key: "likedBy", Value: userID},
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		liked, err := svc.ToggleVideoLike(context.Background(), videoID, userID)
		require.NoError(mt, err)
		assert.False(mt, liked, "toggle lần hai phải trả về trạng thái đã bỏ like")

		// Mỗi cặp (user, video) chỉ giữ tối đa một like: lệnh cuối là delete, không insert
		var commands []string
		for {
			evt := mt.GetStartedEvent()
			if evt == nil {
				break
			}
			commands = append(commands, evt.CommandName)
		}
		require.NotEmpty(mt, commands)
		assert.Equal(mt, "delete", commands[len(commands)-1])
		assert.NotContains(mt, commands, "insert")
	})

	mt.Run("video không tồn tại trả 404", func(mt *mtest.T) {
		svc := newMockLikeService(mt)

		// Đếm video: không có bản ghi nào
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mockDB+".videos", mtest.FirstBatch))

		_, err := svc.ToggleVideoLike(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
		require.Error(mt, err)
		assert.Equal(mt, common.StatusNotFound, common.StatusCodeOf(err))
	})
}
