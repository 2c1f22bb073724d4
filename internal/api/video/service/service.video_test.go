package videosvc

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
	likemodels "vid_tube/internal/api/like/models"
	usermodels "vid_tube/internal/api/user/models"
	models "vid_tube/internal/api/video/models"
	"vid_tube/internal/common"
)

const mockDB = "vid_tube_test"

func newMockVideoService(mt *mtest.T) *VideoService {
	db := mt.Client.Database(mockDB)
	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Video](db.Collection("videos")),
		likeCRUD:             basesvc.NewBaseServiceMongo[likemodels.Like](db.Collection("likes")),
		commentCRUD:          basesvc.NewBaseServiceMongo[commentmodels.Comment](db.Collection("comments")),
		userCRUD:             basesvc.NewBaseServiceMongo[usermodels.User](db.Collection("users")),
	}
}

func lookupKey(doc bson.D, key string) interface{} {
	for _, e := range doc {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

func TestVideoServiceDelete_CascadeRemovesDependents(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("xóa video trước rồi dọn like và bình luận", func(mt *mtest.T) {
		svc := newMockVideoService(mt)
		videoID := primitive.NewObjectID()
		ownerID := primitive.NewObjectID()

		mt.AddMockResponses(
			// Video thuộc về đúng owner
			mtest.CreateCursorResponse(0, mockDB+".videos", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: videoID},
				{Key: "owner", Value: ownerID},
				{Key: "isPublished", Value: true},
			}),
			// Bình luận treo trên video (để dọn cả like của bình luận)
			mtest.CreateCursorResponse(0, mockDB+".comments", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "video", Value: videoID},
			}),
			// Xóa video, rồi ba bước dọn dẹp
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		require.NoError(mt, svc.Delete(context.Background(), videoID, ownerID))

		// Bản ghi chính xóa trước; sau đó không collection phụ thuộc nào bị bỏ sót:
		// like của bình luận, like của video, bình luận của video
		var deleted []string
		for {
			evt := mt.GetStartedEvent()
			if evt == nil {
				break
			}
			if evt.CommandName == "delete" {
				deleted = append(deleted, evt.Command.Lookup("delete").StringValue())
			}
		}
		assert.Equal(mt, []string{"videos", "likes", "likes", "comments"}, deleted)
	})
}

func TestVideoServiceFetchOwned_GuardOrdering(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("video không tồn tại trả 404 kể cả khi caller không phải chủ", func(mt *mtest.T) {
		svc := newMockVideoService(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mockDB+".videos", mtest.FirstBatch))

		_, err := svc.fetchOwned(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, common.ErrNotFound)
	})

	mt.Run("video tồn tại nhưng sai chủ trả 403", func(mt *mtest.T) {
		svc := newMockVideoService(mt)
		videoID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mockDB+".videos", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: videoID},
			{Key: "owner", Value: primitive.NewObjectID()},
		}))

		_, err := svc.fetchOwned(context.Background(), videoID, primitive.NewObjectID())
		assert.ErrorIs(mt, err, common.ErrForbidden)
	})
}

func TestVideoServiceGetVideoByID_AnonymousStillCountsView(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("viewer ẩn danh vẫn tăng lượt xem, không ghi lịch sử", func(mt *mtest.T) {
		svc := newMockVideoService(mt)
		videoID := primitive.NewObjectID()
		videoDoc := bson.D{
			{Key: "_id", Value: videoID},
			{Key: "owner", Value: primitive.NewObjectID()},
			{Key: "isPublished", Value: true},
		}

		mt.AddMockResponses(
			// Đọc video để kiểm tra isPublished
			mtest.CreateCursorResponse(0, mockDB+".videos", mtest.FirstBatch, videoDoc),
			// Aggregate dựng view chi tiết
			mtest.CreateCursorResponse(0, mockDB+".videos", mtest.FirstBatch, videoDoc),
			// Update tăng views rồi đọc lại
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, mockDB+".videos", mtest.FirstBatch, videoDoc),
		)

		result, err := svc.GetVideoByID(context.Background(), videoID, primitive.NilObjectID)
		require.NoError(mt, err)
		require.NotNil(mt, result)

		var updates []bson.Raw
		for {
			evt := mt.GetStartedEvent()
			if evt == nil {
				break
			}
			if evt.CommandName == "update" {
				updates = append(updates, evt.Command)
			}
		}
		// Đúng một lệnh update: tăng views; watchHistory không được đụng tới
		require.Len(mt, updates, 1, "viewer ẩn danh chỉ sinh một update tăng views")

		var cmd struct {
			Updates []struct {
				U bson.D `bson:"u"`
			} `bson:"updates"`
		}
		require.NoError(mt, bson.Unmarshal(updates[0], &cmd))
		require.Len(mt, cmd.Updates, 1)

		inc, ok := lookupKey(cmd.Updates[0].U, "$inc").(bson.D)
		require.True(mt, ok, "lệnh update phải chứa $inc")
		assert.EqualValues(mt, 1, lookupKey(inc, "views"))
	})
}
