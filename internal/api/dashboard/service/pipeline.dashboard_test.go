package dashboardsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vid_tube/internal/global"
)

func init() {
	global.MongoDB_ColNames = global.ColNames{
		Videos: "videos",
		Likes:  "likes",
	}
}

func TestBuildChannelStatsPipeline(t *testing.T) {
	channelID := primitive.NewObjectID()
	pipeline := BuildChannelStatsPipeline(channelID)
	require.Len(t, pipeline, 3)

	// Thống kê tính trên toàn bộ video của kênh, không lọc isPublished
	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, channelID, match["owner"])
	assert.NotContains(t, match, "isPublished")

	group := pipeline[2]["$group"].(bson.M)
	assert.Nil(t, group["_id"])
	assert.Equal(t, bson.M{"$sum": 1}, group["totalVideos"])
	assert.Equal(t, bson.M{"$sum": "$views"}, group["totalViews"])
	assert.Equal(t, bson.M{"$sum": bson.M{"$size": "$likes"}}, group["totalLikes"])
}

func TestBuildChannelVideosPipeline(t *testing.T) {
	channelID := primitive.NewObjectID()
	pipeline := BuildChannelVideosPipeline(channelID)
	require.Len(t, pipeline, 5)

	// Dashboard hiển thị cả video chưa công khai của chính chủ kênh
	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, channelID, match["owner"])
	assert.NotContains(t, match, "isPublished")

	// Sort hai khóa để phân trang ổn định khi createdAt trùng nhau
	sort := pipeline[1]["$sort"].(bson.D)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, sort)

	addFields := pipeline[3]["$addFields"].(bson.M)
	assert.Equal(t, bson.M{"$size": "$likes"}, addFields["likesCount"])

	project := pipeline[4]["$project"].(bson.M)
	assert.Equal(t, 0, project["likes"])
}

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(5), toInt64(int32(5)))
	assert.Equal(t, int64(7), toInt64(int64(7)))
	assert.Equal(t, int64(9), toInt64(float64(9)))
	assert.Equal(t, int64(0), toInt64(nil))
	assert.Equal(t, int64(0), toInt64("không phải số"))
}
