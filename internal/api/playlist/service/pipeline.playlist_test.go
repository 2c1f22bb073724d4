package playlistsvc

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
		Users:     "users",
		Videos:    "videos",
		Playlists: "playlists",
	}
}

func TestBuildUserPlaylistsPipeline(t *testing.T) {
	ownerID := primitive.NewObjectID()
	pipeline := BuildUserPlaylistsPipeline(ownerID)
	require.Len(t, pipeline, 5)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, ownerID, match["owner"])

	// Sort hai khóa để phân trang ổn định khi createdAt trùng nhau
	sort := pipeline[1]["$sort"].(bson.D)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, sort)

	addFields := pipeline[3]["$addFields"].(bson.M)
	assert.Equal(t, bson.M{"$size": "$videos"}, addFields["totalVideos"])
	assert.Equal(t, bson.M{"$sum": "$videos.views"}, addFields["totalViews"])
	assert.Equal(t, bson.M{"$first": "$videos.thumbnail"}, addFields["thumbnail"])

	// Danh sách playlist không trả về mảng video đầy đủ
	project := pipeline[4]["$project"].(bson.M)
	assert.Equal(t, 0, project["videos"])
}

func TestBuildPlaylistDetailPipeline(t *testing.T) {
	playlistID := primitive.NewObjectID()
	pipeline := BuildPlaylistDetailPipeline(playlistID)
	require.Len(t, pipeline, 4)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, playlistID, match["_id"])

	// Video đã ẩn bị lọc khỏi chi tiết playlist, tổng tính trên tập đã lọc
	videosLookup := pipeline[1]["$lookup"].(bson.M)
	assert.Equal(t, "videos", videosLookup["from"])
	sub := videosLookup["pipeline"].([]bson.M)
	assert.Equal(t, true, sub[0]["$match"].(bson.M)["isPublished"])

	addFields := pipeline[3]["$addFields"].(bson.M)
	assert.Equal(t, bson.M{"$size": "$videos"}, addFields["totalVideos"])
	assert.Equal(t, bson.M{"$sum": "$videos.views"}, addFields["totalViews"])
	assert.Equal(t, bson.M{"$first": "$owner"}, addFields["owner"])
}
