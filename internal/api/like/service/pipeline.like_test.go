package likesvc

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
		Users:  "users",
		Videos: "videos",
		Likes:  "likes",
	}
}

func TestBuildLikedVideosPipeline(t *testing.T) {
	userID := primitive.NewObjectID()
	pipeline := BuildLikedVideosPipeline(userID)
	require.Len(t, pipeline, 5)

	// Chỉ lấy like của video, bỏ qua like của comment/tweet
	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, userID, match["likedBy"])
	assert.Equal(t, bson.M{"$exists": true}, match["video"])

	lookup := pipeline[1]["$lookup"].(bson.M)
	assert.Equal(t, "videos", lookup["from"])
	assert.Equal(t, "likedVideo", lookup["as"])

	// Video đã ẩn không xuất hiện trong danh sách đã like
	sub := lookup["pipeline"].([]bson.M)
	subMatch := sub[0]["$match"].(bson.M)
	assert.Equal(t, true, subMatch["isPublished"])
}

func TestBuildLikedVideosPipeline_UnwindDropsDeadLikes(t *testing.T) {
	pipeline := BuildLikedVideosPipeline(primitive.NewObjectID())

	// $unwind không preserveNullAndEmptyArrays: like trỏ tới video đã xóa bị loại
	assert.Equal(t, "$likedVideo", pipeline[2]["$unwind"])
	replaceRoot := pipeline[3]["$replaceRoot"].(bson.M)
	assert.Equal(t, "$likedVideo", replaceRoot["newRoot"])
}

func TestBuildLikedVideosPipeline_SortsByVideoCreatedAt(t *testing.T) {
	pipeline := BuildLikedVideosPipeline(primitive.NewObjectID())

	// Sort nằm sau $replaceRoot: thứ tự theo createdAt của video, không phải của like
	sort := pipeline[4]["$sort"].(bson.D)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, sort)
}
