package commentsvc

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
		Users:    "users",
		Comments: "comments",
		Likes:    "likes",
	}
}

func TestBuildVideoCommentsPipeline_Anonymous(t *testing.T) {
	videoID := primitive.NewObjectID()
	pipeline := BuildVideoCommentsPipeline(videoID, primitive.NilObjectID)
	require.Len(t, pipeline, 6)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, videoID, match["video"])

	// Sort hai khóa để phân trang ổn định khi createdAt trùng nhau
	sort := pipeline[1]["$sort"].(bson.D)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, sort)

	addFields := pipeline[4]["$addFields"].(bson.M)
	assert.Equal(t, false, addFields["isLiked"])
	assert.Equal(t, bson.M{"$size": "$likes"}, addFields["likesCount"])
}

func TestBuildVideoCommentsPipeline_Viewer(t *testing.T) {
	viewerID := primitive.NewObjectID()
	pipeline := BuildVideoCommentsPipeline(primitive.NewObjectID(), viewerID)

	addFields := pipeline[4]["$addFields"].(bson.M)
	cond, ok := addFields["isLiked"].(bson.M)
	require.True(t, ok, "viewer đã đăng nhập: isLiked phải là biểu thức $cond")
	inExpr := cond["$cond"].(bson.M)["if"].(bson.M)["$in"].(bson.A)
	assert.Equal(t, viewerID, inExpr[0])
}

func TestBuildVideoCommentsPipeline_LikesLookupOnComment(t *testing.T) {
	pipeline := BuildVideoCommentsPipeline(primitive.NewObjectID(), primitive.NilObjectID)

	likesLookup := pipeline[3]["$lookup"].(bson.M)
	assert.Equal(t, "likes", likesLookup["from"])
	assert.Equal(t, "comment", likesLookup["foreignField"])

	// Mảng likes thô không được trả về client
	project := pipeline[5]["$project"].(bson.M)
	assert.Equal(t, 0, project["likes"])
}
