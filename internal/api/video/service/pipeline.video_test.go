package videosvc

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
		Users:         "users",
		Videos:        "videos",
		Comments:      "comments",
		Likes:         "likes",
		Tweets:        "tweets",
		Subscriptions: "subscriptions",
		Playlists:     "playlists",
	}
}

func TestBuildVideoFeedPipeline_Default(t *testing.T) {
	pipeline := BuildVideoFeedPipeline("", primitive.NilObjectID, "", "")
	require.Len(t, pipeline, 4)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, true, match["isPublished"])
	assert.NotContains(t, match, "$or")
	assert.NotContains(t, match, "owner")

	// Sort mặc định: createdAt giảm dần, _id làm khóa phụ để trang ổn định
	sort := pipeline[1]["$sort"].(bson.D)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, sort)
}

func TestBuildVideoFeedPipeline_QueryAndOwner(t *testing.T) {
	ownerID := primitive.NewObjectID()
	pipeline := BuildVideoFeedPipeline("nấu ăn", ownerID, "views", "asc")

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, true, match["isPublished"])
	assert.Equal(t, ownerID, match["owner"])

	or := match["$or"].(bson.A)
	require.Len(t, or, 2)
	title := or[0].(bson.M)["title"].(bson.M)
	assert.Equal(t, "nấu ăn", title["$regex"])
	assert.Equal(t, "i", title["$options"])

	sort := pipeline[1]["$sort"].(bson.D)
	assert.Equal(t, bson.D{{Key: "views", Value: 1}, {Key: "_id", Value: 1}}, sort)
}

func TestBuildVideoFeedPipeline_SortWhitelist(t *testing.T) {
	// Trường sort không nằm trong whitelist phải rơi về createdAt
	pipeline := BuildVideoFeedPipeline("", primitive.NilObjectID, "password", "desc")
	sort := pipeline[1]["$sort"].(bson.D)
	assert.Equal(t, "createdAt", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
}

func TestBuildVideoDetailPipeline_AnonymousViewer(t *testing.T) {
	videoID := primitive.NewObjectID()
	pipeline := BuildVideoDetailPipeline(videoID, primitive.NilObjectID)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, videoID, match["_id"])

	// Viewer ẩn danh: isLiked là literal false, không phải biểu thức $cond
	addFields := pipeline[4]["$addFields"].(bson.M)
	assert.Equal(t, false, addFields["isLiked"])

	ownerLookup := pipeline[3]["$lookup"].(bson.M)
	assert.Equal(t, "users", ownerLookup["from"])
	subPipeline := ownerLookup["pipeline"].([]bson.M)
	subAddFields := subPipeline[1]["$addFields"].(bson.M)
	assert.Equal(t, false, subAddFields["isSubscribed"])
}

func TestBuildVideoDetailPipeline_Viewer(t *testing.T) {
	videoID := primitive.NewObjectID()
	viewerID := primitive.NewObjectID()
	pipeline := BuildVideoDetailPipeline(videoID, viewerID)

	addFields := pipeline[4]["$addFields"].(bson.M)
	cond, ok := addFields["isLiked"].(bson.M)
	require.True(t, ok, "viewer đã đăng nhập: isLiked phải là biểu thức $cond")
	inExpr := cond["$cond"].(bson.M)["if"].(bson.M)["$in"].(bson.A)
	assert.Equal(t, viewerID, inExpr[0])
	assert.Equal(t, "$likes.likedBy", inExpr[1])
}

func TestBuildVideoDetailPipeline_CommentsWithOwner(t *testing.T) {
	pipeline := BuildVideoDetailPipeline(primitive.NewObjectID(), primitive.NewObjectID())

	commentsLookup := pipeline[2]["$lookup"].(bson.M)
	assert.Equal(t, "comments", commentsLookup["from"])
	sub := commentsLookup["pipeline"].([]bson.M)
	assert.Equal(t, -1, sub[0]["$sort"].(bson.M)["createdAt"])
	ownerLookup := sub[1]["$lookup"].(bson.M)
	assert.Equal(t, "users", ownerLookup["from"])

	// Mảng likes thô bị loại, comments (đã join owner) giữ lại trong kết quả
	last := pipeline[len(pipeline)-1]["$project"].(bson.M)
	assert.Equal(t, 0, last["likes"])
	assert.NotContains(t, last, "comments")

	addFields := pipeline[4]["$addFields"].(bson.M)
	assert.Equal(t, bson.M{"$size": "$likes"}, addFields["likesCount"])
	assert.Equal(t, bson.M{"$size": "$comments"}, addFields["commentsCount"])
}
