package tweetsvc

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
		Tweets: "tweets",
		Likes:  "likes",
	}
}

func TestBuildUserTweetsPipeline_Anonymous(t *testing.T) {
	ownerID := primitive.NewObjectID()
	pipeline := BuildUserTweetsPipeline(ownerID, primitive.NilObjectID)
	require.Len(t, pipeline, 6)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, ownerID, match["owner"])

	// Sort hai khóa để phân trang ổn định khi createdAt trùng nhau
	sort := pipeline[1]["$sort"].(bson.D)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, sort)

	likesLookup := pipeline[3]["$lookup"].(bson.M)
	assert.Equal(t, "likes", likesLookup["from"])
	assert.Equal(t, "tweet", likesLookup["foreignField"])

	addFields := pipeline[4]["$addFields"].(bson.M)
	assert.Equal(t, false, addFields["isLiked"])
}

func TestBuildUserTweetsPipeline_Viewer(t *testing.T) {
	viewerID := primitive.NewObjectID()
	pipeline := BuildUserTweetsPipeline(primitive.NewObjectID(), viewerID)

	addFields := pipeline[4]["$addFields"].(bson.M)
	cond, ok := addFields["isLiked"].(bson.M)
	require.True(t, ok, "viewer đã đăng nhập: isLiked phải là biểu thức $cond")
	inExpr := cond["$cond"].(bson.M)["if"].(bson.M)["$in"].(bson.A)
	assert.Equal(t, viewerID, inExpr[0])

	project := pipeline[5]["$project"].(bson.M)
	assert.Equal(t, 0, project["likes"])
}
