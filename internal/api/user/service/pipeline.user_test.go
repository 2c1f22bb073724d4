package usersvc

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
		Subscriptions: "subscriptions",
	}
}

func TestBuildChannelProfilePipeline_Anonymous(t *testing.T) {
	pipeline := BuildChannelProfilePipeline("chitoge", primitive.NilObjectID)
	require.Len(t, pipeline, 5)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, "chitoge", match["username"])

	addFields := pipeline[3]["$addFields"].(bson.M)
	assert.Equal(t, false, addFields["isSubscribed"])
	assert.Equal(t, bson.M{"$size": "$subscribers"}, addFields["subscribersCount"])
	assert.Equal(t, bson.M{"$size": "$subscribedTo"}, addFields["channelsSubscribedToCount"])
}

func TestBuildChannelProfilePipeline_Viewer(t *testing.T) {
	viewerID := primitive.NewObjectID()
	pipeline := BuildChannelProfilePipeline("chitoge", viewerID)

	addFields := pipeline[3]["$addFields"].(bson.M)
	cond, ok := addFields["isSubscribed"].(bson.M)
	require.True(t, ok, "viewer đã đăng nhập: isSubscribed phải là biểu thức $cond")
	inExpr := cond["$cond"].(bson.M)["if"].(bson.M)["$in"].(bson.A)
	assert.Equal(t, viewerID, inExpr[0])
	assert.Equal(t, "$subscribers.subscriber", inExpr[1])
}

func TestBuildChannelProfilePipeline_ProjectionSafe(t *testing.T) {
	pipeline := BuildChannelProfilePipeline("chitoge", primitive.NilObjectID)

	// Hồ sơ kênh không được lộ password/refreshToken/watchHistory
	project := pipeline[4]["$project"].(bson.M)
	assert.NotContains(t, project, "password")
	assert.NotContains(t, project, "refreshToken")
	assert.NotContains(t, project, "watchHistory")
	assert.Equal(t, 1, project["subscribersCount"])
}

func TestBuildWatchHistoryPipeline(t *testing.T) {
	userID := primitive.NewObjectID()
	pipeline := BuildWatchHistoryPipeline(userID)
	require.Len(t, pipeline, 3)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, userID, match["_id"])

	lookup := pipeline[1]["$lookup"].(bson.M)
	assert.Equal(t, "videos", lookup["from"])
	assert.Equal(t, "watchHistory", lookup["localField"])

	// Mỗi video trong lịch sử kèm chủ kênh rút gọn
	sub := lookup["pipeline"].([]bson.M)
	ownerLookup := sub[0]["$lookup"].(bson.M)
	assert.Equal(t, "users", ownerLookup["from"])

	project := pipeline[2]["$project"].(bson.M)
	assert.Equal(t, 1, project["watchHistory"])
}
