package subscriptionsvc

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

func TestBuildChannelSubscribersPipeline(t *testing.T) {
	channelID := primitive.NewObjectID()
	pipeline := BuildChannelSubscribersPipeline(channelID)
	require.Len(t, pipeline, 5)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, channelID, match["channel"])

	// Pipeline phân trang phải có $sort ổn định trước khi $skip/$limit
	sort := pipeline[1]["$sort"].(bson.D)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, sort)

	lookup := pipeline[2]["$lookup"].(bson.M)
	assert.Equal(t, "users", lookup["from"])
	assert.Equal(t, "subscriber", lookup["localField"])

	// Cờ kênh theo dõi ngược lại subscriber tính bằng $in trên channelID
	sub := lookup["pipeline"].([]bson.M)
	addFields := sub[1]["$addFields"].(bson.M)
	cond := addFields["subscribedToSubscriber"].(bson.M)["$cond"].(bson.M)
	inExpr := cond["if"].(bson.M)["$in"].(bson.A)
	assert.Equal(t, channelID, inExpr[0])

	assert.Equal(t, "$subscriber", pipeline[3]["$unwind"])
}

func TestBuildSubscribedChannelsPipeline(t *testing.T) {
	subscriberID := primitive.NewObjectID()
	pipeline := BuildSubscribedChannelsPipeline(subscriberID)
	require.Len(t, pipeline, 5)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, subscriberID, match["subscriber"])

	// Pipeline phân trang phải có $sort ổn định trước khi $skip/$limit
	sort := pipeline[1]["$sort"].(bson.D)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, sort)

	lookup := pipeline[2]["$lookup"].(bson.M)
	assert.Equal(t, "channel", lookup["localField"])

	// latestVideo: chỉ video công khai mới nhất của kênh
	sub := lookup["pipeline"].([]bson.M)
	videosLookup := sub[0]["$lookup"].(bson.M)
	assert.Equal(t, "videos", videosLookup["from"])
	videosSub := videosLookup["pipeline"].([]bson.M)
	assert.Equal(t, true, videosSub[0]["$match"].(bson.M)["isPublished"])
	assert.Equal(t, -1, videosSub[1]["$sort"].(bson.M)["createdAt"])
	assert.Equal(t, 1, videosSub[2]["$limit"])

	addFields := sub[1]["$addFields"].(bson.M)
	assert.Equal(t, bson.M{"$first": "$videos"}, addFields["latestVideo"])
}
