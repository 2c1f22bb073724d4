package dashboardsvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vid_tube/internal/api/base/service"
	"vid_tube/internal/global"
)

// BuildChannelStatsPipeline dựng pipeline tổng hợp số liệu video của kênh:
// tổng video, tổng lượt xem và tổng like trên toàn bộ video (kể cả chưa công khai).
func BuildChannelStatsPipeline(channelID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{"owner": channelID}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
		}},
		{"$group": bson.M{
			"_id":         nil,
			"totalVideos": bson.M{"$sum": 1},
			"totalViews":  bson.M{"$sum": "$views"},
			"totalLikes":  bson.M{"$sum": bson.M{"$size": "$likes"}},
		}},
	}
}

// BuildChannelVideosPipeline dựng pipeline danh sách video của kênh cho dashboard.
// Khác feed công khai: bao gồm cả video chưa công khai, kèm likesCount mỗi video.
func BuildChannelVideosPipeline(channelID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{"owner": channelID}},
		basesvc.SortStage("createdAt", -1),
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
		}},
		{"$addFields": bson.M{
			"likesCount": bson.M{"$size": "$likes"},
		}},
		{"$project": bson.M{"likes": 0}},
	}
}
