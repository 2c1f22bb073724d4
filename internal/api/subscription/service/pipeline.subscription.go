package subscriptionsvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vid_tube/internal/api/base/service"
	"vid_tube/internal/global"
)

// BuildChannelSubscribersPipeline dựng pipeline danh sách subscriber của một kênh.
// Mỗi subscriber kèm subscribersCount của chính họ và cờ subscribedToSubscriber:
// kênh đang xem có theo dõi ngược lại subscriber đó không.
// Subscriber mới nhất trước, thứ tự ổn định để phân trang.
func BuildChannelSubscribersPipeline(channelID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{"channel": channelID}},
		basesvc.SortStage("createdAt", -1),
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "subscriber",
			"foreignField": "_id",
			"as":           "subscriber",
			"pipeline": []bson.M{
				{"$lookup": bson.M{
					"from":         global.MongoDB_ColNames.Subscriptions,
					"localField":   "_id",
					"foreignField": "channel",
					"as":           "subscribedToSubscriber",
				}},
				{"$addFields": bson.M{
					"subscribedToSubscriber": bson.M{
						"$cond": bson.M{
							"if":   bson.M{"$in": bson.A{channelID, "$subscribedToSubscriber.subscriber"}},
							"then": true,
							"else": false,
						},
					},
					"subscribersCount": bson.M{"$size": "$subscribedToSubscriber"},
				}},
				{"$project": bson.M{
					"username":               1,
					"fullName":               1,
					"avatar":                 1,
					"subscribedToSubscriber": 1,
					"subscribersCount":       1,
				}},
			},
		}},
		{"$unwind": "$subscriber"},
		{"$project": bson.M{"subscriber": 1, "createdAt": 1}},
	}
}

// BuildSubscribedChannelsPipeline dựng pipeline danh sách kênh user đang theo dõi,
// mỗi kênh kèm video mới nhất của kênh đó. Kênh theo dõi gần nhất trước.
func BuildSubscribedChannelsPipeline(subscriberID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{"subscriber": subscriberID}},
		basesvc.SortStage("createdAt", -1),
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "channel",
			"foreignField": "_id",
			"as":           "channel",
			"pipeline": []bson.M{
				{"$lookup": bson.M{
					"from":         global.MongoDB_ColNames.Videos,
					"localField":   "_id",
					"foreignField": "owner",
					"as":           "videos",
					"pipeline": []bson.M{
						{"$match": bson.M{"isPublished": true}},
						{"$sort": bson.M{"createdAt": -1}},
						{"$limit": 1},
					},
				}},
				{"$addFields": bson.M{
					"latestVideo": bson.M{"$first": "$videos"},
				}},
				{"$project": bson.M{
					"username":    1,
					"fullName":    1,
					"avatar":      1,
					"latestVideo": 1,
				}},
			},
		}},
		{"$unwind": "$channel"},
		{"$project": bson.M{"channel": 1, "createdAt": 1}},
	}
}
