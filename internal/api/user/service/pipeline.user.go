package usersvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vid_tube/internal/global"
)

// BuildChannelProfilePipeline dựng pipeline lấy hồ sơ kênh theo username:
// đếm subscriber, đếm kênh đang theo dõi và cờ isSubscribed theo viewer.
// Viewer ẩn danh (NilObjectID) nhận isSubscribed = false không cần stage $in.
func BuildChannelProfilePipeline(username string, viewerID primitive.ObjectID) []bson.M {
	var isSubscribed interface{}
	if viewerID.IsZero() {
		isSubscribed = false
	} else {
		isSubscribed = bson.M{
			"$cond": bson.M{
				"if":   bson.M{"$in": bson.A{viewerID, "$subscribers.subscriber"}},
				"then": true,
				"else": false,
			},
		}
	}

	return []bson.M{
		{"$match": bson.M{"username": username}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Subscriptions,
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Subscriptions,
			"localField":   "_id",
			"foreignField": "subscriber",
			"as":           "subscribedTo",
		}},
		{"$addFields": bson.M{
			"subscribersCount":          bson.M{"$size": "$subscribers"},
			"channelsSubscribedToCount": bson.M{"$size": "$subscribedTo"},
			"isSubscribed":              isSubscribed,
		}},
		{"$project": bson.M{
			"fullName":                  1,
			"username":                  1,
			"email":                     1,
			"avatar":                    1,
			"coverImage":                1,
			"subscribersCount":          1,
			"channelsSubscribedToCount": 1,
			"isSubscribed":              1,
			"createdAt":                 1,
		}},
	}
}

// BuildWatchHistoryPipeline dựng pipeline lấy lịch sử xem của user,
// mỗi video kèm thông tin chủ kênh đã rút gọn.
func BuildWatchHistoryPipeline(userID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{"_id": userID}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "watchHistory",
			"foreignField": "_id",
			"as":           "watchHistory",
			"pipeline": []bson.M{
				{"$lookup": bson.M{
					"from":         global.MongoDB_ColNames.Users,
					"localField":   "owner",
					"foreignField": "_id",
					"as":           "owner",
					"pipeline": []bson.M{
						{"$project": bson.M{
							"fullName": 1,
							"username": 1,
							"avatar":   1,
						}},
					},
				}},
				{"$addFields": bson.M{
					"owner": bson.M{"$first": "$owner"},
				}},
			},
		}},
		{"$project": bson.M{"watchHistory": 1}},
	}
}
