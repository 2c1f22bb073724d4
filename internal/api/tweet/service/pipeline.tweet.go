package tweetsvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vid_tube/internal/api/base/service"
	"vid_tube/internal/global"
)

// BuildUserTweetsPipeline dựng pipeline danh sách tweet của một user:
// tweet mới nhất trước, kèm chủ tweet, likesCount và cờ isLiked theo viewer.
func BuildUserTweetsPipeline(ownerID primitive.ObjectID, viewerID primitive.ObjectID) []bson.M {
	var isLiked interface{}
	if viewerID.IsZero() {
		isLiked = false
	} else {
		isLiked = bson.M{
			"$cond": bson.M{
				"if":   bson.M{"$in": bson.A{viewerID, "$likes.likedBy"}},
				"then": true,
				"else": false,
			},
		}
	}

	return []bson.M{
		{"$match": bson.M{"owner": ownerID}},
		basesvc.SortStage("createdAt", -1),
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline": []bson.M{
				{"$project": bson.M{
					"username": 1,
					"fullName": 1,
					"avatar":   1,
				}},
			},
		}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "tweet",
			"as":           "likes",
		}},
		{"$addFields": bson.M{
			"owner":      bson.M{"$first": "$owner"},
			"likesCount": bson.M{"$size": "$likes"},
			"isLiked":    isLiked,
		}},
		{"$project": bson.M{"likes": 0}},
	}
}
