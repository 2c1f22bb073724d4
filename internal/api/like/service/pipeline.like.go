package likesvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vid_tube/internal/api/base/service"
	"vid_tube/internal/global"
)

// BuildLikedVideosPipeline dựng pipeline danh sách video user đã like.
// Chỉ giữ video còn tồn tại và đang công khai: $unwind loại bỏ các like
// trỏ tới video đã xóa hoặc đã ẩn. Sort đặt sau $replaceRoot nên thứ tự
// tính theo createdAt của video, không phải của bản ghi like.
func BuildLikedVideosPipeline(userID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{
			"likedBy": userID,
			"video":   bson.M{"$exists": true},
		}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "video",
			"foreignField": "_id",
			"as":           "likedVideo",
			"pipeline": []bson.M{
				{"$match": bson.M{"isPublished": true}},
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
				{"$addFields": bson.M{
					"owner": bson.M{"$first": "$owner"},
				}},
			},
		}},
		{"$unwind": "$likedVideo"},
		{"$replaceRoot": bson.M{"newRoot": "$likedVideo"}},
		basesvc.SortStage("createdAt", -1),
	}
}
