package videosvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vid_tube/internal/api/base/service"
	"vid_tube/internal/global"
)

// Các trường được phép sort trong feed, tránh client sort theo trường tùy ý
var allowedSortFields = map[string]bool{
	"createdAt": true,
	"views":     true,
	"duration":  true,
	"title":     true,
}

// BuildVideoFeedPipeline dựng pipeline feed video công khai.
// Chỉ trả về video isPublished = true, kể cả khi lọc theo kênh của chính viewer.
func BuildVideoFeedPipeline(query string, ownerID primitive.ObjectID, sortBy string, sortType string) []bson.M {
	match := bson.M{"isPublished": true}

	if query != "" {
		match["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": query, "$options": "i"}},
		}
	}
	if !ownerID.IsZero() {
		match["owner"] = ownerID
	}

	if !allowedSortFields[sortBy] {
		sortBy = "createdAt"
	}
	sortDir := -1
	if sortType == "asc" {
		sortDir = 1
	}

	return []bson.M{
		{"$match": match},
		basesvc.SortStage(sortBy, sortDir),
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
	}
}

// BuildVideoDetailPipeline dựng pipeline chi tiết một video:
// chủ kênh kèm subscribersCount/isSubscribed, likesCount/isLiked tính theo góc
// nhìn của viewer, danh sách bình luận kèm chủ bình luận và commentsCount.
// Viewer ẩn danh nhận cả hai flag là false.
func BuildVideoDetailPipeline(videoID primitive.ObjectID, viewerID primitive.ObjectID) []bson.M {
	var isLiked, isSubscribed interface{}
	if viewerID.IsZero() {
		isLiked = false
		isSubscribed = false
	} else {
		isLiked = bson.M{
			"$cond": bson.M{
				"if":   bson.M{"$in": bson.A{viewerID, "$likes.likedBy"}},
				"then": true,
				"else": false,
			},
		}
		isSubscribed = bson.M{
			"$cond": bson.M{
				"if":   bson.M{"$in": bson.A{viewerID, "$subscribers.subscriber"}},
				"then": true,
				"else": false,
			},
		}
	}

	return []bson.M{
		{"$match": bson.M{"_id": videoID}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
		}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Comments,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "comments",
			"pipeline": []bson.M{
				{"$sort": bson.M{"createdAt": -1}},
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
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline": []bson.M{
				{"$lookup": bson.M{
					"from":         global.MongoDB_ColNames.Subscriptions,
					"localField":   "_id",
					"foreignField": "channel",
					"as":           "subscribers",
				}},
				{"$addFields": bson.M{
					"subscribersCount": bson.M{"$size": "$subscribers"},
					"isSubscribed":     isSubscribed,
				}},
				{"$project": bson.M{
					"username":         1,
					"fullName":         1,
					"avatar":           1,
					"subscribersCount": 1,
					"isSubscribed":     1,
				}},
			},
		}},
		{"$addFields": bson.M{
			"likesCount":    bson.M{"$size": "$likes"},
			"commentsCount": bson.M{"$size": "$comments"},
			"isLiked":       isLiked,
			"owner":         bson.M{"$first": "$owner"},
		}},
		{"$project": bson.M{
			"likes": 0,
		}},
	}
}
