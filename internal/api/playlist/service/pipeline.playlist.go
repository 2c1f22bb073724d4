package playlistsvc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vid_tube/internal/api/base/service"
	"vid_tube/internal/global"
)

// BuildUserPlaylistsPipeline dựng pipeline danh sách playlist của một user,
// mỗi playlist kèm tổng số video, tổng lượt xem và thumbnail video đầu tiên.
func BuildUserPlaylistsPipeline(ownerID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{"owner": ownerID}},
		basesvc.SortStage("createdAt", -1),
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videos",
		}},
		{"$addFields": bson.M{
			"totalVideos": bson.M{"$size": "$videos"},
			"totalViews":  bson.M{"$sum": "$videos.views"},
			"thumbnail":   bson.M{"$first": "$videos.thumbnail"},
		}},
		{"$project": bson.M{"videos": 0}},
	}
}

// BuildPlaylistDetailPipeline dựng pipeline chi tiết một playlist.
// Danh sách video chỉ gồm video đang công khai, kèm chủ kênh từng video;
// totalVideos/totalViews tính trên tập đã lọc đó.
func BuildPlaylistDetailPipeline(playlistID primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{"_id": playlistID}},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videos",
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
			"owner":       bson.M{"$first": "$owner"},
			"totalVideos": bson.M{"$size": "$videos"},
			"totalViews":  bson.M{"$sum": "$videos.views"},
		}},
	}
}
