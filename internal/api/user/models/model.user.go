// Package models - model người dùng (User) thuộc domain user.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng kiêm kênh (channel).
// Mỗi user là một channel: video, tweet, subscription đều tham chiếu về user.
// WatchHistory chứa danh sách video đã xem, thêm bằng $addToSet khi xem video.
type User struct {
	ID           primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Username     string               `json:"username" bson:"username" index:"unique"`
	Email        string               `json:"email" bson:"email" index:"unique"`
	FullName     string               `json:"fullName" bson:"fullName"`
	Avatar       string               `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CoverImage   string               `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	WatchHistory []primitive.ObjectID `json:"watchHistory,omitempty" bson:"watchHistory,omitempty"`
	Password     string               `json:"-" bson:"password,omitempty"`
	RefreshToken string               `json:"-" bson:"refreshToken,omitempty"`
	CreatedAt    int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                `json:"updatedAt" bson:"updatedAt"`
}
