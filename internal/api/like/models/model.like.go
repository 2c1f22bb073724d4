// Package models - model like thuộc domain like.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like định nghĩa mô hình lượt thích.
// Đúng một trong ba trường Video/Comment/Tweet được set, xác định loại đối tượng.
// Mỗi cặp (likedBy, đối tượng) tồn tại tối đa một document — toggle findOne rồi
// xóa hoặc tạo, uniqueness được đảm bảo ở tầng service.
type Like struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Video     primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty" index:"single"`
	Comment   primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"`
	Tweet     primitive.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty"`
	LikedBy   primitive.ObjectID `json:"likedBy" bson:"likedBy" index:"single"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// NewVideoLike tạo like trên video, chỉ trường Video được set
func NewVideoLike(videoID primitive.ObjectID, likedBy primitive.ObjectID) Like {
	return Like{Video: videoID, LikedBy: likedBy}
}

// NewCommentLike tạo like trên bình luận, chỉ trường Comment được set
func NewCommentLike(commentID primitive.ObjectID, likedBy primitive.ObjectID) Like {
	return Like{Comment: commentID, LikedBy: likedBy}
}

// NewTweetLike tạo like trên tweet, chỉ trường Tweet được set
func NewTweetLike(tweetID primitive.ObjectID, likedBy primitive.ObjectID) Like {
	return Like{Tweet: tweetID, LikedBy: likedBy}
}
