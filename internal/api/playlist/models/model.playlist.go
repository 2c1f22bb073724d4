// Package models - model playlist thuộc domain playlist.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist định nghĩa mô hình danh sách phát của một user.
// Videos giữ thứ tự thêm vào, không trùng lặp ($addToSet).
type Playlist struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	Videos      []primitive.ObjectID `json:"videos,omitempty" bson:"videos,omitempty"`
	Owner       primitive.ObjectID   `json:"owner" bson:"owner" index:"single"`
	CreatedAt   int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                `json:"updatedAt" bson:"updatedAt"`
}
