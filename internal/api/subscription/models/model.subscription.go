// Package models - model subscription thuộc domain subscription.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription định nghĩa quan hệ theo dõi: Subscriber theo dõi kênh Channel.
// Cả hai trường đều là user ID. Tự theo dõi chính mình bị từ chối ở tầng service.
type Subscription struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber" index:"single;compound:subscriber_channel_unique"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel" index:"single;compound:subscriber_channel_unique"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
