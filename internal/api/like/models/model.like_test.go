package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mỗi constructor chỉ set đúng một trường đối tượng, hai trường còn lại giữ zero
// để omitempty loại chúng khỏi document.
func TestLikeConstructors_SingleTarget(t *testing.T) {
	target := primitive.NewObjectID()
	user := primitive.NewObjectID()

	tests := []struct {
		name string
		like Like
		set  func(Like) primitive.ObjectID
	}{
		{"video", NewVideoLike(target, user), func(l Like) primitive.ObjectID { return l.Video }},
		{"comment", NewCommentLike(target, user), func(l Like) primitive.ObjectID { return l.Comment }},
		{"tweet", NewTweetLike(target, user), func(l Like) primitive.ObjectID { return l.Tweet }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set(tt.like); got != target {
				t.Errorf("trường đối tượng = %v, muốn %v", got, target)
			}
			if tt.like.LikedBy != user {
				t.Errorf("likedBy = %v, muốn %v", tt.like.LikedBy, user)
			}

			populated := 0
			for _, id := range []primitive.ObjectID{tt.like.Video, tt.like.Comment, tt.like.Tweet} {
				if !id.IsZero() {
					populated++
				}
			}
			if populated != 1 {
				t.Errorf("like phải có đúng một trường đối tượng, có %d", populated)
			}
		})
	}
}
