// Package likedto - các cấu trúc output cho domain like.
package likedto

// ToggleLikeResult trạng thái like sau khi toggle
type ToggleLikeResult struct {
	IsLiked bool `json:"isLiked"`
}
