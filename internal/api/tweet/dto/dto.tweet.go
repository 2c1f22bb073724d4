// Package tweetdto - các cấu trúc input cho domain tweet.
package tweetdto

// TweetCreateInput dữ liệu đăng tweet mới
type TweetCreateInput struct {
	Content string `json:"content" validate:"required,max=500,no_xss"`
}

// TweetUpdateInput dữ liệu sửa nội dung tweet
type TweetUpdateInput struct {
	Content string `json:"content" validate:"required,max=500,no_xss"`
}
