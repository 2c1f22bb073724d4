// Package commentdto - các cấu trúc input cho domain comment.
package commentdto

// CommentAddInput dữ liệu thêm bình luận mới
type CommentAddInput struct {
	Content string `json:"content" validate:"required,max=1000,no_xss"`
}

// CommentUpdateInput dữ liệu sửa nội dung bình luận
type CommentUpdateInput struct {
	Content string `json:"content" validate:"required,max=1000,no_xss"`
}
