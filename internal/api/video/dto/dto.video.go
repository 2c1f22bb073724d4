// Package videodto - các cấu trúc input cho domain video.
package videodto

// VideoPublishInput dữ liệu đăng video mới (URL file đã upload sẵn)
type VideoPublishInput struct {
	VideoFile   string  `json:"videoFile" validate:"required,url"`
	Thumbnail   string  `json:"thumbnail" validate:"required,url"`
	Title       string  `json:"title" validate:"required,max=200,no_xss"`
	Description string  `json:"description" validate:"omitempty,max=2000,no_xss"`
	Duration    float64 `json:"duration" validate:"required,gt=0"`
}

// VideoUpdateInput dữ liệu cập nhật metadata video, chỉ set các trường có giá trị
type VideoUpdateInput struct {
	Title       string `json:"title,omitempty" validate:"omitempty,max=200,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000,no_xss"`
	Thumbnail   string `json:"thumbnail,omitempty" validate:"omitempty,url"`
}

// VideoListQuery tham số truy vấn danh sách video công khai
type VideoListQuery struct {
	Query    string // Tìm kiếm theo title/description
	UserID   string // Lọc theo kênh
	SortBy   string // Trường sắp xếp (mặc định createdAt)
	SortType string // asc hoặc desc (mặc định desc)
}

// PublishStatusResult kết quả toggle trạng thái công khai
type PublishStatusResult struct {
	IsPublished bool `json:"isPublished"`
}
