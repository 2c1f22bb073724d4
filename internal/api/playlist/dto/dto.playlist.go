// Package playlistdto - các cấu trúc input cho domain playlist.
package playlistdto

// PlaylistCreateInput dữ liệu tạo playlist mới
type PlaylistCreateInput struct {
	Name        string `json:"name" validate:"required,max=100,no_xss"`
	Description string `json:"description" validate:"omitempty,max=1000,no_xss"`
}

// PlaylistUpdateInput dữ liệu cập nhật playlist, chỉ set các trường có giá trị
type PlaylistUpdateInput struct {
	Name        string `json:"name,omitempty" validate:"omitempty,max=100,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000,no_xss"`
}
