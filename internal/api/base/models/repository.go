package basemodels

// PaginateResult chứa kết quả phân trang cho một truy vấn danh sách
type PaginateResult[T any] struct {
	Page      int64 `json:"page" bson:"page"`           // Trang hiện tại
	Limit     int64 `json:"limit" bson:"limit"`         // Số bản ghi mỗi trang
	ItemCount int64 `json:"itemCount" bson:"itemCount"` // Số bản ghi trong trang hiện tại
	Items     []T   `json:"items" bson:"items"`         // Danh sách bản ghi
	Total     int64 `json:"total" bson:"total"`         // Tổng số bản ghi thỏa filter
	TotalPage int64 `json:"totalPage" bson:"totalPage"` // Tổng số trang
}

// NewPaginateResult dựng kết quả phân trang từ items và tổng số bản ghi.
// TotalPage = ceil(Total / Limit); total = 0 cho totalPage = 0.
func NewPaginateResult[T any](items []T, page, limit, total int64) *PaginateResult[T] {
	if items == nil {
		items = []T{}
	}
	var totalPage int64
	if total > 0 && limit > 0 {
		totalPage = (total + limit - 1) / limit
	}
	return &PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Items:     items,
		Total:     total,
		TotalPage: totalPage,
	}
}

// CountResult dùng để decode kết quả stage $count của aggregation
type CountResult struct {
	Total int64 `bson:"total"`
}
