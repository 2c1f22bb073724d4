package basemodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginateResult(t *testing.T) {
	items := []string{"a", "b", "c"}
	result := NewPaginateResult(items, 2, 10, 23)

	assert.Equal(t, int64(2), result.Page)
	assert.Equal(t, int64(10), result.Limit)
	assert.Equal(t, int64(3), result.ItemCount)
	assert.Equal(t, int64(23), result.Total)
	assert.Equal(t, int64(3), result.TotalPage) // ceil(23/10)
}

func TestNewPaginateResult_ExactMultiple(t *testing.T) {
	result := NewPaginateResult([]int{1, 2}, 1, 10, 20)
	assert.Equal(t, int64(2), result.TotalPage)
}

func TestNewPaginateResult_Empty(t *testing.T) {
	result := NewPaginateResult[string](nil, 1, 10, 0)

	// Items nil phải trả về slice rỗng để JSON serialize thành [] thay vì null
	assert.NotNil(t, result.Items)
	assert.Equal(t, int64(0), result.ItemCount)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, int64(0), result.TotalPage)
}
