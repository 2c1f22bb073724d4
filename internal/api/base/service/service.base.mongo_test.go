package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToUpdateData_PlainMapWrappedInSet(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{
		"fullName": "Chitoge Kirisaki",
		"email":    "chitoge@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, update.Set)
	assert.Equal(t, "Chitoge Kirisaki", update.Set["fullName"])
	assert.Equal(t, "chitoge@example.com", update.Set["email"])
	assert.Nil(t, update.Inc)
	assert.Nil(t, update.Unset)
}

func TestToUpdateData_KeepsOperators(t *testing.T) {
	update, err := ToUpdateData(map[string]interface{}{
		"$inc":      map[string]interface{}{"views": 1},
		"$addToSet": map[string]interface{}{"watchHistory": "66d1f2a3b4c5d6e7f8a9b0c1"},
	})
	require.NoError(t, err)
	assert.Nil(t, update.Set)
	require.NotNil(t, update.Inc)
	assert.Equal(t, 1, update.Inc["views"])
	require.NotNil(t, update.AddToSet)
	assert.Equal(t, "66d1f2a3b4c5d6e7f8a9b0c1", update.AddToSet["watchHistory"])
}

func TestToUpdateData_BsonM(t *testing.T) {
	update, err := ToUpdateData(bson.M{
		"$pull": bson.M{"videos": "66d1f2a3b4c5d6e7f8a9b0c1"},
	})
	require.NoError(t, err)
	require.NotNil(t, update.Pull)
	assert.Equal(t, "66d1f2a3b4c5d6e7f8a9b0c1", update.Pull["videos"])

	// bson.M không có operator được wrap trong $set
	update, err = ToUpdateData(bson.M{"title": "mới"})
	require.NoError(t, err)
	require.NotNil(t, update.Set)
	assert.Equal(t, "mới", update.Set["title"])
}

func TestToUpdateData_Passthrough(t *testing.T) {
	src := &UpdateData{Unset: map[string]interface{}{"refreshToken": ""}}
	update, err := ToUpdateData(src)
	require.NoError(t, err)
	assert.Same(t, src, update)

	byValue := UpdateData{Set: map[string]interface{}{"title": "mới"}}
	update, err = ToUpdateData(byValue)
	require.NoError(t, err)
	assert.Equal(t, byValue.Set, update.Set)
}

func TestSortStage_TwoKeyTieBreak(t *testing.T) {
	stage := SortStage("views", 1)

	// Thứ tự khóa phải được giữ: khóa chính trước, _id cùng chiều làm khóa phụ
	sort := stage["$sort"].(bson.D)
	require.Len(t, sort, 2)
	assert.Equal(t, bson.E{Key: "views", Value: 1}, sort[0])
	assert.Equal(t, bson.E{Key: "_id", Value: 1}, sort[1])

	desc := SortStage("createdAt", -1)["$sort"].(bson.D)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}, desc)
}

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int64
		limit     int64
		wantPage  int64
		wantLimit int64
	}{
		{"giá trị hợp lệ", 2, 20, 2, 20},
		{"page âm", -1, 20, 1, 20},
		{"page 0", 0, 20, 1, 20},
		{"limit 0 về mặc định", 1, 0, 1, 10},
		{"limit âm về mặc định", 1, -5, 1, 10},
		{"limit vượt trần", 1, 500, 1, 100},
		{"limit đúng trần", 1, 100, 1, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := NormalizePagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
