package utility

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi struct thành map theo bson tags, dùng để build payload $set.
// Các field zero-value có omitempty sẽ bị loại bỏ.
func ToMap(s interface{}) (map[string]interface{}, error) {
	data, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi chuyển đổi struct thành bson: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("lỗi khi chuyển đổi bson thành map: %w", err)
	}
	return result, nil
}

// ConvertStruct chuyển đổi một struct sang struct khác qua JSON round-trip
func ConvertStruct(source interface{}, target interface{}) (interface{}, error) {
	jsonData, err := json.Marshal(source)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(jsonData, target); err != nil {
		return nil, err
	}

	return target, nil
}
