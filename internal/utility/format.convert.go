package utility

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển đổi chuỗi hex thành ObjectID
// @params - chuỗi cần chuyển đổi
// @returns - ObjectID, NilObjectID nếu chuỗi không hợp lệ
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// ObjectID2String chuyển đổi ObjectID thành chuỗi hex
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// CurrentTimeInMilli trả về thời gian hiện tại theo Unix milliseconds
func CurrentTimeInMilli() int64 {
	return time.Now().UnixMilli()
}
