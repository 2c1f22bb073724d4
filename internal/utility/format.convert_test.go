package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	if got := String2ObjectID(id.Hex()); got != id {
		t.Errorf("String2ObjectID(%q) = %v, muốn %v", id.Hex(), got, id)
	}

	// Chuỗi không hợp lệ trả về NilObjectID
	for _, bad := range []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz", "66d1f2a3b4c5d6e7f8a9b0"} {
		if got := String2ObjectID(bad); !got.IsZero() {
			t.Errorf("String2ObjectID(%q) = %v, muốn NilObjectID", bad, got)
		}
	}
}

func TestObjectID2String(t *testing.T) {
	id := primitive.NewObjectID()
	if got := ObjectID2String(id); got != id.Hex() {
		t.Errorf("ObjectID2String = %q, muốn %q", got, id.Hex())
	}
}
