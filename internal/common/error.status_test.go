package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	if err != ErrNotFound {
		t.Fatalf("mongo.ErrNoDocuments phải chuyển thành ErrNotFound, nhận: %v", err)
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if err := ConvertMongoError(nil); err != nil {
		t.Fatalf("nil phải trả về nil, nhận: %v", err)
	}
}

func TestConvertMongoError_KeepsTaxonomyError(t *testing.T) {
	// Lỗi đã thuộc taxonomy không được wrap lại
	err := ConvertMongoError(ErrForbidden)
	assert.Equal(t, ErrForbidden, err)

	wrapped := fmt.Errorf("playlist: %w", ErrNotFound)
	err = ConvertMongoError(wrapped)
	assert.Equal(t, wrapped, err)
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	writeErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}
	err := ConvertMongoError(writeErr)
	assert.Equal(t, ErrMongoDuplicate, err)
	assert.Equal(t, StatusConflict, StatusCodeOf(err))
}

func TestConvertMongoError_WriteError(t *testing.T) {
	writeErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 121, Message: "Document failed validation"},
		},
	}
	err := ConvertMongoError(writeErr)
	assert.Equal(t, ErrMongoWrite, err)
}

func TestConvertMongoError_UnknownFallsBackTo500(t *testing.T) {
	err := ConvertMongoError(errors.New("socket was unexpectedly closed"))
	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("lỗi fallback phải thuộc taxonomy, nhận: %T", err)
	}
	assert.Equal(t, ErrCodeDatabaseQuery.Code, appErr.Code.Code)
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
}

func TestStatusCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrNotFound, StatusNotFound},
		{"forbidden", ErrForbidden, StatusForbidden},
		{"token missing", ErrTokenMissing, StatusUnauthorized},
		{"invalid credentials", ErrInvalidCredentials, StatusUnauthorized},
		{"duplicate", ErrDuplicate, StatusConflict},
		{"invalid operation", ErrInvalidOperation, StatusUnprocessableEntity},
		{"wrapped", fmt.Errorf("ctx: %w", ErrNotFound), StatusNotFound},
		{"plain error", errors.New("boom"), StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCodeOf(tt.err))
		})
	}
}

func TestErrorIs_MatchesCodeAndMessage(t *testing.T) {
	err := NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, "chi tiết thêm")
	if !errors.Is(err, ErrNotFound) {
		t.Error("error cùng code và message phải thỏa errors.Is")
	}
	other := NewError(ErrCodeDatabaseQuery, "Dữ liệu đã tồn tại", StatusConflict, nil)
	if errors.Is(other, ErrNotFound) {
		t.Error("error khác message không được thỏa errors.Is")
	}
}

func TestNewError_CarriesDetails(t *testing.T) {
	err := NewError(ErrCodeValidationInput, "Dữ liệu không hợp lệ", StatusBadRequest, map[string]string{"field": "title"})
	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatal("NewError phải trả về *Error")
	}
	assert.Equal(t, "VAL_001", appErr.Code.Code)
	assert.Equal(t, StatusBadRequest, appErr.StatusCode)
	assert.NotNil(t, appErr.Details)
}
