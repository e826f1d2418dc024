// Package common - Test chuyển đổi lỗi MongoDB về lỗi nghiệp vụ chuẩn.
package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)

	var customErr *Error
	if !errors.As(err, &customErr) {
		t.Fatalf("ConvertMongoError phải trả về *Error, nhận được: %T", err)
	}
	if customErr.StatusCode != StatusNotFound {
		t.Errorf("ErrNoDocuments phải map về 404, nhận được %d", customErr.StatusCode)
	}
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dupErr := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	err := ConvertMongoError(dupErr)

	var customErr *Error
	if !errors.As(err, &customErr) {
		t.Fatalf("ConvertMongoError phải trả về *Error, nhận được: %T", err)
	}
	if customErr.StatusCode != StatusConflict {
		t.Errorf("Duplicate key phải map về 409, nhận được %d", customErr.StatusCode)
	}
}

func TestConvertMongoError_PassThroughCustomError(t *testing.T) {
	err := ConvertMongoError(ErrNotResourceOwner)
	if !errors.Is(err, ErrNotResourceOwner) {
		t.Errorf("Lỗi nghiệp vụ đã chuẩn hóa phải được giữ nguyên, nhận được: %v", err)
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if err := ConvertMongoError(nil); err != nil {
		t.Errorf("ConvertMongoError(nil) phải trả về nil, nhận được: %v", err)
	}
}

// asError ép kiểu sentinel về *Error để đọc các trường bên trong
func asError(t *testing.T, err error) *Error {
	t.Helper()
	customErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Sentinel phải có kiểu *Error, nhận được: %T", err)
	}
	return customErr
}

func TestError_Is(t *testing.T) {
	notFound := asError(t, ErrNotFound)
	wrapped := NewError(ErrCodeDatabaseQuery, notFound.Message, StatusNotFound, nil)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Hai lỗi cùng ErrorCode và message phải thỏa errors.Is")
	}
	if errors.Is(wrapped, ErrTokenExpired) {
		t.Error("Lỗi khác loại không được thỏa errors.Is")
	}
}

func TestSentinelStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"ErrNotFound", ErrNotFound, StatusNotFound},
		{"ErrNotResourceOwner", ErrNotResourceOwner, StatusForbidden},
		{"ErrTokenMissing", ErrTokenMissing, StatusUnauthorized},
		{"ErrTokenExpired", ErrTokenExpired, StatusUnauthorized},
		{"ErrSelfSubscription", ErrSelfSubscription, StatusBadRequest},
		{"ErrDuplicate", ErrDuplicate, StatusConflict},
	}
	for _, tc := range cases {
		if got := asError(t, tc.err).StatusCode; got != tc.want {
			t.Errorf("%s: status code phải là %d, nhận được %d", tc.name, tc.want, got)
		}
	}
}
