package utility

import (
	"errors"
	"testing"

	"github.com/yuvraj3121/yt-backend/internal/common"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("MatKhau@123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if hashed == "MatKhau@123" {
		t.Fatal("HashPassword không được trả về plaintext")
	}

	if err := ComparePassword(hashed, "MatKhau@123"); err != nil {
		t.Errorf("ComparePassword lỗi với mật khẩu đúng: %v", err)
	}
}

func TestComparePassword_Wrong(t *testing.T) {
	hashed, err := HashPassword("MatKhau@123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}

	err = ComparePassword(hashed, "MatKhauSai")
	if err == nil {
		t.Fatal("ComparePassword phải trả về lỗi với mật khẩu sai")
	}
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Errorf("Mật khẩu sai phải map về ErrInvalidCredentials, nhận được: %v", err)
	}
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	h1, err := HashPassword("MatKhau@123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	h2, err := HashPassword("MatKhau@123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if h1 == h2 {
		t.Error("Hai lần hash cùng mật khẩu phải cho kết quả khác nhau (salt ngẫu nhiên)")
	}
}
