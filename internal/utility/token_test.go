// Package utility - Test vòng đời token: ký, parse, hết hạn, sai secret.
package utility

import (
	"errors"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"

	"github.com/yuvraj3121/yt-backend/internal/common"
)

type testClaims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	claims := &testClaims{
		UserID: "64f1b2a3c4d5e6f708091a0b",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}

	token, err := CreateToken(secret, claims)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}
	if token == "" {
		t.Fatal("CreateToken trả về token rỗng")
	}

	parsed := &testClaims{}
	if err := ParseToken(secret, token, parsed); err != nil {
		t.Fatalf("ParseToken lỗi với token hợp lệ: %v", err)
	}
	assert.Equal(t, claims.UserID, parsed.UserID, "UserID trong claims phải giữ nguyên sau khi parse")
}

func TestParseToken_Expired(t *testing.T) {
	secret := "test-secret"
	claims := &testClaims{
		UserID: "64f1b2a3c4d5e6f708091a0b",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}

	token, err := CreateToken(secret, claims)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	err = ParseToken(secret, token, &testClaims{})
	if err == nil {
		t.Fatal("ParseToken phải trả về lỗi với token hết hạn")
	}
	var customErr *common.Error
	assert.ErrorAs(t, err, &customErr)
	assert.True(t, errors.Is(customErr, common.ErrTokenExpired), "Token hết hạn phải map về ErrTokenExpired")
}

func TestParseToken_WrongSecret(t *testing.T) {
	claims := &testClaims{
		UserID: "64f1b2a3c4d5e6f708091a0b",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}

	token, err := CreateToken("secret-a", claims)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}

	err = ParseToken("secret-b", token, &testClaims{})
	if err == nil {
		t.Fatal("ParseToken phải trả về lỗi khi sai secret")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	err := ParseToken("secret", "không-phải-jwt", &testClaims{})
	if err == nil {
		t.Fatal("ParseToken phải trả về lỗi với chuỗi không phải JWT")
	}
}
