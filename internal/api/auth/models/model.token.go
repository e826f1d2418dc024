// Package models - claims JWT thuộc domain auth.
package models

import "github.com/dgrijalva/jwt-go"

// AccessTokenClaims chứa data được mã hóa trong access token.
type AccessTokenClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.StandardClaims
}

// RefreshTokenClaims chứa data được mã hóa trong refresh token.
// Refresh token chỉ mang userId để giảm thiểu thông tin lộ ra khi bị đánh cắp.
type RefreshTokenClaims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

// TokenPair là cặp token được cấp khi đăng nhập hoặc refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
