// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng.
// RefreshToken lưu refresh token mới nhất được cấp; bị unset khi logout.
// WatchHistory lưu danh sách ID video đã xem, video xem gần nhất ở cuối.
type User struct {
	ID            primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Username      string               `json:"username" bson:"username,omitempty" index:"unique"`
	Email         string               `json:"email" bson:"email,omitempty" index:"unique"`
	FullName      string               `json:"fullname" bson:"fullname,omitempty"`
	Password      string               `json:"-" bson:"password,omitempty"`
	Avatar        string               `json:"avatar" bson:"avatar,omitempty"`
	AvatarID      string               `json:"-" bson:"avatarId,omitempty"`
	CoverImage    string               `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	CoverImageID  string               `json:"-" bson:"coverImageId,omitempty"`
	RefreshToken  string               `json:"-" bson:"refreshToken,omitempty"`
	WatchHistory  []primitive.ObjectID `json:"watchHistory,omitempty" bson:"watchHistory,omitempty"`
	CreatedAt     int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64                `json:"updatedAt" bson:"updatedAt"`
}

// OwnerInfo là phần thông tin công khai của chủ sở hữu nhúng trong kết quả aggregation.
type OwnerInfo struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username,omitempty"`
	FullName string             `json:"fullname" bson:"fullname,omitempty"`
	Avatar   string             `json:"avatar" bson:"avatar,omitempty"`
}

// ChannelProfile là kết quả aggregation cho trang kênh của một user.
type ChannelProfile struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username          string             `json:"username" bson:"username,omitempty"`
	Email             string             `json:"email" bson:"email,omitempty"`
	FullName          string             `json:"fullname" bson:"fullname,omitempty"`
	Avatar            string             `json:"avatar" bson:"avatar,omitempty"`
	CoverImage        string             `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	SubscribersCount  int64              `json:"subscribersCount" bson:"subscribersCount"`
	SubscribedToCount int64              `json:"subscribedToCount" bson:"subscribedToCount"`
	IsSubscribed      bool               `json:"isSubscribed" bson:"isSubscribed"`
}
