// Package models - model tweet thuộc domain tweet.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/yuvraj3121/yt-backend/internal/api/auth/models"
)

// Tweet định nghĩa mô hình bài đăng ngắn của một user.
type Tweet struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content,omitempty"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner,omitempty" index:"single"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// TweetListItem là một phần tử trong kết quả aggregation danh sách tweet của một user.
type TweetListItem struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Content   string               `json:"content" bson:"content,omitempty"`
	Owner     authmodels.OwnerInfo `json:"owner" bson:"owner"`
	CreatedAt int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64                `json:"updatedAt" bson:"updatedAt"`
}
