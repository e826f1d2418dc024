// Package models - model bình luận thuộc domain comment.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/yuvraj3121/yt-backend/internal/api/auth/models"
)

// Comment định nghĩa mô hình bình luận trên một video.
type Comment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content,omitempty"`
	Video     primitive.ObjectID `json:"video" bson:"video,omitempty" index:"single"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// CommentListItem là một phần tử trong kết quả aggregation danh sách bình luận:
// bình luận kèm thông tin người viết và số lượt thích.
type CommentListItem struct {
	ID         primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Content    string               `json:"content" bson:"content,omitempty"`
	Video      primitive.ObjectID   `json:"video" bson:"video,omitempty"`
	Owner      authmodels.OwnerInfo `json:"owner" bson:"owner"`
	LikesCount int64                `json:"likesCount" bson:"likesCount"`
	CreatedAt  int64                `json:"createdAt" bson:"createdAt"`
}

// CommentPage là kết quả phân trang bình luận kèm tổng số bình luận của video.
type CommentPage struct {
	Items         []CommentListItem `json:"items"`
	Page          int64             `json:"page"`
	Limit         int64             `json:"limit"`
	TotalComments int64             `json:"totalComments"`
}
