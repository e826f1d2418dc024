// Package models - model video thuộc domain video.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/yuvraj3121/yt-backend/internal/api/auth/models"
)

// Video định nghĩa mô hình video.
// VideoFileID/ThumbnailID là publicId của file trên kho lưu trữ media, dùng để xóa file khi xóa video.
type Video struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	VideoFile    string             `json:"videoFile" bson:"videoFile,omitempty"`
	VideoFileID  string             `json:"-" bson:"videoFileId,omitempty"`
	Thumbnail    string             `json:"thumbnail" bson:"thumbnail,omitempty"`
	ThumbnailID  string             `json:"-" bson:"thumbnailId,omitempty"`
	Title        string             `json:"title" bson:"title,omitempty" index:"text"`
	Description  string             `json:"description" bson:"description,omitempty"`
	Duration     float64            `json:"duration" bson:"duration"`
	Views        int64              `json:"views" bson:"views"`
	IsPublished  bool               `json:"isPublished" bson:"isPublished"`
	Owner        primitive.ObjectID `json:"owner" bson:"owner,omitempty" index:"single"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// VideoListItem là một phần tử trong kết quả aggregation danh sách video:
// video kèm thông tin chủ sở hữu và số lượt thích / bình luận.
type VideoListItem struct {
	ID            primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	VideoFile     string               `json:"videoFile" bson:"videoFile,omitempty"`
	Thumbnail     string               `json:"thumbnail" bson:"thumbnail,omitempty"`
	Title         string               `json:"title" bson:"title,omitempty"`
	Description   string               `json:"description" bson:"description,omitempty"`
	Duration      float64              `json:"duration" bson:"duration"`
	Views         int64                `json:"views" bson:"views"`
	IsPublished   bool                 `json:"isPublished" bson:"isPublished"`
	Owner         authmodels.OwnerInfo `json:"owner" bson:"owner"`
	LikesCount    int64                `json:"likesCount" bson:"likesCount"`
	CommentsCount int64                `json:"commentsCount" bson:"commentsCount"`
	CreatedAt     int64                `json:"createdAt" bson:"createdAt"`
}

// ChannelStats là kết quả aggregation thống kê kênh cho dashboard.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos" bson:"totalVideos"`
	TotalViews       int64 `json:"totalViews" bson:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers" bson:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes" bson:"totalLikes"`
}
