// Package models - model playlist thuộc domain playlist.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/yuvraj3121/yt-backend/internal/api/auth/models"
	videomodels "github.com/yuvraj3121/yt-backend/internal/api/video/models"
)

// Playlist định nghĩa mô hình playlist.
// Videos giữ thứ tự video theo thứ tự được thêm vào.
type Playlist struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name,omitempty"`
	Description string               `json:"description" bson:"description,omitempty"`
	Videos      []primitive.ObjectID `json:"videos" bson:"videos,omitempty"`
	Owner       primitive.ObjectID   `json:"owner" bson:"owner,omitempty" index:"single"`
	CreatedAt   int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistDetail là kết quả aggregation chi tiết playlist:
// playlist kèm danh sách video đầy đủ (có thông tin chủ sở hữu từng video).
type PlaylistDetail struct {
	ID          primitive.ObjectID          `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string                      `json:"name" bson:"name,omitempty"`
	Description string                      `json:"description" bson:"description,omitempty"`
	Videos      []videomodels.VideoListItem `json:"videos" bson:"videos"`
	Owner       authmodels.OwnerInfo        `json:"owner" bson:"owner"`
	CreatedAt   int64                       `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                       `json:"updatedAt" bson:"updatedAt"`
}
