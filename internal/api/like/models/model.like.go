// Package models - model lượt thích thuộc domain like.
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yuvraj3121/yt-backend/internal/common"
)

// TargetKind là tập đóng các loại đối tượng có thể được thích.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

// Field trả về tên field tương ứng trong document Like.
// Trả về lỗi với TargetKind không nằm trong tập đã định nghĩa.
func (k TargetKind) Field() (string, error) {
	switch k {
	case TargetVideo:
		return "video", nil
	case TargetComment:
		return "comment", nil
	case TargetTweet:
		return "tweet", nil
	default:
		return "", common.ErrInvalidOperation
	}
}

// Like định nghĩa mô hình lượt thích.
// Đúng một trong ba field Video/Comment/Tweet được set, tùy theo loại đối tượng.
type Like struct {
	ID        primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Video     *primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty"`
	Comment   *primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"`
	Tweet     *primitive.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty"`
	LikedBy   primitive.ObjectID  `json:"likedBy" bson:"likedBy,omitempty" index:"single"`
	CreatedAt int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64               `json:"updatedAt" bson:"updatedAt"`
}

// IndexModels khai báo index unique (target, likedBy) cho từng loại đối tượng.
// Partial filter để các document không có field đó không đụng nhau về uniqueness.
// Chặn duplicate lượt thích khi hai toggle chạy đồng thời trên cùng cặp (target, user).
func (Like) IndexModels() []mongo.IndexModel {
	targets := []string{"video", "comment", "tweet"}
	indexModels := make([]mongo.IndexModel, 0, len(targets))
	for _, target := range targets {
		indexModels = append(indexModels, mongo.IndexModel{
			Keys: bson.D{{Key: target, Value: 1}, {Key: "likedBy", Value: 1}},
			Options: options.Index().
				SetName(target + "_likedBy_unique").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{target: bson.M{"$exists": true}}),
		})
	}
	return indexModels
}

// ToggleResult cho biết trạng thái sau khi toggle một lượt thích.
type ToggleResult struct {
	Liked bool `json:"liked"` // true = vừa thích, false = vừa bỏ thích
}
