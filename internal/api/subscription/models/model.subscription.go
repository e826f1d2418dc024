// Package models - model lượt đăng ký kênh thuộc domain subscription.
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "github.com/yuvraj3121/yt-backend/internal/api/auth/models"
)

// Subscription định nghĩa mô hình lượt đăng ký kênh:
// Subscriber là user bấm đăng ký, Channel là user được đăng ký.
type Subscription struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber,omitempty" index:"single"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel,omitempty" index:"single"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// IndexModels khai báo index unique (channel, subscriber): mỗi cặp chỉ có
// tối đa một lượt đăng ký, kể cả khi hai toggle chạy đồng thời.
func (Subscription) IndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{{
		Keys: bson.D{{Key: "channel", Value: 1}, {Key: "subscriber", Value: 1}},
		Options: options.Index().
			SetName("channel_subscriber_unique").
			SetUnique(true),
	}}
}

// ToggleResult cho biết trạng thái sau khi toggle một lượt đăng ký.
type ToggleResult struct {
	Subscribed bool `json:"subscribed"` // true = vừa đăng ký, false = vừa hủy đăng ký
}

// SubscriberItem là một phần tử trong danh sách subscriber của một kênh.
type SubscriberItem struct {
	ID         primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Subscriber authmodels.OwnerInfo `json:"subscriber" bson:"subscriber"`
	CreatedAt  int64                `json:"createdAt" bson:"createdAt"`
}

// ChannelItem là một phần tử trong danh sách kênh mà một user đã đăng ký.
type ChannelItem struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Channel   authmodels.OwnerInfo `json:"channel" bson:"channel"`
	CreatedAt int64                `json:"createdAt" bson:"createdAt"`
}
