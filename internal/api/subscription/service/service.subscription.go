// Package subscriptionsvc - service đăng ký kênh.
package subscriptionsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	authmodels "github.com/yuvraj3121/yt-backend/internal/api/auth/models"
	basesvc "github.com/yuvraj3121/yt-backend/internal/api/base/service"
	models "github.com/yuvraj3121/yt-backend/internal/api/subscription/models"
	"github.com/yuvraj3121/yt-backend/internal/common"
	"github.com/yuvraj3121/yt-backend/internal/global"
)

// SubscriptionService là cấu trúc chứa các phương thức liên quan đến đăng ký kênh
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[models.Subscription]
	userService *basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService() (*SubscriptionService, error) {
	subscriptionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Subscription](subscriptionCollection),
		userService:          basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
	}, nil
}

// Toggle đảo trạng thái đăng ký của subscriberID với kênh channelID.
// Không thể tự đăng ký kênh của chính mình.
func (s *SubscriptionService) Toggle(ctx context.Context, channelID primitive.ObjectID, subscriberID primitive.ObjectID) (*models.ToggleResult, error) {
	if channelID == subscriberID {
		return nil, common.ErrSelfSubscription
	}

	exists, err := s.userService.DocumentExists(ctx, bson.M{"_id": channelID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}

	filter := bson.M{"channel": channelID, "subscriber": subscriberID}
	subscribed, err := s.DocumentExists(ctx, filter)
	if err != nil {
		return nil, err
	}

	if subscribed {
		if err := s.DeleteOne(ctx, filter); err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{"channel": channelID.Hex(), "subscriber": subscriberID.Hex()}).Info("Toggle: Đã hủy đăng ký kênh")
		return &models.ToggleResult{Subscribed: false}, nil
	}

	if _, err := s.InsertOne(ctx, models.Subscription{
		Channel:    channelID,
		Subscriber: subscriberID,
	}); err != nil {
		// Index unique (channel, subscriber) chặn insert khi toggle khác vừa đăng ký xong
		if errors.Is(err, common.ErrMongoDuplicate) {
			return &models.ToggleResult{Subscribed: true}, nil
		}
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"channel": channelID.Hex(), "subscriber": subscriberID.Hex()}).Info("Toggle: Đã đăng ký kênh")
	return &models.ToggleResult{Subscribed: true}, nil
}

// BuildSubscribersPipeline dựng pipeline danh sách subscriber của một kênh.
func BuildSubscribersPipeline(channelID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"channel": channelID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "subscriber",
			"foreignField": "_id",
			"as":           "subscriber",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"fullname": 1, "username": 1, "avatar": 1}},
			},
		}}},
		{{Key: "$addFields", Value: bson.M{"subscriber": bson.M{"$arrayElemAt": bson.A{"$subscriber", 0}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
}

// GetChannelSubscribers trả về danh sách subscriber của một kênh.
// Kênh chưa có ai đăng ký trả về danh sách rỗng.
func (s *SubscriptionService) GetChannelSubscribers(ctx context.Context, channelID primitive.ObjectID) ([]models.SubscriberItem, error) {
	var items []models.SubscriberItem
	if err := s.Aggregate(ctx, BuildSubscribersPipeline(channelID), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.SubscriberItem{}
	}
	return items, nil
}

// BuildSubscribedChannelsPipeline dựng pipeline danh sách kênh mà một user đã đăng ký.
func BuildSubscribedChannelsPipeline(subscriberID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"subscriber": subscriberID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "channel",
			"foreignField": "_id",
			"as":           "channel",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"fullname": 1, "username": 1, "avatar": 1}},
			},
		}}},
		{{Key: "$addFields", Value: bson.M{"channel": bson.M{"$arrayElemAt": bson.A{"$channel", 0}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
}

// GetSubscribedChannels trả về danh sách kênh mà một user đã đăng ký.
func (s *SubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID primitive.ObjectID) ([]models.ChannelItem, error) {
	var items []models.ChannelItem
	if err := s.Aggregate(ctx, BuildSubscribedChannelsPipeline(subscriberID), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.ChannelItem{}
	}
	return items, nil
}
