// Package tweetsvc - service tweet (bài viết ngắn của kênh).
package tweetsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	authmodels "github.com/yuvraj3121/yt-backend/internal/api/auth/models"
	basesvc "github.com/yuvraj3121/yt-backend/internal/api/base/service"
	likemodels "github.com/yuvraj3121/yt-backend/internal/api/like/models"
	models "github.com/yuvraj3121/yt-backend/internal/api/tweet/models"
	"github.com/yuvraj3121/yt-backend/internal/common"
	"github.com/yuvraj3121/yt-backend/internal/global"
)

// TweetService là cấu trúc chứa các phương thức liên quan đến tweet
type TweetService struct {
	*basesvc.BaseServiceMongoImpl[models.Tweet]
	userService *basesvc.BaseServiceMongoImpl[authmodels.User]
	likeService *basesvc.BaseServiceMongoImpl[likemodels.Like]
}

// NewTweetService tạo mới TweetService
func NewTweetService() (*TweetService, error) {
	tweetCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}

	return &TweetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Tweet](tweetCollection),
		userService:          basesvc.NewBaseServiceMongo[authmodels.User](userCollection),
		likeService:          basesvc.NewBaseServiceMongo[likemodels.Like](likeCollection),
	}, nil
}

// Create tạo một tweet mới.
func (s *TweetService) Create(ctx context.Context, ownerID primitive.ObjectID, content string) (*models.Tweet, error) {
	created, err := s.InsertOne(ctx, models.Tweet{
		Content: content,
		Owner:   ownerID,
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"tweet_id": created.ID.Hex(), "owner": ownerID.Hex()}).Info("Create: Tạo tweet thành công")
	return &created, nil
}

// BuildUserTweetsPipeline dựng pipeline danh sách tweet của một user:
// kèm thông tin người viết và số lượt thích, mới nhất trước.
func BuildUserTweetsPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"fullname": 1, "username": 1, "avatar": 1}},
			},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "tweet",
			"as":           "likes",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"owner":      bson.M{"$arrayElemAt": bson.A{"$owner", 0}},
			"likesCount": bson.M{"$size": "$likes"},
		}}},
		{{Key: "$project", Value: bson.M{"likes": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
}

// GetUserTweets trả về các tweet của một user. User phải tồn tại,
// chưa có tweet nào thì trả về danh sách rỗng.
func (s *TweetService) GetUserTweets(ctx context.Context, userID primitive.ObjectID) ([]models.TweetListItem, error) {
	exists, err := s.userService.DocumentExists(ctx, bson.M{"_id": userID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrUserNotFound
	}

	var items []models.TweetListItem
	if err := s.Aggregate(ctx, BuildUserTweetsPipeline(userID), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.TweetListItem{}
	}
	return items, nil
}

// requireOwnership load tweet và kiểm tra quyền sở hữu.
func (s *TweetService) requireOwnership(ctx context.Context, tweetID primitive.ObjectID, userID primitive.ObjectID) (*models.Tweet, error) {
	tweet, err := s.FindOneById(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if tweet.Owner != userID {
		return nil, common.ErrNotResourceOwner
	}
	return &tweet, nil
}

// Update sửa nội dung tweet thuộc sở hữu userID.
func (s *TweetService) Update(ctx context.Context, tweetID primitive.ObjectID, userID primitive.ObjectID, content string) (*models.Tweet, error) {
	if _, err := s.requireOwnership(ctx, tweetID, userID); err != nil {
		return nil, err
	}

	updated, err := s.FindOneAndUpdate(ctx, bson.M{"_id": tweetID}, &basesvc.UpdateData{
		Set: map[string]interface{}{"content": content},
	}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa tweet thuộc sở hữu userID, kèm các lượt thích của tweet đó.
func (s *TweetService) Delete(ctx context.Context, tweetID primitive.ObjectID, userID primitive.ObjectID) error {
	if _, err := s.requireOwnership(ctx, tweetID, userID); err != nil {
		return err
	}

	if _, err := s.likeService.DeleteMany(ctx, bson.M{"tweet": tweetID}); err != nil {
		return err
	}

	if err := s.DeleteById(ctx, tweetID); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"tweet_id": tweetID.Hex()}).Info("Delete: Đã xóa tweet")
	return nil
}
