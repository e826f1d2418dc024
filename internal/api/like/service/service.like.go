// Package likesvc - service lượt thích trên video / bình luận / tweet.
package likesvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "github.com/yuvraj3121/yt-backend/internal/api/base/service"
	commentmodels "github.com/yuvraj3121/yt-backend/internal/api/comment/models"
	models "github.com/yuvraj3121/yt-backend/internal/api/like/models"
	tweetmodels "github.com/yuvraj3121/yt-backend/internal/api/tweet/models"
	videomodels "github.com/yuvraj3121/yt-backend/internal/api/video/models"
	"github.com/yuvraj3121/yt-backend/internal/common"
	"github.com/yuvraj3121/yt-backend/internal/global"
)

// LikeService là cấu trúc chứa các phương thức liên quan đến lượt thích
type LikeService struct {
	*basesvc.BaseServiceMongoImpl[models.Like]
	videoService   *basesvc.BaseServiceMongoImpl[videomodels.Video]
	commentService *basesvc.BaseServiceMongoImpl[commentmodels.Comment]
	tweetService   *basesvc.BaseServiceMongoImpl[tweetmodels.Tweet]
}

// NewLikeService tạo mới LikeService
func NewLikeService() (*LikeService, error) {
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	tweetCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tweets)
	if !exist {
		return nil, fmt.Errorf("failed to get tweets collection: %v", common.ErrNotFound)
	}

	return &LikeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Like](likeCollection),
		videoService:         basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
		commentService:       basesvc.NewBaseServiceMongo[commentmodels.Comment](commentCollection),
		tweetService:         basesvc.NewBaseServiceMongo[tweetmodels.Tweet](tweetCollection),
	}, nil
}

// targetExists kiểm tra đối tượng được thích có tồn tại không, theo từng loại.
func (s *LikeService) targetExists(ctx context.Context, kind models.TargetKind, targetID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": targetID}
	switch kind {
	case models.TargetVideo:
		return s.videoService.DocumentExists(ctx, filter)
	case models.TargetComment:
		return s.commentService.DocumentExists(ctx, filter)
	case models.TargetTweet:
		return s.tweetService.DocumentExists(ctx, filter)
	default:
		return false, common.ErrInvalidOperation
	}
}

// Toggle đảo trạng thái thích của userID trên một đối tượng:
// đã thích thì bỏ thích, chưa thích thì thêm.
func (s *LikeService) Toggle(ctx context.Context, kind models.TargetKind, targetID primitive.ObjectID, userID primitive.ObjectID) (*models.ToggleResult, error) {
	field, err := kind.Field()
	if err != nil {
		return nil, err
	}

	exists, err := s.targetExists(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrNotFound
	}

	filter := bson.M{field: targetID, "likedBy": userID}
	liked, err := s.DocumentExists(ctx, filter)
	if err != nil {
		return nil, err
	}

	if liked {
		if err := s.DeleteOne(ctx, filter); err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{"kind": string(kind), "target_id": targetID.Hex(), "user_id": userID.Hex()}).Info("Toggle: Đã bỏ thích")
		return &models.ToggleResult{Liked: false}, nil
	}

	like := models.Like{LikedBy: userID}
	switch kind {
	case models.TargetVideo:
		like.Video = &targetID
	case models.TargetComment:
		like.Comment = &targetID
	case models.TargetTweet:
		like.Tweet = &targetID
	}

	if _, err := s.InsertOne(ctx, like); err != nil {
		// Index unique (target, likedBy) chặn insert khi toggle khác vừa thích xong
		if errors.Is(err, common.ErrMongoDuplicate) {
			return &models.ToggleResult{Liked: true}, nil
		}
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"kind": string(kind), "target_id": targetID.Hex(), "user_id": userID.Hex()}).Info("Toggle: Đã thích")
	return &models.ToggleResult{Liked: true}, nil
}

// BuildLikedVideosPipeline dựng pipeline danh sách video mà userID đã thích,
// kèm thông tin chủ sở hữu video.
func BuildLikedVideosPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"likedBy": userID,
			"video":   bson.M{"$exists": true, "$ne": nil},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "video",
			"foreignField": "_id",
			"as":           "video",
			"pipeline": bson.A{
				bson.M{"$lookup": bson.M{
					"from":         global.MongoDB_ColNames.Users,
					"localField":   "owner",
					"foreignField": "_id",
					"as":           "owner",
					"pipeline": bson.A{
						bson.M{"$project": bson.M{"fullname": 1, "username": 1, "avatar": 1}},
					},
				}},
				bson.M{"$addFields": bson.M{"owner": bson.M{"$arrayElemAt": bson.A{"$owner", 0}}}},
			},
		}}},
		{{Key: "$unwind", Value: "$video"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
}

// GetLikedVideos trả về các video userID đã thích. Chưa thích video nào trả về danh sách rỗng.
func (s *LikeService) GetLikedVideos(ctx context.Context, userID primitive.ObjectID) ([]videomodels.VideoListItem, error) {
	var items []videomodels.VideoListItem
	if err := s.Aggregate(ctx, BuildLikedVideosPipeline(userID), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []videomodels.VideoListItem{}
	}
	return items, nil
}
