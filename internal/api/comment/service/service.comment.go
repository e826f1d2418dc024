// Package commentsvc - service bình luận trên video.
package commentsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "github.com/yuvraj3121/yt-backend/internal/api/base/service"
	models "github.com/yuvraj3121/yt-backend/internal/api/comment/models"
	likemodels "github.com/yuvraj3121/yt-backend/internal/api/like/models"
	videomodels "github.com/yuvraj3121/yt-backend/internal/api/video/models"
	"github.com/yuvraj3121/yt-backend/internal/common"
	"github.com/yuvraj3121/yt-backend/internal/global"
)

// CommentService là cấu trúc chứa các phương thức liên quan đến bình luận
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[models.Comment]
	videoService *basesvc.BaseServiceMongoImpl[videomodels.Video]
	likeService  *basesvc.BaseServiceMongoImpl[likemodels.Like]
}

// NewCommentService tạo mới CommentService
func NewCommentService() (*CommentService, error) {
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}

	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Comment](commentCollection),
		videoService:         basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
		likeService:          basesvc.NewBaseServiceMongo[likemodels.Like](likeCollection),
	}, nil
}

// BuildVideoCommentsPipeline dựng pipeline danh sách bình luận của một video:
// kèm thông tin người viết và số lượt thích, mới nhất trước, có phân trang.
func BuildVideoCommentsPipeline(videoID primitive.ObjectID, page, limit int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"video": videoID}}},
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
			"foreignField": "comment",
			"as":           "likes",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"owner":      bson.M{"$arrayElemAt": bson.A{"$owner", 0}},
			"likesCount": bson.M{"$size": "$likes"},
		}}},
		{{Key: "$project", Value: bson.M{"likes": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
	}
}

// GetVideoComments trả về một trang bình luận của video kèm tổng số bình luận.
// Video không có bình luận nào vẫn trả về trang rỗng hợp lệ.
func (s *CommentService) GetVideoComments(ctx context.Context, videoID primitive.ObjectID, page, limit int64) (*models.CommentPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	exists, err := s.videoService.DocumentExists(ctx, bson.M{"_id": videoID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrNotFound
	}

	total, err := s.CountDocuments(ctx, bson.M{"video": videoID})
	if err != nil {
		return nil, err
	}

	var items []models.CommentListItem
	if err := s.Aggregate(ctx, BuildVideoCommentsPipeline(videoID, page, limit), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CommentListItem{}
	}

	return &models.CommentPage{
		Items:         items,
		Page:          page,
		Limit:         limit,
		TotalComments: total,
	}, nil
}

// Add thêm một bình luận mới vào video.
func (s *CommentService) Add(ctx context.Context, videoID primitive.ObjectID, ownerID primitive.ObjectID, content string) (*models.Comment, error) {
	exists, err := s.videoService.DocumentExists(ctx, bson.M{"_id": videoID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrNotFound
	}

	created, err := s.InsertOne(ctx, models.Comment{
		Content: content,
		Video:   videoID,
		Owner:   ownerID,
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"comment_id": created.ID.Hex(), "video_id": videoID.Hex()}).Info("Add: Thêm bình luận thành công")
	return &created, nil
}

// requireOwnership load bình luận và kiểm tra quyền sở hữu.
func (s *CommentService) requireOwnership(ctx context.Context, commentID primitive.ObjectID, userID primitive.ObjectID) (*models.Comment, error) {
	comment, err := s.FindOneById(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.Owner != userID {
		return nil, common.ErrNotResourceOwner
	}
	return &comment, nil
}

// Update sửa nội dung bình luận thuộc sở hữu userID.
func (s *CommentService) Update(ctx context.Context, commentID primitive.ObjectID, userID primitive.ObjectID, content string) (*models.Comment, error) {
	if _, err := s.requireOwnership(ctx, commentID, userID); err != nil {
		return nil, err
	}

	updated, err := s.FindOneAndUpdate(ctx, bson.M{"_id": commentID}, &basesvc.UpdateData{
		Set: map[string]interface{}{"content": content},
	}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa bình luận thuộc sở hữu userID, kèm các lượt thích của bình luận đó.
func (s *CommentService) Delete(ctx context.Context, commentID primitive.ObjectID, userID primitive.ObjectID) error {
	if _, err := s.requireOwnership(ctx, commentID, userID); err != nil {
		return err
	}

	if _, err := s.likeService.DeleteMany(ctx, bson.M{"comment": commentID}); err != nil {
		return err
	}

	if err := s.DeleteById(ctx, commentID); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"comment_id": commentID.Hex()}).Info("Delete: Đã xóa bình luận")
	return nil
}
