// Package videosvc - service video: danh sách, đăng tải, cập nhật, xóa cascade.
package videosvc

import (
	"context"
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "github.com/yuvraj3121/yt-backend/internal/api/base/models"
	basesvc "github.com/yuvraj3121/yt-backend/internal/api/base/service"
	commentmodels "github.com/yuvraj3121/yt-backend/internal/api/comment/models"
	likemodels "github.com/yuvraj3121/yt-backend/internal/api/like/models"
	videodto "github.com/yuvraj3121/yt-backend/internal/api/video/dto"
	models "github.com/yuvraj3121/yt-backend/internal/api/video/models"
	"github.com/yuvraj3121/yt-backend/internal/common"
	"github.com/yuvraj3121/yt-backend/internal/global"
	"github.com/yuvraj3121/yt-backend/internal/media"
)

// VideoService là cấu trúc chứa các phương thức liên quan đến video
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[models.Video]
	commentService      *basesvc.BaseServiceMongoImpl[commentmodels.Comment]
	likeService         *basesvc.BaseServiceMongoImpl[likemodels.Like]
	subscriptionColName string
	storage             media.Storage
}

// NewVideoService tạo mới VideoService
func NewVideoService(storage media.Storage) (*VideoService, error) {
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	likeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %v", common.ErrNotFound)
	}

	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Video](videoCollection),
		commentService:       basesvc.NewBaseServiceMongo[commentmodels.Comment](commentCollection),
		likeService:          basesvc.NewBaseServiceMongo[likemodels.Like](likeCollection),
		subscriptionColName:  global.MongoDB_ColNames.Subscriptions,
		storage:              storage,
	}, nil
}

// buildListMatch dựng điều kiện $match cho danh sách video từ query.
func buildListMatch(query *videodto.VideoListQuery) bson.M {
	match := bson.M{}

	if query.Query != "" {
		escaped := regexp.QuoteMeta(query.Query)
		match["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": escaped, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": escaped, "$options": "i"}},
		}
	}

	if query.UserID != "" && primitive.IsValidObjectID(query.UserID) {
		ownerID, _ := primitive.ObjectIDFromHex(query.UserID)
		match["owner"] = ownerID
	}

	return match
}

// ownerLookupStages là các stage lookup thông tin chủ sở hữu và đếm like/comment,
// dùng chung cho danh sách video và chi tiết video.
func ownerLookupStages() []bson.D {
	return []bson.D{
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
			"foreignField": "video",
			"as":           "likes",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Comments,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "comments",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"owner":         bson.M{"$arrayElemAt": bson.A{"$owner", 0}},
			"likesCount":    bson.M{"$size": "$likes"},
			"commentsCount": bson.M{"$size": "$comments"},
		}}},
		{{Key: "$project", Value: bson.M{"likes": 0, "comments": 0}}},
	}
}

// BuildListPipeline dựng pipeline danh sách video: lọc, kèm thông tin chủ sở hữu,
// đếm like/comment, sắp xếp và phân trang.
func BuildListPipeline(query *videodto.VideoListQuery, page, limit int64) mongo.Pipeline {
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	// Mặc định sắp xếp tăng dần theo thời gian tạo
	sortDir := 1
	if query.SortType == "desc" || query.SortType == "-1" {
		sortDir = -1
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: buildListMatch(query)}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: sortBy, Value: sortDir}}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	)
	return pipeline
}

// List trả về danh sách video theo query, có phân trang. Trang rỗng là kết quả hợp lệ.
func (s *VideoService) List(ctx context.Context, query *videodto.VideoListQuery, page, limit int64) (*basemodels.PaginateResult[models.VideoListItem], error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	total, err := s.CountDocuments(ctx, buildListMatch(query))
	if err != nil {
		return nil, err
	}

	var items []models.VideoListItem
	if err := s.Aggregate(ctx, BuildListPipeline(query, page, limit), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.VideoListItem{}
	}

	var totalPage int64
	if total > 0 {
		totalPage = (total + limit - 1) / limit
	}

	return &basemodels.PaginateResult[models.VideoListItem]{
		Items:     items,
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

// Publish đăng tải một video mới: upload file video + thumbnail rồi lưu document.
func (s *VideoService) Publish(ctx context.Context, ownerID primitive.ObjectID, input *videodto.VideoPublishInput, videoFile *media.UploadInput, thumbnail *media.UploadInput) (*models.Video, error) {
	// Chặn đăng trùng cùng title + description
	exists, err := s.DocumentExists(ctx, bson.M{"title": input.Title, "description": input.Description})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Video với title và description này đã tồn tại", common.StatusConflict, nil)
	}

	if videoFile == nil || thumbnail == nil {
		return nil, common.ErrMediaFileMissing
	}

	videoResult, err := s.storage.Upload(ctx, videoFile)
	if err != nil {
		return nil, err
	}
	thumbResult, err := s.storage.Upload(ctx, thumbnail)
	if err != nil {
		// Video đã lên kho nhưng document chưa tạo, dọn lại file
		_ = s.storage.Remove(ctx, media.KindVideo, videoResult.PublicID)
		return nil, err
	}

	video := models.Video{
		VideoFile:   videoResult.URL,
		VideoFileID: videoResult.PublicID,
		Thumbnail:   thumbResult.URL,
		ThumbnailID: thumbResult.PublicID,
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		IsPublished: true,
		Owner:       ownerID,
	}

	created, err := s.InsertOne(ctx, video)
	if err != nil {
		logrus.WithFields(logrus.Fields{"owner": ownerID.Hex(), "error": err.Error()}).Error("Publish: Lỗi khi lưu video")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"video_id": created.ID.Hex(), "owner": ownerID.Hex()}).Info("Publish: Đăng video thành công")
	return &created, nil
}

// GetByID trả về chi tiết một video (kèm chủ sở hữu, số like/comment),
// đồng thời tăng lượt xem.
func (s *VideoService) GetByID(ctx context.Context, videoID primitive.ObjectID) (*models.VideoListItem, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": videoID}}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	var results []models.VideoListItem
	if err := s.Aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}

	// Tăng lượt xem, lỗi không chặn response
	if _, err := s.UpdateOne(ctx, bson.M{"_id": videoID}, &basesvc.UpdateData{
		Inc: map[string]interface{}{"views": 1},
	}, nil); err != nil {
		logrus.WithFields(logrus.Fields{"video_id": videoID.Hex(), "error": err.Error()}).Warn("GetByID: Không tăng được lượt xem")
	} else {
		results[0].Views++
	}

	return &results[0], nil
}

// requireOwnership load video và kiểm tra userID có phải chủ sở hữu không.
func (s *VideoService) requireOwnership(ctx context.Context, videoID primitive.ObjectID, userID primitive.ObjectID) (*models.Video, error) {
	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.Owner != userID {
		return nil, common.ErrNotResourceOwner
	}
	return &video, nil
}

// Update cập nhật title/description và thumbnail (nếu có) của video thuộc sở hữu userID.
func (s *VideoService) Update(ctx context.Context, videoID primitive.ObjectID, userID primitive.ObjectID, input *videodto.VideoUpdateInput, thumbnail *media.UploadInput) (*models.Video, error) {
	video, err := s.requireOwnership(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
	}

	if thumbnail != nil {
		thumbResult, err := s.storage.Upload(ctx, thumbnail)
		if err != nil {
			return nil, err
		}
		set["thumbnail"] = thumbResult.URL
		set["thumbnailId"] = thumbResult.PublicID
	}

	updated, err := s.FindOneAndUpdate(ctx, bson.M{"_id": videoID}, &basesvc.UpdateData{Set: set}, nil)
	if err != nil {
		return nil, err
	}

	if thumbnail != nil && video.ThumbnailID != "" {
		if err := s.storage.Remove(ctx, media.KindThumbnail, video.ThumbnailID); err != nil {
			logrus.WithFields(logrus.Fields{"video_id": videoID.Hex(), "publicId": video.ThumbnailID}).Warn("Update: Không xóa được thumbnail cũ")
		}
	}

	return &updated, nil
}

// Delete xóa video thuộc sở hữu userID cùng toàn bộ dữ liệu liên quan:
// bình luận, lượt thích (của video và của các bình luận), và file trên kho lưu trữ.
func (s *VideoService) Delete(ctx context.Context, videoID primitive.ObjectID, userID primitive.ObjectID) error {
	video, err := s.requireOwnership(ctx, videoID, userID)
	if err != nil {
		return err
	}

	// Gom ID các bình luận để xóa cả lượt thích của chúng
	comments, err := s.commentService.Find(ctx, bson.M{"video": videoID}, nil)
	if err != nil {
		return err
	}
	commentIDs := make([]primitive.ObjectID, 0, len(comments))
	for _, c := range comments {
		commentIDs = append(commentIDs, c.ID)
	}

	if _, err := s.commentService.DeleteMany(ctx, bson.M{"video": videoID}); err != nil {
		return err
	}

	likeFilter := bson.M{"video": videoID}
	if len(commentIDs) > 0 {
		likeFilter = bson.M{"$or": bson.A{
			bson.M{"video": videoID},
			bson.M{"comment": bson.M{"$in": commentIDs}},
		}}
	}
	if _, err := s.likeService.DeleteMany(ctx, likeFilter); err != nil {
		return err
	}

	if err := s.storage.Remove(ctx, media.KindVideo, video.VideoFileID); err != nil {
		logrus.WithFields(logrus.Fields{"video_id": videoID.Hex(), "publicId": video.VideoFileID}).Warn("Delete: Không xóa được file video")
	}
	if err := s.storage.Remove(ctx, media.KindThumbnail, video.ThumbnailID); err != nil {
		logrus.WithFields(logrus.Fields{"video_id": videoID.Hex(), "publicId": video.ThumbnailID}).Warn("Delete: Không xóa được thumbnail")
	}

	if err := s.DeleteById(ctx, videoID); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"video_id": videoID.Hex(), "owner": userID.Hex()}).Info("Delete: Đã xóa video và dữ liệu liên quan")
	return nil
}

// TogglePublish đảo trạng thái xuất bản của video thuộc sở hữu userID.
func (s *VideoService) TogglePublish(ctx context.Context, videoID primitive.ObjectID, userID primitive.ObjectID) (*models.Video, error) {
	video, err := s.requireOwnership(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.FindOneAndUpdate(ctx, bson.M{"_id": videoID}, &basesvc.UpdateData{
		Set: map[string]interface{}{"isPublished": !video.IsPublished},
	}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetChannelVideos trả về toàn bộ video của một kênh (cho dashboard).
func (s *VideoService) GetChannelVideos(ctx context.Context, ownerID primitive.ObjectID) ([]models.Video, error) {
	return s.Find(ctx, bson.M{"owner": ownerID}, nil)
}

// BuildChannelStatsPipeline dựng pipeline gom thống kê video của một kênh:
// tổng video, tổng lượt xem, tổng lượt thích.
func BuildChannelStatsPipeline(ownerID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": ownerID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Likes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"totalVideos": bson.M{"$sum": 1},
			"totalViews":  bson.M{"$sum": "$views"},
			"totalLikes":  bson.M{"$sum": bson.M{"$size": "$likes"}},
		}}},
	}
}

// GetChannelStats trả về thống kê kênh của một user. Kênh chưa có video trả về số liệu 0.
func (s *VideoService) GetChannelStats(ctx context.Context, ownerID primitive.ObjectID) (*models.ChannelStats, error) {
	var results []models.ChannelStats
	if err := s.Aggregate(ctx, BuildChannelStatsPipeline(ownerID), &results); err != nil {
		return nil, err
	}

	stats := models.ChannelStats{}
	if len(results) > 0 {
		stats = results[0]
	}

	// Số subscriber đếm trực tiếp trên collection subscriptions
	subsCollection, exist := global.RegistryCollections.Get(s.subscriptionColName)
	if exist {
		count, err := subsCollection.CountDocuments(ctx, bson.M{"channel": ownerID})
		if err != nil {
			return nil, common.ConvertMongoError(err)
		}
		stats.TotalSubscribers = count
	}

	return &stats, nil
}
