// Package playlistsvc - service playlist video.
package playlistsvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "github.com/yuvraj3121/yt-backend/internal/api/base/service"
	playlistdto "github.com/yuvraj3121/yt-backend/internal/api/playlist/dto"
	models "github.com/yuvraj3121/yt-backend/internal/api/playlist/models"
	videomodels "github.com/yuvraj3121/yt-backend/internal/api/video/models"
	"github.com/yuvraj3121/yt-backend/internal/common"
	"github.com/yuvraj3121/yt-backend/internal/global"
)

// PlaylistService là cấu trúc chứa các phương thức liên quan đến playlist
type PlaylistService struct {
	*basesvc.BaseServiceMongoImpl[models.Playlist]
	videoService *basesvc.BaseServiceMongoImpl[videomodels.Video]
}

// NewPlaylistService tạo mới PlaylistService
func NewPlaylistService() (*PlaylistService, error) {
	playlistCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &PlaylistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Playlist](playlistCollection),
		videoService:         basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
	}, nil
}

// Create tạo playlist mới. Một user không thể có hai playlist trùng tên.
func (s *PlaylistService) Create(ctx context.Context, ownerID primitive.ObjectID, input *playlistdto.PlaylistCreateInput) (*models.Playlist, error) {
	exists, err := s.DocumentExists(ctx, bson.M{"name": input.Name, "owner": ownerID})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Playlist với tên này đã tồn tại", common.StatusConflict, nil)
	}

	created, err := s.InsertOne(ctx, models.Playlist{
		Name:        input.Name,
		Description: input.Description,
		Videos:      []primitive.ObjectID{},
		Owner:       ownerID,
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"playlist_id": created.ID.Hex(), "owner": ownerID.Hex()}).Info("Create: Tạo playlist thành công")
	return &created, nil
}

// GetUserPlaylists trả về các playlist của một user, mới nhất trước.
// Chưa có playlist nào thì trả về danh sách rỗng.
func (s *PlaylistService) GetUserPlaylists(ctx context.Context, userID primitive.ObjectID) ([]models.Playlist, error) {
	return s.Find(ctx, bson.M{"owner": userID}, nil)
}

// BuildDetailPipeline dựng pipeline chi tiết playlist: playlist kèm danh sách video
// đầy đủ (mỗi video có thông tin chủ sở hữu) và thông tin chủ playlist.
func BuildDetailPipeline(playlistID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": playlistID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videos",
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
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"fullname": 1, "username": 1, "avatar": 1}},
			},
		}}},
		{{Key: "$addFields", Value: bson.M{"owner": bson.M{"$arrayElemAt": bson.A{"$owner", 0}}}}},
	}
}

// GetByID trả về chi tiết một playlist.
func (s *PlaylistService) GetByID(ctx context.Context, playlistID primitive.ObjectID) (*models.PlaylistDetail, error) {
	var results []models.PlaylistDetail
	if err := s.Aggregate(ctx, BuildDetailPipeline(playlistID), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	if results[0].Videos == nil {
		results[0].Videos = []videomodels.VideoListItem{}
	}
	return &results[0], nil
}

// requireOwnership load playlist và kiểm tra quyền sở hữu.
func (s *PlaylistService) requireOwnership(ctx context.Context, playlistID primitive.ObjectID, userID primitive.ObjectID) (*models.Playlist, error) {
	playlist, err := s.FindOneById(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.Owner != userID {
		return nil, common.ErrNotResourceOwner
	}
	return &playlist, nil
}

// AddVideo thêm một video vào playlist thuộc sở hữu userID.
// Video đã có trong playlist thì không thêm lần hai.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID primitive.ObjectID, videoID primitive.ObjectID, userID primitive.ObjectID) (*models.Playlist, error) {
	playlist, err := s.requireOwnership(ctx, playlistID, userID)
	if err != nil {
		return nil, err
	}

	exists, err := s.videoService.DocumentExists(ctx, bson.M{"_id": videoID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.ErrNotFound
	}

	for _, v := range playlist.Videos {
		if v == videoID {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "Video đã có trong playlist", common.StatusConflict, nil)
		}
	}

	updated, err := s.FindOneAndUpdate(ctx, bson.M{"_id": playlistID}, &basesvc.UpdateData{
		Push: map[string]interface{}{"videos": videoID},
	}, nil)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"playlist_id": playlistID.Hex(), "video_id": videoID.Hex()}).Info("AddVideo: Đã thêm video vào playlist")
	return &updated, nil
}

// RemoveVideo gỡ một video khỏi playlist thuộc sở hữu userID.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID primitive.ObjectID, videoID primitive.ObjectID, userID primitive.ObjectID) (*models.Playlist, error) {
	if _, err := s.requireOwnership(ctx, playlistID, userID); err != nil {
		return nil, err
	}

	updated, err := s.FindOneAndUpdate(ctx, bson.M{"_id": playlistID}, &basesvc.UpdateData{
		Pull: map[string]interface{}{"videos": videoID},
	}, nil)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"playlist_id": playlistID.Hex(), "video_id": videoID.Hex()}).Info("RemoveVideo: Đã gỡ video khỏi playlist")
	return &updated, nil
}

// Update sửa tên và mô tả playlist thuộc sở hữu userID.
func (s *PlaylistService) Update(ctx context.Context, playlistID primitive.ObjectID, userID primitive.ObjectID, input *playlistdto.PlaylistUpdateInput) (*models.Playlist, error) {
	if _, err := s.requireOwnership(ctx, playlistID, userID); err != nil {
		return nil, err
	}

	updated, err := s.FindOneAndUpdate(ctx, bson.M{"_id": playlistID}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"name":        input.Name,
			"description": input.Description,
		},
	}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa playlist thuộc sở hữu userID. Video trong playlist không bị ảnh hưởng.
func (s *PlaylistService) Delete(ctx context.Context, playlistID primitive.ObjectID, userID primitive.ObjectID) error {
	if _, err := s.requireOwnership(ctx, playlistID, userID); err != nil {
		return err
	}

	if err := s.DeleteById(ctx, playlistID); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"playlist_id": playlistID.Hex()}).Info("Delete: Đã xóa playlist")
	return nil
}
