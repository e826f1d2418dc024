// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yuvraj3121/yt-backend/config"
	authdto "github.com/yuvraj3121/yt-backend/internal/api/auth/dto"
	models "github.com/yuvraj3121/yt-backend/internal/api/auth/models"
	basesvc "github.com/yuvraj3121/yt-backend/internal/api/base/service"
	videomodels "github.com/yuvraj3121/yt-backend/internal/api/video/models"
	"github.com/yuvraj3121/yt-backend/internal/common"
	"github.com/yuvraj3121/yt-backend/internal/global"
	"github.com/yuvraj3121/yt-backend/internal/media"
	"github.com/yuvraj3121/yt-backend/internal/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
	storage media.Storage
	cfg     *config.Configuration
}

// NewUserService tạo mới UserService
func NewUserService(cfg *config.Configuration, storage media.Storage) (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
		storage:              storage,
		cfg:                  cfg,
	}, nil
}

// sanitizeUser xóa các trường nhạy cảm trước khi trả về client.
func sanitizeUser(user models.User) models.User {
	user.Password = ""
	user.RefreshToken = ""
	return user
}

// generateTokenPair tạo cặp access + refresh token cho user.
func (s *UserService) generateTokenPair(user *models.User) (*models.TokenPair, error) {
	now := time.Now()

	accessClaims := models.AccessTokenClaims{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(s.cfg.AccessTokenExpiry) * 24 * time.Hour).Unix(),
		},
	}
	accessToken, err := utility.CreateToken(s.cfg.AccessTokenSecret, accessClaims)
	if err != nil {
		return nil, err
	}

	refreshClaims := models.RefreshTokenClaims{
		UserID: user.ID.Hex(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(s.cfg.RefreshTokenExpiry) * 24 * time.Hour).Unix(),
		},
	}
	refreshToken, err := utility.CreateToken(s.cfg.RefreshTokenSecret, refreshClaims)
	if err != nil {
		return nil, err
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Register đăng ký người dùng mới.
// Avatar là bắt buộc, coverImage không bắt buộc (nil nếu không gửi).
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput, avatar *media.UploadInput, coverImage *media.UploadInput) (*models.User, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Kiểm tra trùng username hoặc email
	exists, err := s.DocumentExists(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Người dùng với email hoặc username này đã tồn tại", common.StatusConflict, nil)
	}

	hashedPassword, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	if avatar == nil {
		return nil, common.ErrMediaFileMissing
	}
	avatarResult, err := s.storage.Upload(ctx, avatar)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		FullName: input.FullName,
		Password: hashedPassword,
		Avatar:   avatarResult.URL,
		AvatarID: avatarResult.PublicID,
	}

	if coverImage != nil {
		coverResult, err := s.storage.Upload(ctx, coverImage)
		if err != nil {
			return nil, err
		}
		user.CoverImage = coverResult.URL
		user.CoverImageID = coverResult.PublicID
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		logrus.WithFields(logrus.Fields{"username": username, "error": err.Error()}).Error("Register: Lỗi khi tạo người dùng")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "username": created.Username}).Info("Register: Đăng ký thành công")
	created = sanitizeUser(created)
	return &created, nil
}

// Login đăng nhập bằng username hoặc email.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, *models.TokenPair, error) {
	if input.Username == "" && input.Email == "" {
		return nil, nil, common.NewError(common.ErrCodeValidationInput, "Cần cung cấp username hoặc email", common.StatusBadRequest, nil)
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"username": strings.ToLower(input.Username)},
		bson.M{"email": strings.ToLower(input.Email)},
	}}
	user, err := s.FindOne(ctx, filter, nil)
	if err != nil {
		if e, ok := err.(*common.Error); ok && e.StatusCode == common.StatusNotFound {
			return nil, nil, common.ErrUserNotFound
		}
		return nil, nil, err
	}

	if err := utility.ComparePassword(user.Password, input.Password); err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex()}).Warn("Login: Sai mật khẩu")
		return nil, nil, err
	}

	pair, err := s.generateTokenPair(&user)
	if err != nil {
		return nil, nil, err
	}

	// Lưu refresh token mới nhất vào user
	if _, err := s.UpdateOne(ctx, bson.M{"_id": user.ID}, &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": pair.RefreshToken},
	}, nil); err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("Login: Lỗi khi lưu refresh token")
		return nil, nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "username": user.Username}).Info("Login: Đăng nhập thành công")
	user = sanitizeUser(user)
	return &user, pair, nil
}

// Logout đăng xuất: thu hồi refresh token đã lưu.
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.UpdateOne(ctx, bson.M{"_id": userID}, &basesvc.UpdateData{
		Unset: map[string]interface{}{"refreshToken": ""},
	}, nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "error": err.Error()}).Error("Logout: Lỗi khi thu hồi refresh token")
		return err
	}
	return nil
}

// RefreshTokens xác thực refresh token và cấp cặp token mới (rotation).
func (s *UserService) RefreshTokens(ctx context.Context, rawToken string) (*models.TokenPair, error) {
	if rawToken == "" {
		return nil, common.ErrTokenMissing
	}

	claims := &models.RefreshTokenClaims{}
	if err := utility.ParseToken(s.cfg.RefreshTokenSecret, rawToken, claims); err != nil {
		return nil, err
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	user, err := s.FindOne(ctx, bson.M{"_id": userID}, nil)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	// Token gửi lên phải khớp với token đang lưu, tránh dùng lại token cũ
	if user.RefreshToken == "" || user.RefreshToken != rawToken {
		return nil, common.ErrTokenMismatched
	}

	pair, err := s.generateTokenPair(&user)
	if err != nil {
		return nil, err
	}

	if _, err := s.UpdateOne(ctx, bson.M{"_id": user.ID}, &basesvc.UpdateData{
		Set: map[string]interface{}{"refreshToken": pair.RefreshToken},
	}, nil); err != nil {
		return nil, err
	}

	return pair, nil
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.ChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := utility.ComparePassword(user.Password, input.OldPassword); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không chính xác", common.StatusBadRequest, nil)
	}

	hashed, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	_, err = s.UpdateOne(ctx, bson.M{"_id": userID}, &basesvc.UpdateData{
		Set: map[string]interface{}{"password": hashed},
	}, nil)
	return err
}

// GetCurrentUser trả về thông tin user hiện tại (đã lược bỏ trường nhạy cảm).
func (s *UserService) GetCurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}
	user = sanitizeUser(user)
	return &user, nil
}

// UpdateAccount cập nhật fullname và email.
func (s *UserService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, input *authdto.UpdateAccountInput) (*models.User, error) {
	updated, err := s.FindOneAndUpdate(ctx, bson.M{"_id": userID}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"fullname": input.FullName,
			"email":    strings.ToLower(input.Email),
		},
	}, nil)
	if err != nil {
		return nil, err
	}
	updated = sanitizeUser(updated)
	return &updated, nil
}

// UpdateAvatar tải avatar mới lên và xóa avatar cũ khỏi kho lưu trữ.
func (s *UserService) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, upload *media.UploadInput) (*models.User, error) {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := s.storage.Upload(ctx, upload)
	if err != nil {
		return nil, err
	}

	updated, err := s.FindOneAndUpdate(ctx, bson.M{"_id": userID}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"avatar":   result.URL,
			"avatarId": result.PublicID,
		},
	}, nil)
	if err != nil {
		return nil, err
	}

	// Xóa file cũ sau khi đã cập nhật thành công, lỗi xóa chỉ log
	if user.AvatarID != "" {
		if err := s.storage.Remove(ctx, media.KindImage, user.AvatarID); err != nil {
			logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "publicId": user.AvatarID}).Warn("UpdateAvatar: Không xóa được avatar cũ")
		}
	}

	updated = sanitizeUser(updated)
	return &updated, nil
}

// UpdateCoverImage tải cover image mới lên và xóa cover image cũ khỏi kho lưu trữ.
func (s *UserService) UpdateCoverImage(ctx context.Context, userID primitive.ObjectID, upload *media.UploadInput) (*models.User, error) {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}

	result, err := s.storage.Upload(ctx, upload)
	if err != nil {
		return nil, err
	}

	updated, err := s.FindOneAndUpdate(ctx, bson.M{"_id": userID}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"coverImage":   result.URL,
			"coverImageId": result.PublicID,
		},
	}, nil)
	if err != nil {
		return nil, err
	}

	if user.CoverImageID != "" {
		if err := s.storage.Remove(ctx, media.KindImage, user.CoverImageID); err != nil {
			logrus.WithFields(logrus.Fields{"user_id": userID.Hex(), "publicId": user.CoverImageID}).Warn("UpdateCoverImage: Không xóa được cover image cũ")
		}
	}

	updated = sanitizeUser(updated)
	return &updated, nil
}

// BuildChannelProfilePipeline dựng pipeline lấy trang kênh theo username,
// kèm số subscriber, số kênh đã đăng ký và cờ isSubscribed của user hiện tại.
func BuildChannelProfilePipeline(username string, currentUserID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"username": strings.ToLower(username)}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Subscriptions,
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Subscriptions,
			"localField":   "_id",
			"foreignField": "subscriber",
			"as":           "subscribedTo",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"subscribersCount":  bson.M{"$size": "$subscribers"},
			"subscribedToCount": bson.M{"$size": "$subscribedTo"},
			"isSubscribed": bson.M{
				"$cond": bson.M{
					"if":   bson.M{"$in": bson.A{currentUserID, "$subscribers.subscriber"}},
					"then": true,
					"else": false,
				},
			},
		}}},
		{{Key: "$project", Value: bson.M{
			"username":          1,
			"email":             1,
			"fullname":          1,
			"avatar":            1,
			"coverImage":        1,
			"subscribersCount":  1,
			"subscribedToCount": 1,
			"isSubscribed":      1,
		}}},
	}
}

// GetChannelProfile trả về trang kênh của một username.
func (s *UserService) GetChannelProfile(ctx context.Context, username string, currentUserID primitive.ObjectID) (*models.ChannelProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, common.ErrRequiredField
	}

	var results []models.ChannelProfile
	if err := s.Aggregate(ctx, BuildChannelProfilePipeline(username, currentUserID), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrUserNotFound
	}
	return &results[0], nil
}

// BuildWatchHistoryPipeline dựng pipeline lấy lịch sử xem của một user,
// mỗi video kèm thông tin chủ sở hữu.
func BuildWatchHistoryPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         global.MongoDB_ColNames.Videos,
			"localField":   "watchHistory",
			"foreignField": "_id",
			"as":           "watchHistory",
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
				bson.M{"$addFields": bson.M{
					"owner": bson.M{"$arrayElemAt": bson.A{"$owner", 0}},
				}},
			},
		}}},
	}
}

// GetWatchHistory trả về danh sách video user đã xem. Danh sách rỗng là kết quả hợp lệ.
func (s *UserService) GetWatchHistory(ctx context.Context, userID primitive.ObjectID) ([]videomodels.VideoListItem, error) {
	var results []struct {
		WatchHistory []videomodels.VideoListItem `bson:"watchHistory"`
	}
	if err := s.Aggregate(ctx, BuildWatchHistoryPipeline(userID), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []videomodels.VideoListItem{}, nil
	}
	if results[0].WatchHistory == nil {
		return []videomodels.VideoListItem{}, nil
	}
	return results[0].WatchHistory, nil
}

// AddToWatchHistory ghi nhận một video vào lịch sử xem (không trùng lặp).
func (s *UserService) AddToWatchHistory(ctx context.Context, userID primitive.ObjectID, videoID primitive.ObjectID) error {
	_, err := s.UpdateOne(ctx, bson.M{"_id": userID}, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"watchHistory": videoID},
	}, nil)
	return err
}
