package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/yuvraj3121/yt-backend/config"
	authmodels "github.com/yuvraj3121/yt-backend/internal/api/auth/models"
	commentmodels "github.com/yuvraj3121/yt-backend/internal/api/comment/models"
	likemodels "github.com/yuvraj3121/yt-backend/internal/api/like/models"
	playlistmodels "github.com/yuvraj3121/yt-backend/internal/api/playlist/models"
	submodels "github.com/yuvraj3121/yt-backend/internal/api/subscription/models"
	tweetmodels "github.com/yuvraj3121/yt-backend/internal/api/tweet/models"
	videomodels "github.com/yuvraj3121/yt-backend/internal/api/video/models"
	"github.com/yuvraj3121/yt-backend/internal/database"
	"github.com/yuvraj3121/yt-backend/internal/global"
	"github.com/yuvraj3121/yt-backend/internal/logger"
	"github.com/yuvraj3121/yt-backend/internal/media"
)

// appStorage là kho lưu trữ media dùng chung, khởi tạo trong InitStorage.
var appStorage media.Storage

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initLogger()           // Khởi tạo logger theo cấu hình
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Comments = "comments"
	global.MongoDB_ColNames.Likes = "likes"
	global.MongoDB_ColNames.Tweets = "tweets"
	global.MongoDB_ColNames.Playlists = "playlists"
	global.MongoDB_ColNames.Subscriptions = "subscriptions"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (đăng ký custom validators: no_xss, strong_password)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo logger theo cấu hình
func initLogger() {
	cfg := global.ServerConfig
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		logrus.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session, global.ServerConfig); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Videos), videomodels.Video{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Comments), commentmodels.Comment{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Likes), likemodels.Like{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Tweets), tweetmodels.Tweet{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Playlists), playlistmodels.Playlist{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Subscriptions), submodels.Subscription{})
}

// InitStorage khởi tạo kho lưu trữ media S3
func InitStorage() {
	storage, err := media.NewS3Storage(context.Background(), global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize media storage: %v", err)
	}
	appStorage = storage
	logrus.Info("Initialized media storage")
}
