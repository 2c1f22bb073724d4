package main

import (
	"context"

	"github.com/sirupsen/logrus"

	commentmodels "vid_tube/internal/api/comment/models"
	likemodels "vid_tube/internal/api/like/models"
	playlistmodels "vid_tube/internal/api/playlist/models"
	subscriptionmodels "vid_tube/internal/api/subscription/models"
	tweetmodels "vid_tube/internal/api/tweet/models"
	usermodels "vid_tube/internal/api/user/models"
	videomodels "vid_tube/internal/api/video/models"
	"vid_tube/config"
	"vid_tube/internal/database"
	"vid_tube/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Comments = "comments"
	global.MongoDB_ColNames.Likes = "likes"
	global.MongoDB_ColNames.Tweets = "tweets"
	global.MongoDB_ColNames.Subscriptions = "subscriptions"
	global.MongoDB_ColNames.Playlists = "playlists"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator (đăng ký custom validators: no_xss, strong_password, username)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), usermodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Videos), videomodels.Video{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Comments), commentmodels.Comment{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Likes), likemodels.Like{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Tweets), tweetmodels.Tweet{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Subscriptions), subscriptionmodels.Subscription{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Playlists), playlistmodels.Playlist{})
}
