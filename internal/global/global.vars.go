package global

import (
	"vid_tube/config"
	"vid_tube/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// ColNames chứa tên các collection trong database
type ColNames struct {
	Users         string
	Videos        string
	Comments      string
	Likes         string
	Tweets        string
	Subscriptions string
	Playlists     string
}

var (
	// MongoDB_ColNames lưu tên các collection, được gán giá trị trong quá trình khởi tạo server
	MongoDB_ColNames ColNames

	// MongoDB_ServerConfig cấu hình server đọc từ env
	MongoDB_ServerConfig *config.Configuration

	// MongoDB_Session kết nối MongoDB dùng chung toàn ứng dụng
	MongoDB_Session *mongo.Client

	// RegistryCollections registry chứa các collection singleton theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()

	// Validate validator singleton, khởi tạo qua InitValidator
	Validate *validator.Validate
)
