package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// JWT Configuration
	AccessTokenSecret  string `env:"ACCESS_TOKEN_SECRET,required"`        // Bí mật ký access token
	AccessTokenExpiry  int    `env:"ACCESS_TOKEN_EXPIRY" envDefault:"1"`  // Thời hạn access token (ngày)
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET,required"`       // Bí mật ký refresh token
	RefreshTokenExpiry int    `env:"REFRESH_TOKEN_EXPIRY" envDefault:"10"` // Thời hạn refresh token (ngày)
	CookieSecure       bool   `env:"COOKIE_SECURE" envDefault:"true"`     // Bật cờ Secure cho cookie token

	// Media Storage Configuration (S3-compatible)
	S3_Endpoint  string `env:"S3_ENDPOINT"`                        // Endpoint tùy chọn (MinIO hoặc region khác)
	S3_Region    string `env:"S3_REGION" envDefault:"ap-southeast-1"` // Region của bucket
	S3_Bucket    string `env:"S3_BUCKET,required"`                 // Tên bucket lưu media
	S3_AccessKey string `env:"S3_ACCESS_KEY"`                      // Access key (rỗng = dùng credential chain mặc định)
	S3_SecretKey string `env:"S3_SECRET_KEY"`                      // Secret key
	S3_PublicURL string `env:"S3_PUBLIC_URL"`                      // Base URL công khai của bucket (CDN nếu có)

	// Logging Configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`     // Mức log: debug, info, warn, error
	LogFile  string `env:"LOG_FILE" envDefault:"logs/app.log"` // Đường dẫn file log

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env, đi lên dần các thư mục cha
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env theo GO_ENV
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
