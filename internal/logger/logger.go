package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	appLogger *logrus.Logger
	loggerMu  sync.Mutex
)

// Init khởi tạo logger chính của ứng dụng.
// Log được ghi đồng thời ra stdout và file (có rotation qua lumberjack).
func Init(level string, logFile string) error {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	logger := logrus.New()

	lv, err := logrus.ParseLevel(level)
	if err != nil {
		lv = logrus.InfoLevel
	}
	logger.SetLevel(lv)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	writers := []io.Writer{os.Stdout}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return err
		}
		fileWriter := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // MB
			MaxBackups: 5,  // Số file cũ giữ lại
			MaxAge:     30, // Số ngày
			Compress:   true,
		}
		writers = append(writers, fileWriter)
	}
	logger.SetOutput(io.MultiWriter(writers...))

	appLogger = logger
	return nil
}

// GetAppLogger trả về logger chính của ứng dụng.
// Nếu chưa init, trả về logger mặc định ghi ra stdout.
func GetAppLogger() *logrus.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if appLogger == nil {
		appLogger = logrus.StandardLogger()
	}
	return appLogger
}

// WithRequest trả về entry log kèm thông tin request hiện tại.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields{
		"path":       c.Path(),
		"method":     c.Method(),
		"request_id": c.Get("X-Request-ID"),
	})
}
