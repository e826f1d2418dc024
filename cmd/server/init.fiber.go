package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	authrouter "github.com/yuvraj3121/yt-backend/internal/api/auth/router"
	commentrouter "github.com/yuvraj3121/yt-backend/internal/api/comment/router"
	dashboardrouter "github.com/yuvraj3121/yt-backend/internal/api/dashboard/router"
	healthhdl "github.com/yuvraj3121/yt-backend/internal/api/health/handler"
	likerouter "github.com/yuvraj3121/yt-backend/internal/api/like/router"
	"github.com/yuvraj3121/yt-backend/internal/api/middleware"
	playlistrouter "github.com/yuvraj3121/yt-backend/internal/api/playlist/router"
	apirouter "github.com/yuvraj3121/yt-backend/internal/api/router"
	subscriptionrouter "github.com/yuvraj3121/yt-backend/internal/api/subscription/router"
	tweetrouter "github.com/yuvraj3121/yt-backend/internal/api/tweet/router"
	videorouter "github.com/yuvraj3121/yt-backend/internal/api/video/router"
	"github.com/yuvraj3121/yt-backend/internal/common"
	"github.com/yuvraj3121/yt-backend/internal/global"
	"github.com/yuvraj3121/yt-backend/internal/logger"
)

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết
func InitFiberApp() *fiber.App {
	cfg := global.ServerConfig

	app := fiber.New(fiber.Config{
		AppName:       "YT Backend API",
		ServerHeader:  "YT Backend API",
		StrictRouting: true,
		CaseSensitive: true,
		UnescapePath:  true,

		// Video upload qua multipart nên body limit lớn hơn API JSON thông thường
		BodyLimit:       200 * 1024 * 1024,
		Concurrency:     256 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			errorCode := common.ErrCodeInternalServer.Code

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				switch code {
				case fiber.StatusBadRequest:
					errorCode = common.ErrCodeValidationInput.Code
				case fiber.StatusUnauthorized:
					errorCode = common.ErrCodeAuthToken.Code
				case fiber.StatusForbidden:
					errorCode = common.ErrCodeAuthOwnership.Code
				case fiber.StatusNotFound, fiber.StatusConflict:
					errorCode = common.ErrCodeDatabaseQuery.Code
				}
			}

			logger.WithRequest(c).WithFields(map[string]interface{}{
				"code":      code,
				"errorCode": errorCode,
				"message":   message,
			}).Error("Request error")

			return c.Status(code).JSON(fiber.Map{
				"code":    errorCode,
				"message": message,
				"status":  "error",
			})
		},
	})

	// Request ID để trace request qua log
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// CORS đặt trước các middleware khác để xử lý preflight
	var allowOrigins []string
	if cfg.CORS_Origins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(cfg.CORS_Origins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// Security headers
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// Rate limiting theo IP
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"code":    common.ErrCodeBusinessOperation.Code,
					"message": "Quá nhiều yêu cầu, vui lòng thử lại sau",
					"status":  "error",
				})
			},
			Next: func(c fiber.Ctx) bool {
				return c.Path() == "/api/v1/healthcheck" || c.Method() == "OPTIONS"
			},
		}))
		logger.GetAppLogger().Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		logger.GetAppLogger().Info("Rate limiting disabled")
	}

	// Recover để bắt panic ngoài tầm SafeHandler
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic": e,
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":    common.ErrCodeInternalServer.Code,
				"message": "Internal Server Error",
				"status":  "error",
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/healthcheck"
		},
	}))

	if err := setupRoutes(app); err != nil {
		logger.GetAppLogger().Fatalf("Failed to setup routes: %v", err)
	}

	return app
}

// setupRoutes đăng ký tất cả route của các domain lên app.
func setupRoutes(app *fiber.App) error {
	cfg := global.ServerConfig
	prefix := apirouter.NewRoutePrefix()
	v1 := app.Group(prefix.Base)

	healthHandler := healthhdl.NewHealthHandler()
	v1.Get("/healthcheck", healthHandler.HandleHealthCheck)

	authMiddleware, err := middleware.AuthMiddleware(cfg)
	if err != nil {
		return fmt.Errorf("failed to create auth middleware: %w", err)
	}

	if err := authrouter.Register(v1, cfg, appStorage, authMiddleware); err != nil {
		return err
	}
	if err := videorouter.Register(v1, cfg, appStorage, authMiddleware); err != nil {
		return err
	}
	if err := commentrouter.Register(v1, authMiddleware); err != nil {
		return err
	}
	if err := likerouter.Register(v1, authMiddleware); err != nil {
		return err
	}
	if err := tweetrouter.Register(v1, authMiddleware); err != nil {
		return err
	}
	if err := playlistrouter.Register(v1, authMiddleware); err != nil {
		return err
	}
	if err := subscriptionrouter.Register(v1, authMiddleware); err != nil {
		return err
	}
	if err := dashboardrouter.Register(v1, appStorage, authMiddleware); err != nil {
		return err
	}

	return nil
}
