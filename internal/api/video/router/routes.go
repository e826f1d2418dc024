// Package router đăng ký các route thuộc domain video.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/yuvraj3121/yt-backend/config"
	apirouter "github.com/yuvraj3121/yt-backend/internal/api/router"
	videohdl "github.com/yuvraj3121/yt-backend/internal/api/video/handler"
	"github.com/yuvraj3121/yt-backend/internal/media"
)

// Register đăng ký tất cả route video lên v1. Toàn bộ route video yêu cầu xác thực.
func Register(v1 fiber.Router, cfg *config.Configuration, storage media.Storage, authMiddleware fiber.Handler) error {
	videoHandler, err := videohdl.NewVideoHandler(cfg, storage)
	if err != nil {
		return fmt.Errorf("failed to create video handler: %w", err)
	}

	auth := []fiber.Handler{authMiddleware}
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "GET", "/", auth, videoHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "POST", "/", auth, videoHandler.HandlePublish)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "PATCH", "/toggle/publish/:id", auth, videoHandler.HandleTogglePublish)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "GET", "/:id", auth, videoHandler.HandleGetByID)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "PATCH", "/:id", auth, videoHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "DELETE", "/:id", auth, videoHandler.HandleDelete)

	return nil
}
