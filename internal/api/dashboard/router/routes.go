// Package router đăng ký các route thống kê kênh cho dashboard.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dashboardhdl "github.com/yuvraj3121/yt-backend/internal/api/dashboard/handler"
	apirouter "github.com/yuvraj3121/yt-backend/internal/api/router"
	"github.com/yuvraj3121/yt-backend/internal/media"
)

// Register đăng ký tất cả route dashboard lên v1.
func Register(v1 fiber.Router, storage media.Storage, authMiddleware fiber.Handler) error {
	dashboardHandler, err := dashboardhdl.NewDashboardHandler(storage)
	if err != nil {
		return fmt.Errorf("failed to create dashboard handler: %w", err)
	}

	auth := []fiber.Handler{authMiddleware}
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/stats", auth, dashboardHandler.HandleGetChannelStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/dashboard", "GET", "/videos", auth, dashboardHandler.HandleGetChannelVideos)

	return nil
}
