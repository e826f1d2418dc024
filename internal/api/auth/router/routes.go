// Package router đăng ký các route thuộc domain người dùng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/yuvraj3121/yt-backend/config"
	authhdl "github.com/yuvraj3121/yt-backend/internal/api/auth/handler"
	apirouter "github.com/yuvraj3121/yt-backend/internal/api/router"
	"github.com/yuvraj3121/yt-backend/internal/media"
)

// Register đăng ký tất cả route người dùng lên v1.
func Register(v1 fiber.Router, cfg *config.Configuration, storage media.Storage, authMiddleware fiber.Handler) error {
	userHandler, err := authhdl.NewUserHandler(cfg, storage)
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	v1.Post("/users/register", userHandler.HandleRegister)
	v1.Post("/users/login", userHandler.HandleLogin)
	v1.Post("/users/refresh-token", userHandler.HandleRefreshToken)

	auth := []fiber.Handler{authMiddleware}
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/logout", auth, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/change-password", auth, userHandler.HandleChangePassword)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/current-user", auth, userHandler.HandleGetCurrentUser)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/update-account", auth, userHandler.HandleUpdateAccount)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/avatar", auth, userHandler.HandleUpdateAvatar)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/cover-image", auth, userHandler.HandleUpdateCoverImage)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/c/:username", auth, userHandler.HandleGetChannelProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/history", auth, userHandler.HandleGetWatchHistory)

	return nil
}
