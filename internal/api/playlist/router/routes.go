// Package router đăng ký các route thuộc domain playlist.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	playlisthdl "github.com/yuvraj3121/yt-backend/internal/api/playlist/handler"
	apirouter "github.com/yuvraj3121/yt-backend/internal/api/router"
)

// Register đăng ký tất cả route playlist lên v1.
func Register(v1 fiber.Router, authMiddleware fiber.Handler) error {
	playlistHandler, err := playlisthdl.NewPlaylistHandler()
	if err != nil {
		return fmt.Errorf("failed to create playlist handler: %w", err)
	}

	auth := []fiber.Handler{authMiddleware}
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "POST", "/", auth, playlistHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "GET", "/user/:userId", auth, playlistHandler.HandleGetUserPlaylists)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "PATCH", "/add/:videoId/:playlistId", auth, playlistHandler.HandleAddVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "PATCH", "/remove/:videoId/:playlistId", auth, playlistHandler.HandleRemoveVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "GET", "/:id", auth, playlistHandler.HandleGetByID)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "PATCH", "/:id", auth, playlistHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "DELETE", "/:id", auth, playlistHandler.HandleDelete)

	return nil
}
