// Package router đăng ký các route thuộc domain lượt thích.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	likehdl "github.com/yuvraj3121/yt-backend/internal/api/like/handler"
	apirouter "github.com/yuvraj3121/yt-backend/internal/api/router"
)

// Register đăng ký tất cả route lượt thích lên v1.
func Register(v1 fiber.Router, authMiddleware fiber.Handler) error {
	likeHandler, err := likehdl.NewLikeHandler()
	if err != nil {
		return fmt.Errorf("failed to create like handler: %w", err)
	}

	auth := []fiber.Handler{authMiddleware}
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/v/:id", auth, likeHandler.HandleToggleVideoLike)
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/c/:id", auth, likeHandler.HandleToggleCommentLike)
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/t/:id", auth, likeHandler.HandleToggleTweetLike)
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "GET", "/videos", auth, likeHandler.HandleGetLikedVideos)

	return nil
}
