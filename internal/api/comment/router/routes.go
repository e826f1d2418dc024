// Package router đăng ký các route thuộc domain bình luận.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	commenthdl "github.com/yuvraj3121/yt-backend/internal/api/comment/handler"
	apirouter "github.com/yuvraj3121/yt-backend/internal/api/router"
)

// Register đăng ký tất cả route bình luận lên v1.
func Register(v1 fiber.Router, authMiddleware fiber.Handler) error {
	commentHandler, err := commenthdl.NewCommentHandler()
	if err != nil {
		return fmt.Errorf("failed to create comment handler: %w", err)
	}

	// Route public phải đăng ký trước các group có middleware
	v1.Get("/comments/:videoId", commentHandler.HandleGetVideoComments)

	auth := []fiber.Handler{authMiddleware}
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "POST", "/:videoId", auth, commentHandler.HandleAdd)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "PATCH", "/c/:id", auth, commentHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "DELETE", "/c/:id", auth, commentHandler.HandleDelete)

	return nil
}
