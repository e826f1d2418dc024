// Package router đăng ký các route thuộc domain tweet.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "github.com/yuvraj3121/yt-backend/internal/api/router"
	tweethdl "github.com/yuvraj3121/yt-backend/internal/api/tweet/handler"
)

// Register đăng ký tất cả route tweet lên v1.
func Register(v1 fiber.Router, authMiddleware fiber.Handler) error {
	tweetHandler, err := tweethdl.NewTweetHandler()
	if err != nil {
		return fmt.Errorf("failed to create tweet handler: %w", err)
	}

	auth := []fiber.Handler{authMiddleware}
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "POST", "/", auth, tweetHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "GET", "/user/:userId", auth, tweetHandler.HandleGetUserTweets)
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "PATCH", "/:id", auth, tweetHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "DELETE", "/:id", auth, tweetHandler.HandleDelete)

	return nil
}
