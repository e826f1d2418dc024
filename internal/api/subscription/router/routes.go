// Package router đăng ký các route thuộc domain đăng ký kênh.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "github.com/yuvraj3121/yt-backend/internal/api/router"
	subscriptionhdl "github.com/yuvraj3121/yt-backend/internal/api/subscription/handler"
)

// Register đăng ký tất cả route đăng ký kênh lên v1.
func Register(v1 fiber.Router, authMiddleware fiber.Handler) error {
	subscriptionHandler, err := subscriptionhdl.NewSubscriptionHandler()
	if err != nil {
		return fmt.Errorf("failed to create subscription handler: %w", err)
	}

	auth := []fiber.Handler{authMiddleware}
	apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "POST", "/c/:channelId", auth, subscriptionHandler.HandleToggle)
	apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "GET", "/c/:subscriberId", auth, subscriptionHandler.HandleGetSubscribedChannels)
	apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "GET", "/u/:channelId", auth, subscriptionHandler.HandleGetChannelSubscribers)

	return nil
}
