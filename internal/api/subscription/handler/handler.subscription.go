// Package subscriptionhdl xử lý các request đăng ký kênh.
package subscriptionhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/yuvraj3121/yt-backend/internal/api/base/handler"
	models "github.com/yuvraj3121/yt-backend/internal/api/subscription/models"
	subscriptionsvc "github.com/yuvraj3121/yt-backend/internal/api/subscription/service"
)

// SubscriptionHandler xử lý các request đăng ký kênh
type SubscriptionHandler struct {
	*basehdl.BaseHandler[models.Subscription, struct{}, struct{}]
	subscriptionService *subscriptionsvc.SubscriptionService
}

// NewSubscriptionHandler tạo instance mới của SubscriptionHandler
func NewSubscriptionHandler() (*SubscriptionHandler, error) {
	subscriptionService, err := subscriptionsvc.NewSubscriptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Subscription, struct{}, struct{}](subscriptionService)
	return &SubscriptionHandler{
		BaseHandler:         baseHandler,
		subscriptionService: subscriptionService,
	}, nil
}

// HandleToggle đảo trạng thái đăng ký kênh của người dùng hiện tại
func (h *SubscriptionHandler) HandleToggle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		channelID, err := h.ParseObjectIDParam(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.subscriptionService.Toggle(c.Context(), channelID, userID)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetChannelSubscribers trả về danh sách subscriber của một kênh
func (h *SubscriptionHandler) HandleGetChannelSubscribers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := h.ParseObjectIDParam(c, "channelId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		subscribers, err := h.subscriptionService.GetChannelSubscribers(c.Context(), channelID)
		h.HandleResponse(c, subscribers, err)
		return nil
	})
}

// HandleGetSubscribedChannels trả về các kênh mà một user đã đăng ký
func (h *SubscriptionHandler) HandleGetSubscribedChannels(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		subscriberID, err := h.ParseObjectIDParam(c, "subscriberId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		channels, err := h.subscriptionService.GetSubscribedChannels(c.Context(), subscriberID)
		h.HandleResponse(c, channels, err)
		return nil
	})
}
