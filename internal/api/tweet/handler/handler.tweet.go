// Package tweethdl xử lý các request tweet.
package tweethdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/yuvraj3121/yt-backend/internal/api/base/handler"
	tweetdto "github.com/yuvraj3121/yt-backend/internal/api/tweet/dto"
	models "github.com/yuvraj3121/yt-backend/internal/api/tweet/models"
	tweetsvc "github.com/yuvraj3121/yt-backend/internal/api/tweet/service"
)

// TweetHandler xử lý các request tweet
type TweetHandler struct {
	*basehdl.BaseHandler[models.Tweet, tweetdto.TweetCreateInput, tweetdto.TweetUpdateInput]
	tweetService *tweetsvc.TweetService
}

// NewTweetHandler tạo instance mới của TweetHandler
func NewTweetHandler() (*TweetHandler, error) {
	tweetService, err := tweetsvc.NewTweetService()
	if err != nil {
		return nil, fmt.Errorf("failed to create tweet service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Tweet, tweetdto.TweetCreateInput, tweetdto.TweetUpdateInput](tweetService)
	return &TweetHandler{
		BaseHandler:  baseHandler,
		tweetService: tweetService,
	}, nil
}

// HandleCreate tạo tweet mới
func (h *TweetHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input tweetdto.TweetCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.tweetService.Create(c.Context(), userID, input.Content)
		h.HandleCreatedResponse(c, tweet, err)
		return nil
	})
}

// HandleGetUserTweets trả về các tweet của một user
func (h *TweetHandler) HandleGetUserTweets(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.ParseObjectIDParam(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweets, err := h.tweetService.GetUserTweets(c.Context(), userID)
		h.HandleResponse(c, tweets, err)
		return nil
	})
}

// HandleUpdate sửa nội dung tweet
func (h *TweetHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweetID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input tweetdto.TweetUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweet, err := h.tweetService.Update(c.Context(), tweetID, userID, input.Content)
		h.HandleResponse(c, tweet, err)
		return nil
	})
}

// HandleDelete xóa tweet
func (h *TweetHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tweetID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.tweetService.Delete(c.Context(), tweetID, userID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
