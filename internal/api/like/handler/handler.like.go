// Package likehdl xử lý các request lượt thích.
package likehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/yuvraj3121/yt-backend/internal/api/base/handler"
	models "github.com/yuvraj3121/yt-backend/internal/api/like/models"
	likesvc "github.com/yuvraj3121/yt-backend/internal/api/like/service"
)

// LikeHandler xử lý các request lượt thích
type LikeHandler struct {
	*basehdl.BaseHandler[models.Like, struct{}, struct{}]
	likeService *likesvc.LikeService
}

// NewLikeHandler tạo instance mới của LikeHandler
func NewLikeHandler() (*LikeHandler, error) {
	likeService, err := likesvc.NewLikeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create like service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Like, struct{}, struct{}](likeService)
	return &LikeHandler{
		BaseHandler: baseHandler,
		likeService: likeService,
	}, nil
}

// handleToggle dùng chung cho toggle thích video / bình luận / tweet.
func (h *LikeHandler) handleToggle(c fiber.Ctx, kind models.TargetKind) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		targetID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.likeService.Toggle(c.Context(), kind, targetID, userID)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleToggleVideoLike đảo trạng thái thích một video
func (h *LikeHandler) HandleToggleVideoLike(c fiber.Ctx) error {
	return h.handleToggle(c, models.TargetVideo)
}

// HandleToggleCommentLike đảo trạng thái thích một bình luận
func (h *LikeHandler) HandleToggleCommentLike(c fiber.Ctx) error {
	return h.handleToggle(c, models.TargetComment)
}

// HandleToggleTweetLike đảo trạng thái thích một tweet
func (h *LikeHandler) HandleToggleTweetLike(c fiber.Ctx) error {
	return h.handleToggle(c, models.TargetTweet)
}

// HandleGetLikedVideos trả về các video người dùng hiện tại đã thích
func (h *LikeHandler) HandleGetLikedVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videos, err := h.likeService.GetLikedVideos(c.Context(), userID)
		h.HandleResponse(c, videos, err)
		return nil
	})
}
