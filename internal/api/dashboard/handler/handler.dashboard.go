// Package dashboardhdl xử lý các request thống kê kênh cho dashboard.
package dashboardhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/yuvraj3121/yt-backend/internal/api/base/handler"
	models "github.com/yuvraj3121/yt-backend/internal/api/video/models"
	videosvc "github.com/yuvraj3121/yt-backend/internal/api/video/service"
	"github.com/yuvraj3121/yt-backend/internal/media"
)

// DashboardHandler xử lý các request thống kê kênh
type DashboardHandler struct {
	*basehdl.BaseHandler[models.Video, struct{}, struct{}]
	videoService *videosvc.VideoService
}

// NewDashboardHandler tạo instance mới của DashboardHandler
func NewDashboardHandler(storage media.Storage) (*DashboardHandler, error) {
	videoService, err := videosvc.NewVideoService(storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Video, struct{}, struct{}](videoService)
	return &DashboardHandler{
		BaseHandler:  baseHandler,
		videoService: videoService,
	}, nil
}

// HandleGetChannelStats trả về thống kê kênh của người dùng hiện tại:
// tổng video, tổng lượt xem, tổng subscriber, tổng lượt thích
func (h *DashboardHandler) HandleGetChannelStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		stats, err := h.videoService.GetChannelStats(c.Context(), userID)
		h.HandleResponse(c, stats, err)
		return nil
	})
}

// HandleGetChannelVideos trả về toàn bộ video của kênh người dùng hiện tại
func (h *DashboardHandler) HandleGetChannelVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videos, err := h.videoService.GetChannelVideos(c.Context(), userID)
		h.HandleResponse(c, videos, err)
		return nil
	})
}
