// Package videohdl xử lý các request video.
package videohdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/yuvraj3121/yt-backend/config"
	authsvc "github.com/yuvraj3121/yt-backend/internal/api/auth/service"
	basehdl "github.com/yuvraj3121/yt-backend/internal/api/base/handler"
	videodto "github.com/yuvraj3121/yt-backend/internal/api/video/dto"
	models "github.com/yuvraj3121/yt-backend/internal/api/video/models"
	videosvc "github.com/yuvraj3121/yt-backend/internal/api/video/service"
	"github.com/yuvraj3121/yt-backend/internal/common"
	"github.com/yuvraj3121/yt-backend/internal/media"
)

// VideoHandler xử lý các request video
type VideoHandler struct {
	*basehdl.BaseHandler[models.Video, videodto.VideoPublishInput, videodto.VideoUpdateInput]
	videoService *videosvc.VideoService
	userService  *authsvc.UserService
}

// NewVideoHandler tạo instance mới của VideoHandler
func NewVideoHandler(cfg *config.Configuration, storage media.Storage) (*VideoHandler, error) {
	videoService, err := videosvc.NewVideoService(storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	userService, err := authsvc.NewUserService(cfg, storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Video, videodto.VideoPublishInput, videodto.VideoUpdateInput](videoService)
	return &VideoHandler{
		BaseHandler:  baseHandler,
		videoService: videoService,
		userService:  userService,
	}, nil
}

// HandleList trả về danh sách video theo query (tìm kiếm, lọc theo kênh, sắp xếp, phân trang)
func (h *VideoHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var query videodto.VideoListQuery
		if err := c.Bind().Query(&query); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err))
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.videoService.List(c.Context(), &query, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandlePublish đăng tải video mới (multipart form: videoFile và thumbnail bắt buộc)
func (h *VideoHandler) HandlePublish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input videodto.VideoPublishInput
		if err := h.ParseFormBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoFileHeader, err := h.RequireFormFile(c, "videoFile")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoFile, closeVideo, err := media.UploadInputFromFileHeader(media.KindVideo, videoFileHeader)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		defer closeVideo()

		thumbnailHeader, err := h.RequireFormFile(c, "thumbnail")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		thumbnail, closeThumb, err := media.UploadInputFromFileHeader(media.KindThumbnail, thumbnailHeader)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		defer closeThumb()

		video, err := h.videoService.Publish(c.Context(), userID, &input, videoFile, thumbnail)
		h.HandleCreatedResponse(c, video, err)
		return nil
	})
}

// HandleGetByID trả về chi tiết video, tăng lượt xem và ghi vào lịch sử xem
func (h *VideoHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.videoService.GetByID(c.Context(), videoID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.userService.AddToWatchHistory(c.Context(), userID, videoID); err != nil {
			// Không chặn response, lịch sử xem là best-effort
			h.HandleResponse(c, video, nil)
			return nil
		}

		h.HandleResponse(c, video, nil)
		return nil
	})
}

// HandleUpdate cập nhật title/description và thumbnail (tùy chọn) của video
func (h *VideoHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input videodto.VideoUpdateInput
		if err := h.ParseFormBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var thumbnail *media.UploadInput
		if thumbFile := h.OptionalFormFile(c, "thumbnail"); thumbFile != nil {
			var closeThumb func()
			thumbnail, closeThumb, err = media.UploadInputFromFileHeader(media.KindThumbnail, thumbFile)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			defer closeThumb()
		}

		video, err := h.videoService.Update(c.Context(), videoID, userID, &input, thumbnail)
		h.HandleResponse(c, video, err)
		return nil
	})
}

// HandleDelete xóa video cùng bình luận, lượt thích và file media liên quan
func (h *VideoHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.videoService.Delete(c.Context(), videoID, userID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleTogglePublish đảo trạng thái xuất bản của video
func (h *VideoHandler) HandleTogglePublish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.videoService.TogglePublish(c.Context(), videoID, userID)
		h.HandleResponse(c, video, err)
		return nil
	})
}
