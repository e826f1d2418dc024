// Package playlisthdl xử lý các request playlist.
package playlisthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/yuvraj3121/yt-backend/internal/api/base/handler"
	playlistdto "github.com/yuvraj3121/yt-backend/internal/api/playlist/dto"
	models "github.com/yuvraj3121/yt-backend/internal/api/playlist/models"
	playlistsvc "github.com/yuvraj3121/yt-backend/internal/api/playlist/service"
)

// PlaylistHandler xử lý các request playlist
type PlaylistHandler struct {
	*basehdl.BaseHandler[models.Playlist, playlistdto.PlaylistCreateInput, playlistdto.PlaylistUpdateInput]
	playlistService *playlistsvc.PlaylistService
}

// NewPlaylistHandler tạo instance mới của PlaylistHandler
func NewPlaylistHandler() (*PlaylistHandler, error) {
	playlistService, err := playlistsvc.NewPlaylistService()
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Playlist, playlistdto.PlaylistCreateInput, playlistdto.PlaylistUpdateInput](playlistService)
	return &PlaylistHandler{
		BaseHandler:     baseHandler,
		playlistService: playlistService,
	}, nil
}

// HandleCreate tạo playlist mới
func (h *PlaylistHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input playlistdto.PlaylistCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.Create(c.Context(), userID, &input)
		h.HandleCreatedResponse(c, playlist, err)
		return nil
	})
}

// HandleGetUserPlaylists trả về các playlist của một user
func (h *PlaylistHandler) HandleGetUserPlaylists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.ParseObjectIDParam(c, "userId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlists, err := h.playlistService.GetUserPlaylists(c.Context(), userID)
		h.HandleResponse(c, playlists, err)
		return nil
	})
}

// HandleGetByID trả về chi tiết playlist kèm danh sách video đầy đủ
func (h *PlaylistHandler) HandleGetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		playlistID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.GetByID(c.Context(), playlistID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleAddVideo thêm video vào playlist
func (h *PlaylistHandler) HandleAddVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoID, err := h.ParseObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := h.ParseObjectIDParam(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.AddVideo(c.Context(), playlistID, videoID, userID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleRemoveVideo gỡ video khỏi playlist
func (h *PlaylistHandler) HandleRemoveVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		videoID, err := h.ParseObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlistID, err := h.ParseObjectIDParam(c, "playlistId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.RemoveVideo(c.Context(), playlistID, videoID, userID)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleUpdate sửa tên và mô tả playlist
func (h *PlaylistHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlistID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input playlistdto.PlaylistUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlist, err := h.playlistService.Update(c.Context(), playlistID, userID, &input)
		h.HandleResponse(c, playlist, err)
		return nil
	})
}

// HandleDelete xóa playlist
func (h *PlaylistHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		playlistID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.playlistService.Delete(c.Context(), playlistID, userID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
