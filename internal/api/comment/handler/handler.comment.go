// Package commenthdl xử lý các request bình luận.
package commenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/yuvraj3121/yt-backend/internal/api/base/handler"
	commentdto "github.com/yuvraj3121/yt-backend/internal/api/comment/dto"
	models "github.com/yuvraj3121/yt-backend/internal/api/comment/models"
	commentsvc "github.com/yuvraj3121/yt-backend/internal/api/comment/service"
)

// CommentHandler xử lý các request bình luận
type CommentHandler struct {
	*basehdl.BaseHandler[models.Comment, commentdto.CommentCreateInput, commentdto.CommentUpdateInput]
	commentService *commentsvc.CommentService
}

// NewCommentHandler tạo instance mới của CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	commentService, err := commentsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Comment, commentdto.CommentCreateInput, commentdto.CommentUpdateInput](commentService)
	return &CommentHandler{
		BaseHandler:    baseHandler,
		commentService: commentService,
	}, nil
}

// HandleGetVideoComments trả về một trang bình luận của video kèm tổng số bình luận
func (h *CommentHandler) HandleGetVideoComments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID, err := h.ParseObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.commentService.GetVideoComments(c.Context(), videoID, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleAdd thêm bình luận mới vào video
func (h *CommentHandler) HandleAdd(c fiber.Ctx) error {
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

		var input commentdto.CommentCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.commentService.Add(c.Context(), videoID, userID, input.Content)
		h.HandleCreatedResponse(c, comment, err)
		return nil
	})
}

// HandleUpdate sửa nội dung bình luận
func (h *CommentHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		commentID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input commentdto.CommentUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.commentService.Update(c.Context(), commentID, userID, input.Content)
		h.HandleResponse(c, comment, err)
		return nil
	})
}

// HandleDelete xóa bình luận
func (h *CommentHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		commentID, err := h.ParseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.commentService.Delete(c.Context(), commentID, userID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
