// Package basehdl cung cấp các tiện ích xử lý request/response dùng chung cho các domain handler.
package basehdl

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/yuvraj3121/yt-backend/internal/api/base/service"
	"github.com/yuvraj3121/yt-backend/internal/common"
	"github.com/yuvraj3121/yt-backend/internal/global"
)

// BaseHandler chứa service cơ bản và các helper parse/validate request.
// Type Parameters:
//   - T: Model của domain
//   - CreateInput: DTO tạo mới
//   - UpdateInput: DTO cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
	}
}

// ValidateInput validate dữ liệu đầu vào với validator từ global (struct tag validate)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return h.ValidateInput(input)
}

// ParseFormBody parse và validate dữ liệu từ multipart/form-data hoặc form-urlencoded body.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseFormBody(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().Body(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return h.ValidateInput(input)
}

// ParsePagination lấy page và limit từ query string với giá trị mặc định page=1, limit=10
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page <= 0 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}

	return page, limit
}

// GetIDFromContext lấy ID từ URI params của request.
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetIDFromContext(c fiber.Ctx) string {
	return c.Params("id")
}

// ParseObjectIDParam lấy và validate một ObjectID từ URI params.
// Trả về lỗi VAL_002 nếu param rỗng hoặc không đúng định dạng hex.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	raw := c.Params(name)
	if raw == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu tham số "+name,
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(raw) {
		return primitive.NilObjectID, common.ErrInvalidObjectID
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidObjectID
	}
	return id, nil
}

// RequireUserID lấy user_id từ context (đã được AuthMiddleware set).
// Trả về lỗi 401 nếu không có.
func (h *BaseHandler[T, CreateInput, UpdateInput]) RequireUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return id, nil
}

// RequireFormFile lấy một file bắt buộc từ multipart form.
func (h *BaseHandler[T, CreateInput, UpdateInput]) RequireFormFile(c fiber.Ctx, name string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(name)
	if err != nil || file == nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu file "+name,
			common.StatusBadRequest,
			err,
		)
	}
	return file, nil
}

// OptionalFormFile lấy một file không bắt buộc từ multipart form, trả về nil nếu không có.
func (h *BaseHandler[T, CreateInput, UpdateInput]) OptionalFormFile(c fiber.Ctx, name string) *multipart.FileHeader {
	file, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return file
}
