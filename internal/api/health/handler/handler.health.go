// Package healthhdl xử lý healthcheck của service.
package healthhdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	basehdl "github.com/yuvraj3121/yt-backend/internal/api/base/handler"
	"github.com/yuvraj3121/yt-backend/internal/common"
	"github.com/yuvraj3121/yt-backend/internal/global"
	"github.com/yuvraj3121/yt-backend/internal/utility"
)

// HealthHandler xử lý các request healthcheck
type HealthHandler struct{}

// NewHealthHandler tạo instance mới của HealthHandler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HandleHealthCheck trả về trạng thái hoạt động của service và kết nối MongoDB
func (h *HealthHandler) HandleHealthCheck(c fiber.Ctx) error {
	dbStatus := "up"
	if global.MongoDB_Session != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := global.MongoDB_Session.Ping(ctx, readpref.Primary()); err != nil {
			dbStatus = "down"
		}
	} else {
		dbStatus = "down"
	}

	data := fiber.Map{
		"service":   "ok",
		"database":  dbStatus,
		"timestamp": utility.CurrentTimeInMilli(),
	}

	if dbStatus != "up" {
		return basehdl.JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
			"code":    common.StatusServiceUnavailable,
			"message": "Service không sẵn sàng",
			"data":    data,
			"status":  "error",
		})
	}

	return basehdl.SuccessResponse(c, common.StatusOK, common.MsgSuccess, data)
}
