// Package middleware chứa các middleware dùng chung của API.
package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yuvraj3121/yt-backend/config"
	models "github.com/yuvraj3121/yt-backend/internal/api/auth/models"
	basehdl "github.com/yuvraj3121/yt-backend/internal/api/base/handler"
	basesvc "github.com/yuvraj3121/yt-backend/internal/api/base/service"
	"github.com/yuvraj3121/yt-backend/internal/common"
	"github.com/yuvraj3121/yt-backend/internal/global"
	"github.com/yuvraj3121/yt-backend/internal/logger"
	"github.com/yuvraj3121/yt-backend/internal/utility"
)

// extractToken lấy access token từ cookie trước, sau đó đến Authorization header (Bearer).
func extractToken(c fiber.Ctx) string {
	if token := c.Cookies("accessToken"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthMiddleware middleware xác thực cho Fiber: verify access token,
// load user và lưu user_id + user vào context.
func AuthMiddleware(cfg *config.Configuration) (fiber.Handler, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	userCRUD := basesvc.NewBaseServiceMongo[models.User](userCollection)

	return func(c fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("AuthMiddleware: Thiếu access token")
			return basehdl.ErrorResponse(c, common.ErrTokenMissing)
		}

		claims := &models.AccessTokenClaims{}
		if err := utility.ParseToken(cfg.AccessTokenSecret, token, claims); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("AuthMiddleware: Token không hợp lệ")
			return basehdl.ErrorResponse(c, err)
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
		}

		user, err := userCRUD.FindOneById(c.Context(), userID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":    c.Path(),
				"user_id": claims.UserID,
			}).Warn("AuthMiddleware: User của token không tồn tại")
			return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
		}

		user.Password = ""
		user.RefreshToken = ""
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		return c.Next()
	}, nil
}
