// Package authhdl xử lý các request xác thực và quản lý người dùng.
package authhdl

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/yuvraj3121/yt-backend/config"
	authdto "github.com/yuvraj3121/yt-backend/internal/api/auth/dto"
	models "github.com/yuvraj3121/yt-backend/internal/api/auth/models"
	authsvc "github.com/yuvraj3121/yt-backend/internal/api/auth/service"
	basehdl "github.com/yuvraj3121/yt-backend/internal/api/base/handler"
	"github.com/yuvraj3121/yt-backend/internal/common"
	"github.com/yuvraj3121/yt-backend/internal/media"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserRegisterInput, authdto.UpdateAccountInput]
	userService *authsvc.UserService
	cfg         *config.Configuration
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler(cfg *config.Configuration, storage media.Storage) (*UserHandler, error) {
	userService, err := authsvc.NewUserService(cfg, storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserRegisterInput, authdto.UpdateAccountInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
		cfg:         cfg,
	}, nil
}

// setTokenCookies ghi access token và refresh token vào cookie httpOnly.
func (h *UserHandler) setTokenCookies(c fiber.Ctx, tokens *models.TokenPair) {
	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    tokens.AccessToken,
		Expires:  time.Now().Add(time.Duration(h.cfg.AccessTokenExpiry) * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    tokens.RefreshToken,
		Expires:  time.Now().Add(time.Duration(h.cfg.RefreshTokenExpiry) * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
	})
}

// clearTokenCookies xóa cookie token khi đăng xuất.
func (h *UserHandler) clearTokenCookies(c fiber.Ctx) {
	for _, name := range []string{"accessToken", "refreshToken"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   h.cfg.CookieSecure,
		})
	}
}

// HandleRegister xử lý đăng ký người dùng mới (multipart form: avatar bắt buộc, coverImage tùy chọn)
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserRegisterInput
		if err := h.ParseFormBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		avatarFile, err := h.RequireFormFile(c, "avatar")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		avatar, closeAvatar, err := media.UploadInputFromFileHeader(media.KindImage, avatarFile)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		defer closeAvatar()

		var coverImage *media.UploadInput
		if coverFile := h.OptionalFormFile(c, "coverImage"); coverFile != nil {
			var closeCover func()
			coverImage, closeCover, err = media.UploadInputFromFileHeader(media.KindImage, coverFile)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			defer closeCover()
		}

		user, err := h.userService.Register(c.Context(), &input, avatar, coverImage)
		h.HandleCreatedResponse(c, user, err)
		return nil
	})
}

// HandleLogin xử lý đăng nhập bằng username hoặc email
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if input.Username == "" && input.Email == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Cần username hoặc email để đăng nhập", common.StatusBadRequest, nil))
			return nil
		}

		user, tokens, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.setTokenCookies(c, tokens)
		h.HandleResponse(c, fiber.Map{
			"user":         user,
			"accessToken":  tokens.AccessToken,
			"refreshToken": tokens.RefreshToken,
		}, nil)
		return nil
	})
}

// HandleLogout xử lý đăng xuất: xóa refresh token đã lưu và cookie
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.userService.Logout(c.Context(), userID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.clearTokenCookies(c)
		h.HandleResponse(c, nil, nil)
		return nil
	})
}

// HandleRefreshToken cấp lại cặp token từ refresh token (cookie hoặc body)
func (h *UserHandler) HandleRefreshToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		rawToken := c.Cookies("refreshToken")
		if rawToken == "" {
			var input authdto.RefreshTokenInput
			if err := h.ParseRequestBody(c, &input); err == nil {
				rawToken = input.RefreshToken
			}
		}
		if rawToken == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		tokens, err := h.userService.RefreshTokens(c.Context(), rawToken)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.setTokenCookies(c, tokens)
		h.HandleResponse(c, tokens, nil)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của người dùng hiện tại
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.ChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.userService.ChangePassword(c.Context(), userID, &input)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetCurrentUser trả về thông tin người dùng hiện tại
func (h *UserHandler) HandleGetCurrentUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.GetCurrentUser(c.Context(), userID)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateAccount cập nhật fullname và email của người dùng hiện tại
func (h *UserHandler) HandleUpdateAccount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UpdateAccountInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.UpdateAccount(c.Context(), userID, &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// handleUpdateImage dùng chung cho cập nhật avatar và coverImage.
func (h *UserHandler) handleUpdateImage(c fiber.Ctx, fieldName string, update func(c fiber.Ctx, upload *media.UploadInput) (*models.User, error)) error {
	return h.SafeHandler(c, func() error {
		file, err := h.RequireFormFile(c, fieldName)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		upload, closeFile, err := media.UploadInputFromFileHeader(media.KindImage, file)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		defer closeFile()

		user, err := update(c, upload)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateAvatar thay avatar của người dùng hiện tại
func (h *UserHandler) HandleUpdateAvatar(c fiber.Ctx) error {
	return h.handleUpdateImage(c, "avatar", func(c fiber.Ctx, upload *media.UploadInput) (*models.User, error) {
		userID, err := h.RequireUserID(c)
		if err != nil {
			return nil, err
		}
		return h.userService.UpdateAvatar(c.Context(), userID, upload)
	})
}

// HandleUpdateCoverImage thay ảnh bìa của người dùng hiện tại
func (h *UserHandler) HandleUpdateCoverImage(c fiber.Ctx) error {
	return h.handleUpdateImage(c, "coverImage", func(c fiber.Ctx, upload *media.UploadInput) (*models.User, error) {
		userID, err := h.RequireUserID(c)
		if err != nil {
			return nil, err
		}
		return h.userService.UpdateCoverImage(c.Context(), userID, upload)
	})
}

// HandleGetChannelProfile trả về profile công khai của một kênh theo username
func (h *UserHandler) HandleGetChannelProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		username := strings.ToLower(strings.TrimSpace(c.Params("username")))
		if username == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số username", common.StatusBadRequest, nil))
			return nil
		}

		profile, err := h.userService.GetChannelProfile(c.Context(), username, userID)
		h.HandleResponse(c, profile, err)
		return nil
	})
}

// HandleGetWatchHistory trả về lịch sử xem của người dùng hiện tại
func (h *UserHandler) HandleGetWatchHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		history, err := h.userService.GetWatchHistory(c.Context(), userID)
		h.HandleResponse(c, history, err)
		return nil
	})
}
