// Package userhdl - HTTP handler cho domain user.
package userhdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "vid_tube/internal/api/base/handler"
	userdto "vid_tube/internal/api/user/dto"
	usersvc "vid_tube/internal/api/user/service"
	"vid_tube/internal/common"
	"vid_tube/internal/global"
	"vid_tube/internal/logger"
)

// UserHandler xử lý các request liên quan đến người dùng
type UserHandler struct {
	basehdl.BaseHandler
	service *usersvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler() (*UserHandler, error) {
	service, err := usersvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &UserHandler{service: service}, nil
}

// setTokenCookies gắn cặp token vào cookie httpOnly
func (h *UserHandler) setTokenCookies(c fiber.Ctx, accessToken, refreshToken string) {
	cfg := global.MongoDB_ServerConfig
	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		Expires:  time.Now().Add(time.Duration(cfg.AccessTokenExpiry) * time.Minute),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		Expires:  time.Now().Add(time.Duration(cfg.RefreshTokenExpiry) * time.Minute),
	})
}

func (h *UserHandler) clearTokenCookies(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{Name: "accessToken", Value: "", HTTPOnly: true, Secure: true, Expires: time.Now().Add(-time.Hour)})
	c.Cookie(&fiber.Cookie{Name: "refreshToken", Value: "", HTTPOnly: true, Secure: true, Expires: time.Now().Add(-time.Hour)})
}

// Register đăng ký tài khoản mới
// POST /api/v1/users/register
func (h *UserHandler) Register(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(userdto.UserRegisterInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.service.Register(c.Context(), input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAuth("register", c, map[string]interface{}{"user_id": user.ID.Hex()})
		h.HandleCreated(c, user)
		return nil
	})
}

// Login đăng nhập bằng username hoặc email
// POST /api/v1/users/login
func (h *UserHandler) Login(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(userdto.UserLoginInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, accessToken, refreshToken, err := h.service.Login(c.Context(), input)
		if err != nil {
			logger.LogAuth("login_failed", c, map[string]interface{}{"username": input.Username})
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.setTokenCookies(c, accessToken, refreshToken)
		logger.LogAuth("login", c, map[string]interface{}{"user_id": user.ID.Hex()})
		h.HandleResponse(c, userdto.LoginResult{
			User:         user,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		}, nil)
		return nil
	})
}

// Logout đăng xuất, thu hồi refresh token và xóa cookie
// POST /api/v1/users/logout
func (h *UserHandler) Logout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.service.Logout(c.Context(), userID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.clearTokenCookies(c)
		logger.LogAuth("logout", c, map[string]interface{}{"user_id": userID.Hex()})
		h.HandleResponse(c, nil, nil)
		return nil
	})
}

// RefreshToken phát hành cặp token mới từ refresh token (cookie hoặc body)
// POST /api/v1/users/refresh-token
func (h *UserHandler) RefreshToken(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		refreshToken := c.Cookies("refreshToken")
		if refreshToken == "" {
			input := new(userdto.RefreshTokenInput)
			if err := h.ParseRequestBody(c, input); err == nil {
				refreshToken = input.RefreshToken
			}
		}

		accessToken, newRefreshToken, err := h.service.RefreshTokens(c.Context(), refreshToken)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.setTokenCookies(c, accessToken, newRefreshToken)
		h.HandleResponse(c, userdto.TokenPairResult{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
		}, nil)
		return nil
	})
}

// ChangePassword đổi mật khẩu của user hiện tại
// POST /api/v1/users/change-password
func (h *UserHandler) ChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(userdto.ChangePasswordInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.service.ChangePassword(c.Context(), userID, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, nil, nil)
		return nil
	})
}

// CurrentUser trả về thông tin user đang đăng nhập
// GET /api/v1/users/current-user
func (h *UserHandler) CurrentUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.service.FindOneById(c.Context(), userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user.Password = ""
		user.RefreshToken = ""
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// UpdateAccount cập nhật fullName/email của user hiện tại
// PATCH /api/v1/users/update-account
func (h *UserHandler) UpdateAccount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(userdto.UpdateAccountInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.service.UpdateAccount(c.Context(), userID, input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// UpdateAvatar cập nhật URL avatar
// PATCH /api/v1/users/avatar
func (h *UserHandler) UpdateAvatar(c fiber.Ctx) error {
	return h.updateImage(c, func(c fiber.Ctx, input *userdto.UpdateImageInput) error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			return err
		}
		user, err := h.service.UpdateAvatar(c.Context(), userID, input.URL)
		if err != nil {
			return err
		}
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// UpdateCoverImage cập nhật URL ảnh bìa
// PATCH /api/v1/users/cover-image
func (h *UserHandler) UpdateCoverImage(c fiber.Ctx) error {
	return h.updateImage(c, func(c fiber.Ctx, input *userdto.UpdateImageInput) error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			return err
		}
		user, err := h.service.UpdateCoverImage(c.Context(), userID, input.URL)
		if err != nil {
			return err
		}
		h.HandleResponse(c, user, nil)
		return nil
	})
}

func (h *UserHandler) updateImage(c fiber.Ctx, apply func(fiber.Ctx, *userdto.UpdateImageInput) error) error {
	return h.SafeHandler(c, func() error {
		input := new(userdto.UpdateImageInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := apply(c, input); err != nil {
			h.HandleResponse(c, nil, err)
		}
		return nil
	})
}

// ChannelProfile trả về hồ sơ kênh theo username dưới góc nhìn của viewer
// GET /api/v1/users/c/:username
func (h *UserHandler) ChannelProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		username := c.Params("username")
		if username == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu username", common.StatusBadRequest, nil))
			return nil
		}

		profile, err := h.service.GetChannelProfile(c.Context(), username, h.GetViewerID(c))
		h.HandleResponse(c, profile, err)
		return nil
	})
}

// WatchHistory trả về lịch sử xem của user hiện tại
// GET /api/v1/users/history
func (h *UserHandler) WatchHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.RequireUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		history, err := h.service.GetWatchHistory(c.Context(), userID)
		h.HandleResponse(c, history, err)
		return nil
	})
}
