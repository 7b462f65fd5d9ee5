// File: internal/handler/auth/profile.go
package auth

import (
	"net/http"

	"gocart/internal/api"
	"gocart/internal/database"
	"gocart/internal/middleware"
	"gocart/internal/service"

	"github.com/labstack/echo/v4"
)

// UpdateProfileHandler 更新當前使用者個人資料
// 採部分更新語意：只變更有帶值的欄位，其餘維持原值
// @Summary     Update own profile
// @Description 更新當前使用者的個人資料，密碼如有帶值需至少 6 字元
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.UpdateProfileRequest true "更新欄位"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/profile [put]
func UpdateProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}

		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		// 密碼長度檢查先於任何寫入
		if req.Password != "" && len(req.Password) < MinPasswordLength {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Password must be at least 6 characters long"})
		}

		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while updating profile"})
		}

		if req.Name != "" {
			user.Name = req.Name
		}
		if req.Email != "" {
			user.Email = req.Email
		}
		if req.Phone != "" {
			user.Phone = req.Phone
		}
		if req.Address != "" {
			user.Address = req.Address
		}
		if req.Password != "" {
			hash, err := hashPassword(req.Password)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
			}
			user.PasswordHash = hash
		}

		if err := updateUserProfile(c.Request().Context(), db, user); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error while updating profile"})
		}

		return c.JSON(http.StatusOK, api.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Phone:     user.Phone,
			Address:   user.Address,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		})
	}
}
