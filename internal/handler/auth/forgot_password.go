// File: internal/handler/auth/forgot_password.go
package auth

import (
	"errors"
	"net/http"

	"gocart/internal/api"
	"gocart/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// ForgotPasswordHandler 以 email + 安全提問答案重設密碼
// 欄位檢查順序固定：email → answer → new_password
// email 與 answer 以單一查詢同時比對，任一不符皆回傳相同訊息（防列舉）
// @Summary     Reset password via security answer
// @Description 驗證 email 與安全提問答案後重設密碼
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.ForgotPasswordRequest true "帳號救援資料"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/forgot-password [post]
func ForgotPasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ForgotPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if req.Email == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Email is required"})
		}
		if req.Answer == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Answer is required"})
		}
		if req.NewPassword == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "New Password is required"})
		}
		if len(req.NewPassword) < MinPasswordLength {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Password must be at least 6 characters long"})
		}

		user, err := getUserByEmailAndAnswer(c.Request().Context(), db, req.Email, req.Answer)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "Wrong Email Or Answer"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Something went wrong"})
		}

		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		if err := updateUserPassword(c.Request().Context(), db, user.ID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Something went wrong"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Password Reset Successfully"})
	}
}
