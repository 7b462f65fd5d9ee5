// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"

	"gocart/internal/api"
	"gocart/internal/database"
	"gocart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立新帳號
// @Summary     Register a new user
// @Description 接收註冊資料並建立新帳號，email 不可重複
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// email 唯一性檢查
		if _, err := getUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "Already registered, please login"})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error in registration"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user := &model.User{
			Name:           req.Name,
			Email:          req.Email,
			PasswordHash:   hash,
			Phone:          req.Phone,
			Address:        req.Address,
			DOB:            req.DOB,
			SecurityAnswer: req.Answer,
			Role:           model.RoleUser,
		}

		created, err := createUser(c.Request().Context(), db, user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error in registration"})
		}

		return c.JSON(http.StatusCreated, api.UserResponse{
			ID:        created.ID,
			Name:      created.Name,
			Email:     created.Email,
			Phone:     created.Phone,
			Address:   created.Address,
			Role:      created.Role,
			CreatedAt: created.CreatedAt,
		})
	}
}
