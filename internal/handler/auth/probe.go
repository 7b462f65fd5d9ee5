// File: internal/handler/auth/probe.go
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProbeResponse 閘門探測回應
// swagger:model ProbeResponse
type ProbeResponse struct {
	OK bool `json:"ok" example:"true"`
}

// ProbeHandler 供前端確認閘門通過與否，掛在 RequireSignIn / RequireAdmin 之後
// @Summary     Auth probe
// @Description 通過前置閘門即回傳 ok
// @Tags        auth
// @Produce     json
// @Success     200 {object} ProbeResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/user-auth [get]
func ProbeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, ProbeResponse{OK: true})
	}
}
