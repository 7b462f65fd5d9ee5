package middleware

import (
	"net/http"
	"strings"

	"gocart/internal/database"
	"gocart/internal/model"
	"gocart/internal/service"
	"gocart/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// 測試用接縫
var getUserByID = store.GetUserByID

func extractClaims(c echo.Context, tokens *service.TokenService) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: No token provided")
	}
	// 接受裸令牌或 "Bearer <token>" 形式
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	claims, err := tokens.Verify(tokenString)
	if err != nil {
		// 細部原因（過期、格式錯誤、簽章不符）僅記錄，不回傳給客戶端
		c.Logger().Warnf("token verification failed: %v", err)
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: Invalid token")
	}
	return claims, nil
}

// RequireSignIn 驗證請求攜帶的存取令牌，成功後把 claims 放入 context
func RequireSignIn(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin 先驗證令牌，再以資料庫中的角色做即時檢查
// 角色一律從資料庫重讀，不信任令牌內嵌的 role（降級須立即生效）
func RequireAdmin(tokens *service.TokenService, db database.DB) echo.MiddlewareFunc {
	signIn := RequireSignIn(tokens)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return signIn(func(c echo.Context) error {
			claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
			if !ok || claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized: User not found")
			}
			user, err := getUserByID(c.Request().Context(), db, claims.UserID)
			if err != nil {
				c.Logger().Errorf("admin role lookup failed: %v", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "Error in admin middleware")
			}
			if user.Role != model.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		})
	}
}
