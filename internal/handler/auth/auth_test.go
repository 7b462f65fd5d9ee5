package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gocart/internal/service"
	"gocart/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

/* ---------- 共用測試工具 ---------- */

func restore() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	createUser = store.CreateUser
	getUserByID = store.GetUserByID
	getUserByEmail = store.GetUserByEmail
	getUserByEmailAndAnswer = store.GetUserByEmailAndAnswer
	updateUserProfile = store.UpdateUserProfile
	updateUserPassword = store.UpdateUserPassword
}

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func TestProbeHandler(t *testing.T) {
	e := echo.New()
	ctx, rec := newJSONCtx(e, "")
	require.NoError(t, ProbeHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"ok":true`)
}
