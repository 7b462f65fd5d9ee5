package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"gocart/internal/database"
	"gocart/internal/model"
	"gocart/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const loginBody = `{"email":"u@x.com","password":"secret1"}`

func TestLoginHandler(t *testing.T) {
	t.Cleanup(restore)
	tokens, err := service.NewTokenService("testsecret", time.Minute)
	require.NoError(t, err)

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newJSONCtx(e, "")
	require.NoError(t, LoginHandler(&database.FakeDB{}, tokens)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newJSONCtx(e, loginBody)
	require.NoError(t, LoginHandler(&database.FakeDB{}, tokens)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown email
	e = echo.New()
	e.Validator = okValidator{}
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, fmt.Errorf("GetUserByEmail: %w", pgx.ErrNoRows)
	}
	ctx, rec = newJSONCtx(e, loginBody)
	require.NoError(t, LoginHandler(&database.FakeDB{}, tokens)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Email is not registered")

	// lookup failure
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return nil, errors.New("db down")
	}
	ctx, rec = newJSONCtx(e, loginBody)
	require.NoError(t, LoginHandler(&database.FakeDB{}, tokens)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// wrong password, no token in response
	hash, err := service.HashPassword("other")
	require.NoError(t, err)
	getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
		return &model.User{ID: 1, Email: "u@x.com", PasswordHash: hash}, nil
	}
	ctx, rec = newJSONCtx(e, loginBody)
	require.NoError(t, LoginHandler(&database.FakeDB{}, tokens)(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid Password")
	require.NotContains(t, rec.Body.String(), "access_token")

	// success
	goodHash, err := service.HashPassword("secret1")
	require.NoError(t, err)
	getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
		require.Equal(t, "u@x.com", email)
		return &model.User{ID: 1, Email: "u@x.com", PasswordHash: goodHash, Role: model.RoleUser}, nil
	}
	ctx, rec = newJSONCtx(e, loginBody)
	require.NoError(t, LoginHandler(&database.FakeDB{}, tokens)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "access_token")
	require.Contains(t, rec.Body.String(), "expires_at")
	require.Contains(t, rec.Body.String(), "u@x.com")
}
