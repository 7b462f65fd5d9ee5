package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gocart/internal/database"
	"gocart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestForgotPasswordHandler(t *testing.T) {
	t.Cleanup(restore)
	e := echo.New()
	h := ForgotPasswordHandler(&database.FakeDB{})

	// bind error
	be := echo.New()
	be.Binder = errBinder{}
	ctx, rec := newJSONCtx(be, "")
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 欄位檢查順序：email → answer → new_password
	ctx, rec = newJSONCtx(e, `{}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Email is required")

	ctx, rec = newJSONCtx(e, `{"email":"u@x.com"}`)
	require.NoError(t, h(ctx))
	require.Contains(t, rec.Body.String(), "Answer is required")

	ctx, rec = newJSONCtx(e, `{"email":"u@x.com","answer":"Soccer"}`)
	require.NoError(t, h(ctx))
	require.Contains(t, rec.Body.String(), "New Password is required")

	// 過短的新密碼
	ctx, rec = newJSONCtx(e, `{"email":"u@x.com","answer":"Soccer","new_password":"12345"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Password must be at least 6 characters long")

	validBody := `{"email":"u@x.com","answer":"Soccer","new_password":"123456"}`

	// email 或答案錯誤回同一訊息
	getUserByEmailAndAnswer = func(context.Context, database.DB, string, string) (*model.User, error) {
		return nil, fmt.Errorf("GetUserByEmailAndAnswer: %w", pgx.ErrNoRows)
	}
	ctx, rec = newJSONCtx(e, validBody)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Wrong Email Or Answer")

	// lookup failure
	getUserByEmailAndAnswer = func(context.Context, database.DB, string, string) (*model.User, error) {
		return nil, errors.New("db down")
	}
	ctx, rec = newJSONCtx(e, validBody)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// hash failure
	getUserByEmailAndAnswer = func(_ context.Context, _ database.DB, email, answer string) (*model.User, error) {
		require.Equal(t, "u@x.com", email)
		require.Equal(t, "Soccer", answer)
		return &model.User{ID: 3}, nil
	}
	hashPassword = func(string) (string, error) { return "", errors.New("gen") }
	ctx, rec = newJSONCtx(e, validBody)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// update failure
	hashPassword = func(string) (string, error) { return "newhash", nil }
	updateUserPassword = func(context.Context, database.DB, int, string) error {
		return errors.New("fail")
	}
	ctx, rec = newJSONCtx(e, validBody)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	var gotID int
	var gotHash string
	updateUserPassword = func(_ context.Context, _ database.DB, id int, hash string) error {
		gotID = id
		gotHash = hash
		return nil
	}
	ctx, rec = newJSONCtx(e, validBody)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Password Reset Successfully")
	require.Equal(t, 3, gotID)
	require.Equal(t, "newhash", gotHash)
}
