package store

import (
	"context"
	"errors"
	"testing"

	"gocart/internal/database"
	"gocart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestCategoryStore(t *testing.T) {
	sample := model.Category{ID: 3, Name: "Smartphones", Slug: "smartphones"}

	t.Run("Create ok", func(t *testing.T) {
		c := model.Category{Name: "Smartphones", Slug: "smartphones"}
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{"Smartphones", "smartphones"}, args)
				return &fakeRow{vals: []any{3}}
			},
		}
		got, err := CreateCategory(context.Background(), p, &c)
		require.NoError(t, err)
		require.Equal(t, 3, got.ID)
	})

	t.Run("Create err", func(t *testing.T) {
		c := sample
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("dup")}
			},
		}
		_, err := CreateCategory(context.Background(), p, &c)
		require.Error(t, err)
	})

	t.Run("Update ok", func(t *testing.T) {
		c := sample
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{"Smartphones", "smartphones", 3}, args)
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, UpdateCategory(context.Background(), p, &c))
	})

	t.Run("Update err", func(t *testing.T) {
		c := sample
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("fail")
			},
		}
		require.Error(t, UpdateCategory(context.Background(), p, &c))
	})

	t.Run("List ok", func(t *testing.T) {
		rows := &fakeRows{data: [][]any{
			{1, "Books", "books"},
			{2, "Games", "games"},
		}}
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return rows, nil
			},
		}
		list, err := ListCategories(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "books", list[0].Slug)
	})

	t.Run("List query err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("database fail")
			},
		}
		_, err := ListCategories(context.Background(), p)
		require.Error(t, err)
	})

	t.Run("List scan err", func(t *testing.T) {
		rows := &fakeRows{data: [][]any{{1, "Books", "books"}}, scanErr: errors.New("scan")}
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return rows, nil
			},
		}
		_, err := ListCategories(context.Background(), p)
		require.Error(t, err)
	})

	t.Run("GetBySlug ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{"smartphones"}, args)
				return &fakeRow{vals: []any{3, "Smartphones", "smartphones"}}
			},
		}
		got, err := GetCategoryBySlug(context.Background(), p, "smartphones")
		require.NoError(t, err)
		require.Equal(t, sample, *got)
	})

	t.Run("GetBySlug miss", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetCategoryBySlug(context.Background(), p, "nope")
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("Delete ok", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{3}, args)
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, DeleteCategory(context.Background(), p, 3))
	})

	t.Run("Delete err", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("fail")
			},
		}
		require.Error(t, DeleteCategory(context.Background(), p, 3))
	})
}
