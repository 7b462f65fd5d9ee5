package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"gocart/internal/database"
	"gocart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func productRowVals(p model.Product) []any {
	return []any{p.ID, p.Name, p.Slug, p.Description, p.Price, p.CategoryID, p.CategoryName, p.Quantity, p.Shipping, p.CreatedAt}
}

func TestProductStore(t *testing.T) {
	now := time.Now().UTC()
	sample := model.Product{
		ID:           10,
		Name:         "Apple iPhone",
		Slug:         "apple-iphone",
		Description:  "Latest Apple iPhone",
		Price:        999,
		CategoryID:   3,
		CategoryName: "Smartphones",
		Quantity:     5,
		Shipping:     true,
		CreatedAt:    now,
	}

	t.Run("Create ok", func(t *testing.T) {
		p := sample
		p.ID = 0
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Len(t, args, 7)
				return &fakeRow{vals: []any{10, now}}
			},
		}
		got, err := CreateProduct(context.Background(), db, &p)
		require.NoError(t, err)
		require.Equal(t, 10, got.ID)
	})

	t.Run("Create err", func(t *testing.T) {
		p := sample
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("dup")}
			},
		}
		_, err := CreateProduct(context.Background(), db, &p)
		require.Error(t, err)
	})

	t.Run("Update ok", func(t *testing.T) {
		p := sample
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Len(t, args, 8)
				require.Equal(t, 10, args[7])
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, UpdateProduct(context.Background(), db, &p))
	})

	t.Run("Delete err", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("fail")
			},
		}
		require.Error(t, DeleteProduct(context.Background(), db, 10))
	})

	t.Run("List ok", func(t *testing.T) {
		rows := &fakeRows{data: [][]any{productRowVals(sample), productRowVals(sample)}}
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return rows, nil
			},
		}
		list, err := ListProducts(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Smartphones", list[0].CategoryName)
	})

	t.Run("GetByID ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{10}, args)
				return &fakeRow{vals: productRowVals(sample)}
			},
		}
		got, err := GetProductByID(context.Background(), db, 10)
		require.NoError(t, err)
		require.Equal(t, sample, *got)
	})

	t.Run("GetBySlug miss", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetProductBySlug(context.Background(), db, "nope")
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("Search passes keyword", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "ILIKE")
				require.Equal(t, []any{"phone"}, args)
				return &fakeRows{data: [][]any{productRowVals(sample)}}, nil
			},
		}
		list, err := SearchProducts(context.Background(), db, "phone")
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("Filter no conditions", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.NotContains(t, sql, "WHERE")
				require.Empty(t, args)
				return &fakeRows{}, nil
			},
		}
		_, err := FilterProducts(context.Background(), db, nil, 0, 0)
		require.NoError(t, err)
	})

	t.Run("Filter categories only", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "category_id = ANY($1)")
				require.Equal(t, []any{[]int{1, 2}}, args)
				return &fakeRows{}, nil
			},
		}
		_, err := FilterProducts(context.Background(), db, []int{1, 2}, 0, 0)
		require.NoError(t, err)
	})

	t.Run("Filter price only", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "price BETWEEN $1 AND $2")
				require.Equal(t, []any{0.0, 999.0}, args)
				return &fakeRows{}, nil
			},
		}
		_, err := FilterProducts(context.Background(), db, nil, 0, 999)
		require.NoError(t, err)
	})

	t.Run("Filter min price only", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "price >= $1")
				require.NotContains(t, sql, "BETWEEN")
				require.Equal(t, []any{50.0}, args)
				return &fakeRows{}, nil
			},
		}
		_, err := FilterProducts(context.Background(), db, nil, 50, 0)
		require.NoError(t, err)
	})

	t.Run("Filter both", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "category_id = ANY($1)")
				require.Contains(t, sql, "price BETWEEN $2 AND $3")
				require.Len(t, args, 3)
				return &fakeRows{}, nil
			},
		}
		_, err := FilterProducts(context.Background(), db, []int{1}, 10, 100)
		require.NoError(t, err)
	})

	t.Run("ByCategory ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, []any{3}, args)
				return &fakeRows{data: [][]any{productRowVals(sample)}}, nil
			},
		}
		list, err := ListProductsByCategory(context.Background(), db, 3)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("Related passes limit and exclusion", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "p.id <> $2")
				require.Equal(t, []any{3, 10, 3}, args)
				return &fakeRows{data: [][]any{productRowVals(sample)}}, nil
			},
		}
		list, err := ListRelatedProducts(context.Background(), db, 3, 10, 3)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("query err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("database fail")
			},
		}
		_, err := ListProducts(context.Background(), db)
		require.Error(t, err)
		_, err = SearchProducts(context.Background(), db, "x")
		require.Error(t, err)
		_, err = ListProductsByCategory(context.Background(), db, 1)
		require.Error(t, err)
		_, err = ListRelatedProducts(context.Background(), db, 1, 2, 3)
		require.Error(t, err)
	})

	t.Run("rows err surfaces", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{err: errors.New("closed")}, nil
			},
		}
		_, err := ListProducts(context.Background(), db)
		require.Error(t, err)
	})
}
