package store

import (
	"context"
	"fmt"

	"gocart/internal/database"
	"gocart/internal/model"

	"github.com/jackc/pgx/v5"
)

const productColumns = `p.id, p.name, p.slug, p.description, p.price, p.category_id, c.name, p.quantity, p.shipping, p.created_at`

const productFrom = ` FROM products p JOIN categories c ON c.id = p.category_id`

func scanProduct(row interface{ Scan(dest ...any) error }) (*model.Product, error) {
	p := &model.Product{}
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.Price,
		&p.CategoryID,
		&p.CategoryName,
		&p.Quantity,
		&p.Shipping,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()
	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (name, slug, description, price, category_id, quantity, shipping)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		p.Name,
		p.Slug,
		p.Description,
		p.Price,
		p.CategoryID,
		p.Quantity,
		p.Shipping,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	return p, nil
}

func UpdateProduct(ctx context.Context, db database.DB, p *model.Product) error {
	_, err := db.Exec(ctx,
		`UPDATE products
		 SET name = $1, slug = $2, description = $3, price = $4, category_id = $5, quantity = $6, shipping = $7
		 WHERE id = $8`,
		p.Name,
		p.Slug,
		p.Description,
		p.Price,
		p.CategoryID,
		p.Quantity,
		p.Shipping,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProduct: %w", err)
	}
	return nil
}

func DeleteProduct(ctx context.Context, db database.DB, id int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM products WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	return nil
}

func ListProducts(ctx context.Context, db database.DB) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT `+productColumns+productFrom+` ORDER BY p.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

func GetProductByID(ctx context.Context, db database.DB, id int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT `+productColumns+productFrom+` WHERE p.id = $1`,
		id,
	)
	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("GetProductByID: %w", err)
	}
	return p, nil
}

func GetProductBySlug(ctx context.Context, db database.DB, slug string) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT `+productColumns+productFrom+` WHERE p.slug = $1`,
		slug,
	)
	p, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("GetProductBySlug: %w", err)
	}
	return p, nil
}

// SearchProducts 以關鍵字比對商品名稱或描述（不分大小寫）
func SearchProducts(ctx context.Context, db database.DB, keyword string) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT `+productColumns+productFrom+`
		 WHERE p.name ILIKE '%' || $1 || '%' OR p.description ILIKE '%' || $1 || '%'
		 ORDER BY p.created_at DESC`,
		keyword,
	)
	if err != nil {
		return nil, fmt.Errorf("SearchProducts: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("SearchProducts: %w", err)
	}
	return products, nil
}

// FilterProducts 依分類集合與價格區間篩選，兩者皆可省略
// 只給下限時以 >= 篩選，不會因上限缺席而忽略價格條件
func FilterProducts(ctx context.Context, db database.DB, categoryIDs []int, minPrice, maxPrice float64) ([]model.Product, error) {
	query := `SELECT ` + productColumns + productFrom
	var args []any
	var conds []string
	if len(categoryIDs) > 0 {
		args = append(args, categoryIDs)
		conds = append(conds, fmt.Sprintf("p.category_id = ANY($%d)", len(args)))
	}
	switch {
	case maxPrice > 0:
		args = append(args, minPrice, maxPrice)
		conds = append(conds, fmt.Sprintf("p.price BETWEEN $%d AND $%d", len(args)-1, len(args)))
	case minPrice > 0:
		args = append(args, minPrice)
		conds = append(conds, fmt.Sprintf("p.price >= $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("FilterProducts: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("FilterProducts: %w", err)
	}
	return products, nil
}

func ListProductsByCategory(ctx context.Context, db database.DB, categoryID int) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT `+productColumns+productFrom+` WHERE p.category_id = $1 ORDER BY p.created_at DESC`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProductsByCategory: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("ListProductsByCategory: %w", err)
	}
	return products, nil
}

// ListRelatedProducts 取得同分類下的其他商品，最多 limit 筆
func ListRelatedProducts(ctx context.Context, db database.DB, categoryID, excludeProductID, limit int) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT `+productColumns+productFrom+`
		 WHERE p.category_id = $1 AND p.id <> $2
		 ORDER BY p.created_at DESC
		 LIMIT $3`,
		categoryID,
		excludeProductID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRelatedProducts: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("ListRelatedProducts: %w", err)
	}
	return products, nil
}
