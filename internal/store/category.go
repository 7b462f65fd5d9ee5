package store

import (
	"context"
	"fmt"

	"gocart/internal/database"
	"gocart/internal/model"
)

func CreateCategory(ctx context.Context, db database.DB, c *model.Category) (*model.Category, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO categories (name, slug)
		 VALUES ($1, $2)
		 RETURNING id`,
		c.Name,
		c.Slug,
	)
	if err := row.Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("CreateCategory: %w", err)
	}
	return c, nil
}

func UpdateCategory(ctx context.Context, db database.DB, c *model.Category) error {
	_, err := db.Exec(ctx,
		`UPDATE categories SET name = $1, slug = $2 WHERE id = $3`,
		c.Name,
		c.Slug,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateCategory: %w", err)
	}
	return nil
}

func ListCategories(ctx context.Context, db database.DB) ([]model.Category, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, slug FROM categories ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("ListCategories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	return categories, nil
}

func GetCategoryBySlug(ctx context.Context, db database.DB, slug string) (*model.Category, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, slug FROM categories WHERE slug = $1`,
		slug,
	)
	c := &model.Category{}
	if err := row.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
		return nil, fmt.Errorf("GetCategoryBySlug: %w", err)
	}
	return c, nil
}

func DeleteCategory(ctx context.Context, db database.DB, id int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM categories WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteCategory: %w", err)
	}
	return nil
}
