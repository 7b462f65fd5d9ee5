// File: internal/model/product.go
package model

import "time"

type Product struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	Description  string    `db:"description" json:"description"`
	Price        float64   `db:"price" json:"price"`
	CategoryID   int       `db:"category_id" json:"category_id"`
	CategoryName string    `db:"category_name" json:"category_name,omitempty"`
	Quantity     int       `db:"quantity" json:"quantity"`
	Shipping     bool      `db:"shipping" json:"shipping"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
