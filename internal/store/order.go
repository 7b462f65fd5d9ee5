package store

import (
	"context"
	"fmt"

	"gocart/internal/database"
	"gocart/internal/model"

	"github.com/jackc/pgx/v5"
)

// CreateOrder 建立訂單與其商品項目
// 訂單本體與項目在同一交易內寫入，任一項目失敗即整筆回滾
func CreateOrder(ctx context.Context, db database.DB, o *model.Order) (*model.Order, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateOrder: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx,
		`INSERT INTO orders (buyer_id, transaction_id, amount, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		o.BuyerID,
		o.TransactionID,
		o.Amount,
		o.Status,
	)
	if err := row.Scan(&o.ID, &o.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateOrder: %w", err)
	}
	for _, item := range o.Products {
		if _, err := tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity)
			 VALUES ($1, $2, $3)`,
			o.ID,
			item.ProductID,
			item.Quantity,
		); err != nil {
			return nil, fmt.Errorf("CreateOrder: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreateOrder: %w", err)
	}
	return o, nil
}

func GetOrderByID(ctx context.Context, db database.DB, orderID int) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`SELECT id, buyer_id, transaction_id, amount, status, created_at
		 FROM orders WHERE id = $1`,
		orderID,
	)
	o := &model.Order{}
	if err := row.Scan(&o.ID, &o.BuyerID, &o.TransactionID, &o.Amount, &o.Status, &o.CreatedAt); err != nil {
		return nil, fmt.Errorf("GetOrderByID: %w", err)
	}
	return o, nil
}

// ListOrdersByBuyer 取得指定買家的訂單（含商品項目），新到舊排序
func ListOrdersByBuyer(ctx context.Context, db database.DB, buyerID int) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT id, buyer_id, transaction_id, amount, status, created_at
		 FROM orders WHERE buyer_id = $1 ORDER BY created_at DESC`,
		buyerID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOrdersByBuyer: %w", err)
	}
	orders, err := collectOrders(rows, false)
	if err != nil {
		return nil, fmt.Errorf("ListOrdersByBuyer: %w", err)
	}
	if err := attachOrderProducts(ctx, db, orders); err != nil {
		return nil, fmt.Errorf("ListOrdersByBuyer: %w", err)
	}
	return orders, nil
}

// ListAllOrders 取得全部訂單（含買家名稱與商品項目），新到舊排序
func ListAllOrders(ctx context.Context, db database.DB) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT o.id, o.buyer_id, u.name, o.transaction_id, o.amount, o.status, o.created_at
		 FROM orders o JOIN users u ON u.id = o.buyer_id
		 ORDER BY o.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAllOrders: %w", err)
	}
	orders, err := collectOrders(rows, true)
	if err != nil {
		return nil, fmt.Errorf("ListAllOrders: %w", err)
	}
	if err := attachOrderProducts(ctx, db, orders); err != nil {
		return nil, fmt.Errorf("ListAllOrders: %w", err)
	}
	return orders, nil
}

func UpdateOrderStatus(ctx context.Context, db database.DB, orderID int, status string) error {
	tag, err := db.Exec(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`,
		status,
		orderID,
	)
	if err != nil {
		return fmt.Errorf("UpdateOrderStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateOrderStatus: %w", pgx.ErrNoRows)
	}
	return nil
}

func collectOrders(rows pgx.Rows, withBuyerName bool) ([]model.Order, error) {
	defer rows.Close()
	var orders []model.Order
	for rows.Next() {
		var o model.Order
		var err error
		if withBuyerName {
			err = rows.Scan(&o.ID, &o.BuyerID, &o.BuyerName, &o.TransactionID, &o.Amount, &o.Status, &o.CreatedAt)
		} else {
			err = rows.Scan(&o.ID, &o.BuyerID, &o.TransactionID, &o.Amount, &o.Status, &o.CreatedAt)
		}
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func attachOrderProducts(ctx context.Context, db database.DB, orders []model.Order) error {
	for i := range orders {
		items, err := listOrderProducts(ctx, db, orders[i].ID)
		if err != nil {
			return err
		}
		orders[i].Products = items
	}
	return nil
}

func listOrderProducts(ctx context.Context, db database.DB, orderID int) ([]model.OrderProduct, error) {
	rows, err := db.Query(ctx,
		`SELECT oi.product_id, p.name, p.price, oi.quantity
		 FROM order_items oi JOIN products p ON p.id = oi.product_id
		 WHERE oi.order_id = $1`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderProduct
	for rows.Next() {
		var it model.OrderProduct
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
