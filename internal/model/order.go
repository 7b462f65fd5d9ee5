// File: internal/model/order.go
package model

import "time"

// 訂單狀態
const (
	StatusNotProcessed = "Not Processed"
	StatusProcessing   = "Processing"
	StatusShipped      = "Shipped"
	StatusDelivered    = "Delivered"
	StatusCancelled    = "Cancelled"
)

// OrderStatuses 列出所有合法的訂單狀態
var OrderStatuses = []string{
	StatusNotProcessed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// ValidOrderStatus 檢查狀態是否屬於已知列舉
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Order struct {
	ID            int            `db:"id" json:"id"`
	BuyerID       int            `db:"buyer_id" json:"buyer_id"`
	BuyerName     string         `db:"buyer_name" json:"buyer_name,omitempty"`
	TransactionID string         `db:"transaction_id" json:"transaction_id"`
	Amount        float64        `db:"amount" json:"amount"`
	Status        string         `db:"status" json:"status"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	Products      []OrderProduct `db:"-" json:"products,omitempty"`
}

// OrderProduct 是訂單內的單一商品項目
type OrderProduct struct {
	ProductID int     `db:"product_id" json:"product_id"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Quantity  int     `db:"quantity" json:"quantity"`
}
