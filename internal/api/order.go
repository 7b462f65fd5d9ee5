// File: internal/api/order.go
package api

// CheckoutItem 是結帳購物車中的單一品項
type CheckoutItem struct {
	ProductID int `json:"product_id" validate:"required" example:"1"`
	Quantity  int `json:"quantity" validate:"required,gt=0" example:"2"`
}

// CheckoutRequest 定義結帳請求格式
// swagger:model api.CheckoutRequest
type CheckoutRequest struct {
	Cart []CheckoutItem `json:"cart" validate:"required,min=1,dive"`
}

// OrderStatusRequest 定義更新訂單狀態的請求格式
// swagger:model api.OrderStatusRequest
type OrderStatusRequest struct {
	Status string `json:"status" validate:"required" example:"Shipped"`
}
