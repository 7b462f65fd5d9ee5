// File: internal/api/product.go
package api

// ProductRequest 定義建立或更新商品的請求格式
// swagger:model api.ProductRequest
type ProductRequest struct {
	Name        string  `json:"name" validate:"required" example:"Apple iPhone"`
	Description string  `json:"description" validate:"required" example:"Latest Apple iPhone"`
	Price       float64 `json:"price" validate:"required,gt=0" example:"999"`
	CategoryID  int     `json:"category_id" validate:"required" example:"1"`
	Quantity    int     `json:"quantity" validate:"gte=0" example:"10"`
	Shipping    bool    `json:"shipping" example:"true"`
}

// ProductFiltersRequest 定義商品篩選條件
// checked 為分類 ID 集合，radio 為 [min, max] 價格區間，兩者皆可省略
// swagger:model api.ProductFiltersRequest
type ProductFiltersRequest struct {
	Checked []int     `json:"checked" example:"1,2"`
	Radio   []float64 `json:"radio" example:"0,999"`
}
