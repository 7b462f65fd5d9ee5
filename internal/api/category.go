// File: internal/api/category.go
package api

// CategoryRequest 定義建立或更新分類的請求格式
// swagger:model api.CategoryRequest
type CategoryRequest struct {
	Name string `json:"name" validate:"required" example:"Smartphones"`
}
