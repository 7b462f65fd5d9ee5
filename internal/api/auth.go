// File: internal/api/auth.go
package api

import "time"

// RegisterRequest 定義註冊新帳號的請求格式
// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"Secret123!"`
	Phone    string `json:"phone" validate:"required" example:"0912345678"`
	Address  string `json:"address" validate:"required" example:"Taipei"`
	DOB      string `json:"dob" validate:"required" example:"2000-01-01"`
	// 安全提問答案，供帳號救援比對
	Answer string `json:"answer" validate:"required" example:"Soccer"`
}

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

// UserResponse 定義回傳的使用者資訊
// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	Phone     string    `json:"phone" example:"0912345678"`
	Address   string    `json:"address" example:"Taipei"`
	Role      int       `json:"role" example:"0"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	AccessToken string       `json:"access_token" example:"eyJhbGciOi..."`
	ExpiresAt   time.Time    `json:"expires_at" example:"2025-05-09T15:04:05Z07:00"`
	User        UserResponse `json:"user"`
}

// ForgotPasswordRequest 定義帳號救援的請求格式
// 欄位檢查順序固定為 email → answer → new_password，由 handler 逐一驗證
// swagger:model api.ForgotPasswordRequest
type ForgotPasswordRequest struct {
	Email       string `json:"email" example:"alice@example.com"`
	Answer      string `json:"answer" example:"Soccer"`
	NewPassword string `json:"new_password" example:"NewSecret456!"`
}

// UpdateProfileRequest 定義更新個人資料的請求格式，所有欄位皆可省略
// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty" example:"Alice"`
	Email    string `json:"email,omitempty" example:"alice@example.com"`
	Password string `json:"password,omitempty" example:"NewSecret456!"`
	Phone    string `json:"phone,omitempty" example:"0912345678"`
	Address  string `json:"address,omitempty" example:"Taipei"`
}
