// File: internal/model/user.go
package model

import "time"

// 使用者角色旗標
const (
	RoleUser  = 0
	RoleAdmin = 1
)

type User struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	Phone          string    `db:"phone" json:"phone"`
	Address        string    `db:"address" json:"address"`
	DOB            string    `db:"dob" json:"dob"`
	SecurityAnswer string    `db:"security_answer" json:"-"`
	Role           int       `db:"role" json:"role"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// IsAdmin 回傳使用者是否具管理員角色
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
