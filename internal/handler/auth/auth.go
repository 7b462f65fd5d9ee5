// File: internal/handler/auth/auth.go
// Package auth 實作註冊、登入、帳號救援與個人資料維護
package auth

import (
	"gocart/internal/service"
	"gocart/internal/store"
)

// 測試用接縫
var (
	hashPassword            = service.HashPassword
	authenticateUser        = service.AuthenticateUser
	createUser              = store.CreateUser
	getUserByID             = store.GetUserByID
	getUserByEmail          = store.GetUserByEmail
	getUserByEmailAndAnswer = store.GetUserByEmailAndAnswer
	updateUserProfile       = store.UpdateUserProfile
	updateUserPassword      = store.UpdateUserPassword
)

// MinPasswordLength 是所有設定密碼路徑共用的最小長度
const MinPasswordLength = 6
