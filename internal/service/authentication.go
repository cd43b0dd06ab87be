// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"strings"

	"grocer/internal/database"
	"grocer/internal/model"
	"grocer/internal/store"
)

// ErrInvalidCredentials 不區分帳號不存在或密碼錯誤
var ErrInvalidCredentials = errors.New("invalid credentials")

// NormalizeEmail 統一以小寫儲存與查詢 Email
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthenticateUser 以 bcrypt 比對明文密碼，成功回傳使用者
func AuthenticateUser(user model.User, password string) (*model.User, error) {
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Login 依 Email 查詢使用者並驗證密碼
func Login(ctx context.Context, db database.Querier, email, password string) (*model.User, error) {
	u, err := store.GetUserByEmail(ctx, db, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return AuthenticateUser(*u, password)
}

// AdminLogin 只接受 is_admin 的帳號，且同樣必須通過密碼驗證
func AdminLogin(ctx context.Context, db database.Querier, email, password string) (*model.User, error) {
	u, err := store.GetAdminByEmail(ctx, db, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return AuthenticateUser(*u, password)
}

// Register 雜湊密碼並建立帳號；重複帳號時回傳的錯誤可用 database.IsUniqueViolation 判斷
func Register(ctx context.Context, db database.Querier, username, email, password string, isAdmin bool) (*model.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return store.CreateUser(ctx, db, &model.User{
		Username:     strings.TrimSpace(username),
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	})
}
