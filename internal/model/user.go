// File: internal/model/user.go
package model

type User struct {
	ID           int    `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password" json:"-"`
	IsAdmin      bool   `db:"is_admin" json:"is_admin"`
}
