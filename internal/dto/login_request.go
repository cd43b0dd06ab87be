// File: internal/dto/login_request.go
package dto

// swagger:model dto.LoginRequest
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `form:"password" validate:"required" example:"Secret123!"`
}

// AdminLoginRequest 管理員登入表單，欄位名稱沿用 admin_ 前綴
type AdminLoginRequest struct {
	Email    string `form:"admin_email" validate:"required,email"`
	Password string `form:"admin_password" validate:"required"`
}
