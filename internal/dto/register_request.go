package dto

// RegisterRequest 註冊表單，name 會存成 username
type RegisterRequest struct {
	Name     string `form:"name" validate:"required,max=64"`
	Email    string `form:"email" validate:"required,email,max=254"`
	Password string `form:"password" validate:"required,maxbytes=72"`
}
