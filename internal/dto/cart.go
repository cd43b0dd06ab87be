package dto

// AddToCartRequest 加入購物車
// swagger:model dto.AddToCartRequest
type AddToCartRequest struct {
	ProductName string `json:"product_name" validate:"required,maxbytes=128" example:"Milk"`
}

// CartResponse 加入購物車後的回應
// swagger:model dto.CartResponse
type CartResponse struct {
	Message string   `json:"message" example:"Milk added to cart"`
	Cart    []string `json:"cart"`
}

// FeedbackRequest 意見回饋
// swagger:model dto.FeedbackRequest
type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required" example:"Great produce!"`
}
