package model

import "time"

// 訂單狀態只在建立時寫入一次
const (
	OrderStatusPlaced     = "Placed"
	OrderStatusProcessing = "Processing"
)

type Order struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"user_id"`
	Username     string    `db:"username" json:"username,omitempty"`
	Status       string    `db:"status" json:"status"`
	DeliveryDate *string   `db:"delivery_date" json:"delivery_date,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	Items        []string  `json:"items"`
}
