package service

import (
	"context"
	"errors"
	"log/slog"

	"grocer/internal/database"
	"grocer/internal/metrics"
	"grocer/internal/model"
	"grocer/internal/store"
	"grocer/internal/worker"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrNotLoggedIn = errors.New("user not logged in")
)

// OrderEvent 訂單成立後交給背景 worker 處理
type OrderEvent struct {
	OrderID int
	UserID  int
	Items   []string
}

// Orders 負責結帳：寫入訂單並通知 listener
type Orders struct {
	db     database.DB
	pool   worker.Pool
	logger *slog.Logger

	// Notify 在 worker 中執行，預設只記錄 log
	Notify func(OrderEvent)
}

func NewOrders(db database.DB, pool worker.Pool, logger *slog.Logger) *Orders {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Orders{db: db, pool: pool, logger: logger}
	o.Notify = o.logEvent
	return o
}

func (o *Orders) logEvent(ev OrderEvent) {
	o.logger.Info("order placed",
		slog.Int("order_id", ev.OrderID),
		slog.Int("user_id", ev.UserID),
		slog.Int("items", len(ev.Items)),
	)
}

// Place 先檢查購物車再檢查登入狀態
func (o *Orders) Place(ctx context.Context, userID int, cart []string) (*model.Order, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}
	if userID == 0 {
		return nil, ErrNotLoggedIn
	}

	order, err := store.CreateOrder(ctx, o.db, userID, cart)
	if err != nil {
		return nil, err
	}
	metrics.OrdersPlaced.Inc()
	metrics.OrderItems.Add(float64(len(order.Items)))

	ev := OrderEvent{OrderID: order.ID, UserID: userID, Items: order.Items}
	notify := o.Notify
	if o.pool == nil || !o.pool.Submit(func() { notify(ev) }) {
		o.logger.WarnContext(ctx, "order event dropped", slog.Int("order_id", order.ID))
	}
	return order, nil
}

// History 回傳使用者的訂單
func (o *Orders) History(ctx context.Context, userID int) ([]model.Order, error) {
	return store.ListOrdersByUser(ctx, o.db, userID)
}
