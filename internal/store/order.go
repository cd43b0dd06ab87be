package store

import (
	"context"
	"database/sql"
	"fmt"

	"grocer/internal/database"
	"grocer/internal/model"
)

// CreateOrder 在同一筆交易內寫入訂單與購物車品項
func CreateOrder(ctx context.Context, db database.DB, userID int, items []string) (*model.Order, error) {
	o := &model.Order{
		UserID: userID,
		Status: model.OrderStatusProcessing,
		Items:  append([]string(nil), items...),
	}
	err := db.InTx(ctx, func(q database.Querier) error {
		row := q.QueryRowContext(ctx,
			`INSERT INTO orders (user_id, status)
			 VALUES (?, ?)
			 RETURNING id`,
			userID,
			o.Status,
		)
		if err := row.Scan(&o.ID); err != nil {
			return err
		}
		if err := q.QueryRowContext(ctx,
			`SELECT created_at FROM orders WHERE id = ?`, o.ID,
		).Scan(&o.CreatedAt); err != nil {
			return err
		}
		for i, name := range items {
			if _, err := q.ExecContext(ctx,
				`INSERT INTO order_items (order_id, product_name, position)
				 VALUES (?, ?, ?)`,
				o.ID,
				name,
				i,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("CreateOrder: %w", err)
	}
	return o, nil
}

// ListOrdersByUser 依建立時間由新到舊列出使用者的訂單
func ListOrdersByUser(ctx context.Context, db database.Querier, userID int) ([]model.Order, error) {
	orders, err := queryOrders(ctx, db,
		`SELECT o.id, o.user_id, u.username, o.status, o.delivery_date, o.created_at
		 FROM orders o JOIN users u ON u.id = o.user_id
		 WHERE o.user_id = ?
		 ORDER BY o.id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOrdersByUser: %w", err)
	}
	items, err := queryItems(ctx, db,
		`SELECT oi.order_id, oi.product_name
		 FROM order_items oi JOIN orders o ON o.id = oi.order_id
		 WHERE o.user_id = ?
		 ORDER BY oi.order_id, oi.position`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOrdersByUser: %w", err)
	}
	attachItems(orders, items)
	return orders, nil
}

// ListOrders 列出所有訂單 (管理後台)
func ListOrders(ctx context.Context, db database.Querier) ([]model.Order, error) {
	orders, err := queryOrders(ctx, db,
		`SELECT o.id, o.user_id, u.username, o.status, o.delivery_date, o.created_at
		 FROM orders o JOIN users u ON u.id = o.user_id
		 ORDER BY o.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOrders: %w", err)
	}
	items, err := queryItems(ctx, db,
		`SELECT order_id, product_name FROM order_items ORDER BY order_id, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListOrders: %w", err)
	}
	attachItems(orders, items)
	return orders, nil
}

func queryOrders(ctx context.Context, db database.Querier, query string, args ...any) ([]model.Order, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var (
			o        model.Order
			delivery sql.NullString
		)
		if err := rows.Scan(&o.ID, &o.UserID, &o.Username, &o.Status, &delivery, &o.CreatedAt); err != nil {
			return nil, err
		}
		if delivery.Valid {
			o.DeliveryDate = &delivery.String
		}
		o.Items = []string{}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func queryItems(ctx context.Context, db database.Querier, query string, args ...any) (map[int][]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := map[int][]string{}
	for rows.Next() {
		var (
			orderID int
			name    string
		)
		if err := rows.Scan(&orderID, &name); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], name)
	}
	return items, rows.Err()
}

func attachItems(orders []model.Order, items map[int][]string) {
	for i := range orders {
		if names, ok := items[orders[i].ID]; ok {
			orders[i].Items = names
		}
	}
}
