package store

import (
	"context"
	"testing"

	"grocer/internal/database/databasetest"
	"grocer/internal/model"

	"github.com/stretchr/testify/require"
)

func TestOrderStore(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()

	alice, err := CreateUser(ctx, db, &model.User{Username: "alice", Email: "a@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	bob, err := CreateUser(ctx, db, &model.User{Username: "bob", Email: "b@example.com", PasswordHash: "h"})
	require.NoError(t, err)

	first, err := CreateOrder(ctx, db, alice.ID, []string{"Milk", "Eggs", "Milk"})
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusProcessing, first.Status)
	require.False(t, first.CreatedAt.IsZero())

	second, err := CreateOrder(ctx, db, alice.ID, []string{"Bread"})
	require.NoError(t, err)
	_, err = CreateOrder(ctx, db, bob.ID, []string{"Apples"})
	require.NoError(t, err)

	var items int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM order_items WHERE order_id = ?`, first.ID).Scan(&items))
	require.Equal(t, 3, items)

	t.Run("ListOrdersByUser", func(t *testing.T) {
		orders, err := ListOrdersByUser(ctx, db, alice.ID)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		// 新的在前
		require.Equal(t, second.ID, orders[0].ID)
		require.Equal(t, []string{"Bread"}, orders[0].Items)
		require.Equal(t, []string{"Milk", "Eggs", "Milk"}, orders[1].Items)
		require.Equal(t, "alice", orders[1].Username)
		require.Nil(t, orders[1].DeliveryDate)
	})

	t.Run("ListOrdersByUser empty", func(t *testing.T) {
		orders, err := ListOrdersByUser(ctx, db, 999)
		require.NoError(t, err)
		require.NotNil(t, orders)
		require.Empty(t, orders)
	})

	t.Run("ListOrders", func(t *testing.T) {
		orders, err := ListOrders(ctx, db)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		require.Equal(t, "bob", orders[0].Username)
		require.Equal(t, []string{"Apples"}, orders[0].Items)
	})

	t.Run("CreateOrder rolls back on bad user", func(t *testing.T) {
		// foreign_keys pragma 開啟，不存在的 user 會失敗且不留下任何品項
		_, err := CreateOrder(ctx, db, 12345, []string{"Ghost"})
		require.Error(t, err)

		var n int
		require.NoError(t, db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM order_items WHERE product_name = ?`, "Ghost").Scan(&n))
		require.Zero(t, n)
	})
}
