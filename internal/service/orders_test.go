package service

import (
	"context"
	"sync"
	"testing"

	"grocer/internal/database/databasetest"
	"grocer/internal/worker"

	"github.com/stretchr/testify/require"
)

func TestOrdersPlace(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()
	u, err := Register(ctx, db, "alice", "alice@example.com", "pw", false)
	require.NoError(t, err)

	pool := worker.NewPool(1, 4, nil)
	o := NewOrders(db, pool, nil)
	var (
		mu     sync.Mutex
		events []OrderEvent
	)
	o.Notify = func(ev OrderEvent) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	}

	_, err = o.Place(ctx, u.ID, nil)
	require.ErrorIs(t, err, ErrEmptyCart)

	// 空購物車優先於未登入
	_, err = o.Place(ctx, 0, nil)
	require.ErrorIs(t, err, ErrEmptyCart)

	_, err = o.Place(ctx, 0, []string{"Milk"})
	require.ErrorIs(t, err, ErrNotLoggedIn)

	order, err := o.Place(ctx, u.ID, []string{"Milk", "Eggs"})
	require.NoError(t, err)
	require.NotZero(t, order.ID)

	pool.Stop()
	require.Len(t, events, 1)
	require.Equal(t, order.ID, events[0].OrderID)
	require.Equal(t, []string{"Milk", "Eggs"}, events[0].Items)

	history, err := o.History(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, []string{"Milk", "Eggs"}, history[0].Items)

	// pool 已停止，訂單仍成立，事件被丟棄
	_, err = o.Place(ctx, u.ID, []string{"Bread"})
	require.NoError(t, err)
}
