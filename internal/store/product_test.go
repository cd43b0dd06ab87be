package store

import (
	"context"
	"testing"

	"grocer/internal/database/databasetest"
	"grocer/internal/model"

	"github.com/stretchr/testify/require"
)

func TestProductStore(t *testing.T) {
	db := databasetest.New(t)
	ctx := context.Background()

	list, err := ListProducts(ctx, db)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	milk, err := CreateProduct(ctx, db, &model.Product{Name: "Milk", Category: "Dairy", Price: 2.99})
	require.NoError(t, err)
	require.NotZero(t, milk.ID)

	list, err = ListProducts(ctx, db)
	require.NoError(t, err)
	require.Equal(t, []model.Product{{ID: milk.ID, Name: "Milk", Category: "Dairy", Price: 2.99}}, list)

	bread, err := CreateProduct(ctx, db, &model.Product{Name: "Bread", Category: "Bakery", Price: 1.5})
	require.NoError(t, err)

	list, err = ListProducts(ctx, db)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, milk.ID, list[0].ID)
	require.Equal(t, bread.ID, list[1].ID)
}
