package store

import (
	"context"
	"fmt"

	"grocer/internal/database"
	"grocer/internal/model"
)

// ListProducts 回傳所有商品，沒有資料時回傳空 slice 而非 nil
func ListProducts(ctx context.Context, db database.Querier) ([]model.Product, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, category, price FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price); err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

func CreateProduct(ctx context.Context, db database.Querier, p *model.Product) (*model.Product, error) {
	row := db.QueryRowContext(ctx,
		`INSERT INTO products (name, category, price)
		 VALUES (?, ?, ?)
		 RETURNING id`,
		p.Name,
		p.Category,
		p.Price,
	)
	if err := row.Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	return p, nil
}
