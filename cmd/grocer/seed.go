package main

import (
	"fmt"
	"os"
	"strings"

	"grocer/internal/model"
	"grocer/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSeedCmd(boot func() (*app, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixture data",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "products <file.yaml>",
		Short: "Insert products from a YAML list and invalidate the product cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := readProducts(args[0])
			if err != nil {
				return err
			}
			a, err := boot()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			db, err := openMigratedDB(ctx, a)
			if err != nil {
				return fmt.Errorf("database: %w", err)
			}
			defer db.Close()

			rdb, err := openCache(a)
			if err != nil {
				// 快取不可用時仍可寫入資料庫
				a.logger.Warn("cache unavailable, skipping invalidation", "error", err)
				rdb = nil
			}
			if rdb != nil {
				defer rdb.Close()
			}

			n, err := service.NewCatalog(db, rdb, a.cfg.Cache.ProductsTTL, a.logger).Seed(ctx, products)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products\n", n)
			return nil
		},
	})
	return cmd
}

// readProducts 讀取 YAML 商品清單
//
//	- name: Milk
//	  category: Dairy
//	  price: 1.99
func readProducts(path string) ([]model.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var products []model.Product
	if err := yaml.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("%s: no products", path)
	}
	for i, p := range products {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Category) == "" {
			return nil, fmt.Errorf("%s: product %d needs a name and a category", path, i+1)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("%s: product %q has a negative price", path, p.Name)
		}
	}
	return products, nil
}
