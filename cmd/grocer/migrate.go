package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(boot func() (*app, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := boot()
				if err != nil {
					return err
				}
				if err := runMigrationsFn(a.cfg.Database.Driver, a.cfg.Database.DSN); err != nil {
					return fmt.Errorf("Migration 執行失敗: %w", err)
				}
				a.logger.Info("migrations applied", "driver", a.cfg.Database.Driver)
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := boot()
				if err != nil {
					return err
				}
				if err := rollbackFn(a.cfg.Database.Driver, a.cfg.Database.DSN); err != nil {
					return fmt.Errorf("RollbackAll 失敗: %w", err)
				}
				a.logger.Info("migrations rolled back", "driver", a.cfg.Database.Driver)
				return nil
			},
		},
	)
	return cmd
}
