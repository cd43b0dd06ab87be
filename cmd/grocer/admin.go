package main

import (
	"errors"
	"fmt"

	"grocer/internal/database"
	"grocer/internal/dto"
	"grocer/internal/service"

	"github.com/spf13/cobra"
)

func newAdminCmd(boot func() (*app, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
	}

	var req dto.RegisterRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := dto.NewValidator().Validate(&req); err != nil {
				return fmt.Errorf("invalid admin account: %w", err)
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

			u, err := service.Register(ctx, db, req.Name, req.Email, req.Password, true)
			if err != nil {
				if database.IsUniqueViolation(err) {
					return errors.New("username or email already exists")
				}
				if errors.Is(err, service.ErrEmptyPassword) || errors.Is(err, service.ErrPasswordTooLong) {
					return fmt.Errorf("invalid admin account: %w", err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s <%s> created (id %d)\n", u.Username, u.Email, u.ID)
			return nil
		},
	}
	create.Flags().StringVar(&req.Name, "name", "", "username")
	create.Flags().StringVar(&req.Email, "email", "", "email address")
	create.Flags().StringVar(&req.Password, "password", "", "password")
	for _, f := range []string{"name", "email", "password"} {
		_ = create.MarkFlagRequired(f)
	}

	cmd.AddCommand(create)
	return cmd
}
