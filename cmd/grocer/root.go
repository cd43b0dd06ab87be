package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"grocer/config"
	"grocer/internal/cache"
	"grocer/internal/database"
	"grocer/internal/logging"
	"grocer/internal/worker"

	"github.com/spf13/cobra"
)

// 可在測試中替換
var (
	loadConfig                = config.Load
	openDB                    = database.Open
	newRedisClient            = cache.NewRedisClient
	runMigrationsFn           = database.RunMigrations
	rollbackFn                = database.RollbackAll
	newWorkerPool             = worker.NewPool
	startServer               = serveUntilDone
	logOutput       io.Writer = os.Stderr
	exitFunc                  = os.Exit
)

// app 是各指令共用的啟動結果
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "grocer",
		Short:         "Grocer storefront server and admin tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv(config.EnvPrefix+"CONFIG"),
		"path to a YAML config file (env "+config.EnvPrefix+"CONFIG)")

	boot := func() (*app, error) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return nil, err
		}
		logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, logOutput)
		if err != nil {
			return nil, err
		}
		return &app{cfg: cfg, logger: logger}, nil
	}

	root.AddCommand(
		newServeCmd(boot),
		newMigrateCmd(boot),
		newSeedCmd(boot),
		newAdminCmd(boot),
	)
	return root
}

// openCache 沒設定 redis 時回傳 nil，表示不快取
func openCache(a *app) (cache.Cache, error) {
	if !a.cfg.RedisEnabled() {
		return nil, nil
	}
	return newRedisClient(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
}

func openMigratedDB(ctx context.Context, a *app) (database.DB, error) {
	if err := runMigrationsFn(a.cfg.Database.Driver, a.cfg.Database.DSN); err != nil {
		return nil, err
	}
	return openDB(ctx, a.cfg.Database.Driver, a.cfg.Database.DSN)
}
