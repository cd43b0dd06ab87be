package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "grocer/docs" // 引入 swagger 文件

	"grocer/internal/dto"
	"grocer/internal/middleware"
	"grocer/internal/router"
	"grocer/internal/service"
	"grocer/internal/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func newServeCmd(boot func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := boot()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, a)
		},
	}
}

func runServe(ctx context.Context, a *app) error {
	cfg := a.cfg

	db, err := openMigratedDB(ctx, a)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()

	rdb, err := openCache(a)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	sessions, err := session.NewManager(session.Options{
		CookieName: cfg.Session.CookieName,
		Secret:     []byte(cfg.Session.Secret),
		TTL:        cfg.Session.TTL,
		Secure:     cfg.Session.Secure,
	})
	if err != nil {
		return err
	}

	wp := newWorkerPool(cfg.Worker.Count, cfg.Worker.Queue, a.logger)
	defer wp.Stop()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug
	e.Validator = dto.NewValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(a.logger))

	if err := router.Setup(e, router.Deps{
		DB:       db,
		Sessions: sessions,
		Catalog:  service.NewCatalog(db, rdb, cfg.Cache.ProductsTTL, a.logger),
		Orders:   service.NewOrders(db, wp, a.logger),
		Logger:   a.logger,
	}); err != nil {
		return err
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	a.logger.Info("listening",
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("driver", string(db.Dialect())),
		slog.Bool("cache", rdb != nil),
	)
	return startServer(ctx, e, cfg.HTTP.Addr, cfg.HTTP.ShutdownTimeout)
}

// serveUntilDone 在 ctx 結束時以 timeout 優雅關閉
func serveUntilDone(ctx context.Context, e *echo.Echo, addr string, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
