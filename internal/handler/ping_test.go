package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grocer/internal/database"
	"grocer/internal/database/databasetest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type failingPing struct {
	database.DB
}

func (failingPing) PingContext(context.Context) error { return errors.New("fail") }

func (failingPing) Dialect() database.Dialect { return database.SQLite }

// slowPing 等到 context 逾時
type slowPing struct {
	database.DB
}

func (slowPing) PingContext(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (slowPing) Dialect() database.Dialect { return database.Postgres }

func TestPingHandler(t *testing.T) {
	e := echo.New()

	t.Run("db unhealthy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		require.NoError(t, PingHandler(failingPing{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("db hangs", func(t *testing.T) {
		orig := pingTimeout
		pingTimeout = 10 * time.Millisecond
		t.Cleanup(func() { pingTimeout = orig })

		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		require.NoError(t, PingHandler(slowPing{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		db := databasetest.New(t)
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		require.NoError(t, PingHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
	})
}
