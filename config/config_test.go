package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withEnviron(t *testing.T, vars ...string) {
	t.Helper()
	orig := environ
	environ = func() []string { return vars }
	t.Cleanup(func() { environ = orig })
}

func TestLoadDefaults(t *testing.T) {
	withEnviron(t, "GROCER_SESSION_SECRET=s3cret", "PATH=/bin")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, "data/grocer.db", cfg.Database.DSN)
	require.Equal(t, "s3cret", cfg.Session.Secret)
	require.Equal(t, "grocer_session", cfg.Session.CookieName)
	require.Equal(t, 168*time.Hour, cfg.Session.TTL)
	require.Equal(t, 5*time.Minute, cfg.Cache.ProductsTTL)
	require.Equal(t, 1, cfg.Worker.Count)
	require.False(t, cfg.RedisEnabled())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grocer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  addr: ":9090"
database:
  driver: postgres
  dsn: postgres://localhost/grocer
session:
  secret: from-file
  cookieName: file_cookie
redis:
  addr: localhost:6379
log:
  format: json
`), 0o600))

	withEnviron(t,
		"GROCER_SESSION_COOKIENAME=env_cookie",
		"GROCER_HTTP_SHUTDOWNTIMEOUT=3s",
		"GROCER_REDIS_DB=2",
		"GROCER_WORKER_COUNT=4",
		"GROCER_DEBUG=true",
	)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, "from-file", cfg.Session.Secret)
	require.Equal(t, "env_cookie", cfg.Session.CookieName)
	require.Equal(t, 2, cfg.Redis.DB)
	require.Equal(t, 4, cfg.Worker.Count)
	require.Equal(t, "json", cfg.Log.Format)
	require.True(t, cfg.Debug)
	require.True(t, cfg.RedisEnabled())
}

func TestLoadErrors(t *testing.T) {
	withEnviron(t)
	_, err := Load("")
	require.ErrorContains(t, err, "session.secret")

	withEnviron(t, "GROCER_SESSION_SECRET=x")
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	withEnviron(t, "GROCER_SESSION_SECRET=x", "GROCER_DATABASE_DRIVER=mysql")
	_, err = Load("")
	require.ErrorContains(t, err, "database.driver")

	withEnviron(t, "GROCER_SESSION_SECRET=x", "GROCER_LOG_FORMAT=xml")
	_, err = Load("")
	require.ErrorContains(t, err, "log.format")

	withEnviron(t, "GROCER_SESSION_SECRET=x", "GROCER_WORKER_COUNT=0")
	_, err = Load("")
	require.ErrorContains(t, err, "worker.count")
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"session": map[string]any{"cookieName": "x"},
		"cache":   map[string]any{"productsTTL": "5m"},
	}
	require.Equal(t, "session.cookieName", canonicalizeEnvKey("SESSION_COOKIENAME", existing))
	require.Equal(t, "cache.productsTTL", canonicalizeEnvKey("CACHE_PRODUCTSTTL", existing))
	require.Equal(t, "unknown.key", canonicalizeEnvKey("UNKNOWN_KEY", existing))
}
