// Package config loads grocer settings from defaults, an optional YAML
// file and GROCER_* environment variables, in that order.
package config

import (
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const EnvPrefix = "GROCER_"

type Config struct {
	Debug bool `koanf:"debug"`

	HTTP struct {
		Addr            string        `koanf:"addr"`
		ShutdownTimeout time.Duration `koanf:"shutdownTimeout"`
	} `koanf:"http"`

	Database struct {
		Driver string `koanf:"driver"`
		DSN    string `koanf:"dsn"`
	} `koanf:"database"`

	Session struct {
		Secret     string        `koanf:"secret"`
		CookieName string        `koanf:"cookieName"`
		TTL        time.Duration `koanf:"ttl"`
		Secure     bool          `koanf:"secure"`
	} `koanf:"session"`

	// Redis 未設定 addr 時不啟用商品快取
	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
		DB       int    `koanf:"db"`
	} `koanf:"redis"`

	Cache struct {
		ProductsTTL time.Duration `koanf:"productsTTL"`
	} `koanf:"cache"`

	Worker struct {
		Count int `koanf:"count"`
		Queue int `koanf:"queue"`
	} `koanf:"worker"`

	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
	} `koanf:"log"`
}

func defaults() map[string]any {
	return map[string]any{
		"debug":                false,
		"http.addr":            ":8080",
		"http.shutdownTimeout": "10s",
		"database.driver":      "sqlite",
		"database.dsn":         "data/grocer.db",
		"session.secret":       "",
		"session.cookieName":   "grocer_session",
		"session.ttl":          "168h",
		"session.secure":       false,
		"redis.addr":           "",
		"redis.password":       "",
		"redis.db":             0,
		"cache.productsTTL":    "5m",
		"worker.count":         1,
		"worker.queue":         64,
		"log.level":            "info",
		"log.format":           "text",
	}
}

// environ 可於測試中替換
var environ = os.Environ

// Load reads the config. An empty path skips the file; a missing file is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, "config file %s", path)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	existing := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:      EnvPrefix,
		EnvironFunc: environ,
		TransformFunc: func(key, v string) (string, any) {
			// GROCER_SESSION_COOKIENAME -> session.cookieName
			return canonicalizeEnvKey(strings.TrimPrefix(key, EnvPrefix), existing), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("session.secret is required (set " + EnvPrefix + "SESSION_SECRET)")
	}
	switch strings.ToLower(c.Database.Driver) {
	case "sqlite", "sqlite3", "postgres", "postgresql", "pgx":
	default:
		return errors.Errorf("unsupported database.driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if c.Worker.Count <= 0 {
		return errors.Errorf("worker.count must be positive, got %d", c.Worker.Count)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.Errorf("unsupported log.format %q", c.Log.Format)
	}
	return nil
}

// RedisEnabled reports whether a cache address was configured.
func (c *Config) RedisEnabled() bool { return c.Redis.Addr != "" }

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (string, map[string]any, bool) {
	if len(current) == 0 {
		return "", nil, false
	}
	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}
		child, _ := value.(map[string]any)
		return key, child, true
	}
	return "", nil, false
}

func normalizeToken(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
