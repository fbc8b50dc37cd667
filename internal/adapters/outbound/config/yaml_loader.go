package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdidvp/polaxis/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file read from the working directory.
const FileName = ".polaxis.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .polaxis.yaml.
type YAMLLoader struct {
	getenv func(string) string
}

// New creates a YAMLLoader that reads overrides from the process environment.
func New() *YAMLLoader { return &YAMLLoader{getenv: os.Getenv} }

// NewWithEnv creates a YAMLLoader with a custom environment lookup.
func NewWithEnv(getenv func(string) string) *YAMLLoader { return &YAMLLoader{getenv: getenv} }

// Load reads .polaxis.yaml from dir and applies POLAXIS_* overrides.
// A missing file yields DefaultConfig. Relative bank and cache paths are
// resolved against dir.
func (l *YAMLLoader) Load(dir string) (domain.EngineConfig, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return domain.EngineConfig{}, err
	default:
		var file domain.EngineConfig
		if err := yaml.Unmarshal(data, &file); err != nil {
			return domain.EngineConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
		}
		// Validate before merging so typos in the raw file are reported.
		if err := file.Validate(); err != nil {
			return domain.EngineConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
		}
		cfg = mergeConfig(cfg, file)
	}

	cfg = l.applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return domain.EngineConfig{}, fmt.Errorf("invalid environment override: %w", err)
	}

	cfg.Bank = resolve(dir, cfg.Bank)
	if cfg.Cache.Driver == domain.CacheFile {
		if cfg.Cache.Dir == "" {
			cfg.Cache.Dir = domain.DefaultCacheDir
		}
		cfg.Cache.Dir = resolve(dir, cfg.Cache.Dir)
	}
	if cfg.Store.Driver == domain.StoreSQLite {
		cfg.Store.DSN = resolveSQLiteDSN(dir, cfg.Store.DSN)
	}
	return cfg, nil
}

// mergeConfig overlays explicit file values on top of the defaults.
// Explicit (non-zero) values always win.
func mergeConfig(base, override domain.EngineConfig) domain.EngineConfig {
	result := base

	if override.Bank != "" {
		result.Bank = override.Bank
	}
	if len(override.AxisAliases) > 0 {
		result.AxisAliases = override.AxisAliases
	}
	result.Store = override.Store
	if override.Cache.Driver != "" {
		result.Cache.Driver = override.Cache.Driver
	}
	result.Cache.Dir = override.Cache.Dir
	result.Cache.Addr = override.Cache.Addr
	result.Cache.TTL = override.Cache.TTL
	if override.HTTP.Addr != "" {
		result.HTTP.Addr = override.HTTP.Addr
	}
	if len(override.HTTP.CORSOrigins) > 0 {
		result.HTTP.CORSOrigins = override.HTTP.CORSOrigins
	}
	result.History = override.History

	return result
}

func (l *YAMLLoader) applyEnv(cfg domain.EngineConfig) domain.EngineConfig {
	cfg.Bank = l.envOr("POLAXIS_BANK", cfg.Bank)
	cfg.Store.Driver = domain.StoreDriver(l.envOr("POLAXIS_STORE_DRIVER", string(cfg.Store.Driver)))
	cfg.Store.DSN = l.envOr("POLAXIS_STORE_DSN", cfg.Store.DSN)
	if addr := l.getenv("POLAXIS_REDIS_ADDR"); addr != "" {
		cfg.Cache.Driver = domain.CacheRedis
		cfg.Cache.Addr = addr
	}
	cfg.HTTP.Addr = l.envOr("POLAXIS_HTTP_ADDR", cfg.HTTP.Addr)
	if origins := l.csv("POLAXIS_CORS_ORIGINS"); len(origins) > 0 {
		cfg.HTTP.CORSOrigins = origins
	}
	cfg.History = l.envBool("POLAXIS_HISTORY", cfg.History)
	return cfg
}

func (l *YAMLLoader) envOr(k, def string) string {
	v := l.getenv(k)
	if v == "" {
		return def
	}
	return v
}

func (l *YAMLLoader) envBool(k string, def bool) bool {
	switch l.getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func (l *YAMLLoader) csv(k string) []string {
	parts := strings.Split(l.getenv(k), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// resolveSQLiteDSN anchors a relative database file at dir, keeping any
// query parameters. In-memory and absolute DSNs pass through.
func resolveSQLiteDSN(dir, dsn string) string {
	path, query, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || path == ":memory:" || filepath.IsAbs(path) {
		return dsn
	}
	out := "file:" + filepath.Join(dir, path)
	if query != "" {
		out += "?" + query
	}
	return out
}
