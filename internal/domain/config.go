package domain

import (
	"fmt"
	"time"
)

// StoreDriver selects the result store backend.
type StoreDriver string

const (
	StoreNone     StoreDriver = ""
	StoreSQLite   StoreDriver = "sqlite"
	StorePostgres StoreDriver = "postgres"
	StoreMongo    StoreDriver = "mongo"
)

// ValidStoreDrivers enumerates all recognized store drivers.
var ValidStoreDrivers = []StoreDriver{StoreNone, StoreSQLite, StorePostgres, StoreMongo}

// CacheDriver selects the result cache backend.
type CacheDriver string

const (
	CacheNone  CacheDriver = "none"
	CacheFile  CacheDriver = "file"
	CacheRedis CacheDriver = "redis"
)

// ValidCacheDrivers enumerates all recognized cache drivers.
var ValidCacheDrivers = []CacheDriver{"", CacheNone, CacheFile, CacheRedis}

// EngineConfig holds project configuration loaded from .polaxis.yaml.
type EngineConfig struct {
	Bank        string            `yaml:"bank"         json:"bank,omitempty"`
	AxisAliases map[string]string `yaml:"axis_aliases" json:"axis_aliases,omitempty"`
	Store       StoreConfig       `yaml:"store"        json:"store,omitempty"`
	Cache       CacheConfig       `yaml:"cache"        json:"cache,omitempty"`
	HTTP        HTTPConfig        `yaml:"http"         json:"http,omitempty"`
	History     bool              `yaml:"history"      json:"history,omitempty"`
}

// StoreConfig configures result persistence.
type StoreConfig struct {
	Driver   StoreDriver `yaml:"driver"   json:"driver,omitempty"`
	DSN      string      `yaml:"dsn"      json:"dsn,omitempty"`
	Database string      `yaml:"database" json:"database,omitempty"` // mongo only
}

// CacheConfig configures the classification memo cache.
type CacheConfig struct {
	Driver CacheDriver `yaml:"driver" json:"driver,omitempty"`
	Dir    string      `yaml:"dir"    json:"dir,omitempty"`
	Addr   string      `yaml:"addr"   json:"addr,omitempty"`
	TTL    string      `yaml:"ttl"    json:"ttl,omitempty"`
}

// HTTPConfig configures the serve command.
type HTTPConfig struct {
	Addr        string   `yaml:"addr"         json:"addr,omitempty"`
	CORSOrigins []string `yaml:"cors_origins" json:"cors_origins,omitempty"`
}

const (
	DefaultBankPath = "questions.yaml"
	DefaultHTTPAddr = ":8080"
	DefaultCacheDir = ".polaxis/cache"
	DefaultCacheTTL = 24 * time.Hour
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		Bank:  DefaultBankPath,
		Cache: CacheConfig{Driver: CacheNone},
		HTTP:  HTTPConfig{Addr: DefaultHTTPAddr},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c EngineConfig) Validate() error {
	// 1. aliases must point at a known axis
	if _, err := NewAxisResolver(c.AxisAliases); err != nil {
		return err
	}

	// 2. store driver must be known
	if !containsDriver(ValidStoreDrivers, c.Store.Driver) {
		return fmt.Errorf("unknown store.driver %q (valid: sqlite, postgres, mongo)", c.Store.Driver)
	}
	if c.Store.Driver == StoreMongo && c.Store.DSN == "" {
		return fmt.Errorf("store.dsn is required for the mongo driver")
	}

	// 3. cache driver must be known
	if !containsDriver(ValidCacheDrivers, c.Cache.Driver) {
		return fmt.Errorf("unknown cache.driver %q (valid: none, file, redis)", c.Cache.Driver)
	}
	if c.Cache.Driver == CacheRedis && c.Cache.Addr == "" {
		return fmt.Errorf("cache.addr is required for the redis driver")
	}

	// 4. ttl must parse and be positive
	if c.Cache.TTL != "" {
		d, err := time.ParseDuration(c.Cache.TTL)
		if err != nil {
			return fmt.Errorf("cache.ttl %q: %w", c.Cache.TTL, err)
		}
		if d <= 0 {
			return fmt.Errorf("cache.ttl must be > 0 (got %s)", c.Cache.TTL)
		}
	}

	return nil
}

// CacheTTL returns the configured TTL, or DefaultCacheTTL.
func (c EngineConfig) CacheTTL() time.Duration {
	if d, err := time.ParseDuration(c.Cache.TTL); err == nil && d > 0 {
		return d
	}
	return DefaultCacheTTL
}

// Resolver builds the axis resolver for this config.
func (c EngineConfig) Resolver() (*AxisResolver, error) {
	return NewAxisResolver(c.AxisAliases)
}

func containsDriver[T ~string](valid []T, v T) bool {
	for _, d := range valid {
		if d == v {
			return true
		}
	}
	return false
}
