package types

import (
	"errors"
	"net/url"
	"time"
)

// Default configuration values.
const (
	DefaultBaseURL   = "https://lol.fandom.com/api.php"
	DefaultUserAgent = "rift-scout"
	DefaultTimeout   = 30 * time.Second
	DefaultPageSize  = 500
	DefaultCacheTTL  = 24 * time.Hour
)

// MaxPageSize is the Cargo API's per-request row limit.
const MaxPageSize = 500

// Config holds the parameters for constructing a client.
type Config struct {
	BaseURL   string        `json:"base_url" yaml:"base_url"`
	UserAgent string        `json:"user_agent" yaml:"user_agent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	PageSize  int           `json:"page_size" yaml:"page_size"`
	Cache     CacheConfig   `json:"cache" yaml:"cache"`
}

// CacheConfig controls the optional name-resolution cache. The cache is an
// accelerator only: with Enabled false every lookup queries the wiki
// directly and results are identical.
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	Dir     string        `json:"dir" yaml:"dir"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// Config validation errors.
var (
	ErrBaseURLEmpty    = errors.New("base URL must not be empty")
	ErrBaseURLInvalid  = errors.New("base URL is not a valid URL")
	ErrPageSizeInvalid = errors.New("page size must be between 1 and 500")
	ErrTimeoutNegative = errors.New("timeout must not be negative")
	ErrTTLNegative     = errors.New("cache TTL must not be negative")
)

// DefaultConfig returns a Config populated with the package defaults.
// The cache is disabled; enable it and set Cache.Dir to opt in.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
		PageSize:  DefaultPageSize,
		Cache: CacheConfig{
			TTL: DefaultCacheTTL,
		},
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return ErrBaseURLEmpty
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrBaseURLInvalid
	}
	if c.PageSize < 1 || c.PageSize > MaxPageSize {
		return ErrPageSizeInvalid
	}
	if c.Timeout < 0 {
		return ErrTimeoutNegative
	}
	if c.Cache.TTL < 0 {
		return ErrTTLNegative
	}
	return nil
}
