// Config loading for the scout CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/rift/internal/paths"
	"github.com/mesh-intelligence/rift/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBaseURL      = "base_url"
	cfgKeyUserAgent    = "user_agent"
	cfgKeyTimeout      = "timeout"
	cfgKeyPageSize     = "page_size"
	cfgKeyCacheEnabled = "cache.enabled"
	cfgKeyCacheDir     = "cache.dir"
	cfgKeyCacheTTL     = "cache.ttl"
)

// defaultConfigYAML is written to config.yaml on first run. Every key
// is commented out so the file documents the defaults without pinning
// them.
const defaultConfigYAML = `# Scout CLI configuration.
# Values may also be set through SCOUT_* environment variables,
# e.g. SCOUT_PAGE_SIZE=100.

# Leaguepedia API endpoint.
# base_url: https://lol.fandom.com/api.php

# User-Agent header sent with every request.
# user_agent: rift-scout

# HTTP client timeout.
# timeout: 30s

# Rows fetched per cargo request (1-500).
# page_size: 500

# On-disk cache for team name and image lookups.
cache:
  enabled: false
  # dir: (default: platform cache dir)
  # ttl: 24h
`

// loadConfig resolves the config directory, writes a default config.yaml
// on first run, and reads configuration with viper. Precedence:
// defaults < config.yaml < SCOUT_* environment. A missing config.yaml
// is not an error.
func loadConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("create config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	def := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyBaseURL, def.BaseURL)
	v.SetDefault(cfgKeyUserAgent, def.UserAgent)
	v.SetDefault(cfgKeyTimeout, def.Timeout)
	v.SetDefault(cfgKeyPageSize, def.PageSize)
	v.SetDefault(cfgKeyCacheEnabled, def.Cache.Enabled)
	v.SetDefault(cfgKeyCacheDir, def.Cache.Dir)
	v.SetDefault(cfgKeyCacheTTL, def.Cache.TTL)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("SCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cacheEnabled := v.GetBool(cfgKeyCacheEnabled)
	cacheDir := v.GetString(cfgKeyCacheDir)
	if cacheEnabled {
		cacheDir, err = paths.ResolveCacheDir("", cacheDir)
		if err != nil {
			return types.Config{}, fmt.Errorf("resolve cache dir: %w", err)
		}
	}

	return types.Config{
		BaseURL:   v.GetString(cfgKeyBaseURL),
		UserAgent: v.GetString(cfgKeyUserAgent),
		Timeout:   v.GetDuration(cfgKeyTimeout),
		PageSize:  v.GetInt(cfgKeyPageSize),
		Cache: types.CacheConfig{
			Enabled: cacheEnabled,
			Dir:     cacheDir,
			TTL:     v.GetDuration(cfgKeyCacheTTL),
		},
	}, nil
}

// ensureDefaultConfigFile creates config.yaml with the commented
// defaults if the file does not exist. Existing files are left alone.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
