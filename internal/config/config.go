// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const appDirName = "hit-calc"

type Config struct {
	Debug   bool          `mapstructure:"debug"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

type StorageConfig struct {
	Driver      string `mapstructure:"driver"`
	Path        string `mapstructure:"path"`
	OpenRetries uint   `mapstructure:"open_retries"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
	Format     string `mapstructure:"format"`
}

const (
	DefaultDriver      = "sqlite"
	DefaultOpenRetries = 5
	DefaultMaxSizeMB   = 5
	DefaultMaxBackups  = 3
	DefaultMaxAgeDays  = 14
)

// DataDir is where the state database and log file live unless configured
// otherwise.
func DataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "." + appDirName
	}
	return filepath.Join(dir, appDirName)
}

// LoadConfig reads the optional config file at path, layers HIT_CALC_*
// environment variables over it and validates the result. An empty path
// means defaults plus environment only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	dataDir := DataDir()
	defaults := map[string]interface{}{
		"debug":                false,
		"storage.driver":       DefaultDriver,
		"storage.path":         filepath.Join(dataDir, "state.db"),
		"storage.open_retries": DefaultOpenRetries,
		"log.file":             filepath.Join(dataDir, appDirName+".log"),
		"log.max_size_mb":      DefaultMaxSizeMB,
		"log.max_backups":      DefaultMaxBackups,
		"log.max_age_days":     DefaultMaxAgeDays,
		"log.compress":         true,
		"log.format":           "json",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix("HIT_CALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config error: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &cfg, cfg.Validate()
}

// Validate checks the values that would otherwise fail late, after the
// terminal has been taken over.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "sqlite":
		if c.Storage.Path == "" {
			return errors.New("storage.path is required for the sqlite driver")
		}
	case "memory":
	default:
		return fmt.Errorf("invalid storage.driver %q", c.Storage.Driver)
	}
	if c.Log.File == "" {
		return errors.New("log.file is required")
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("invalid log.format %q", c.Log.Format)
	}
	if c.Log.MaxSizeMB <= 0 {
		return errors.New("invalid log.max_size_mb")
	}
	if c.Log.MaxBackups < 0 {
		return errors.New("invalid log.max_backups")
	}
	if c.Log.MaxAgeDays < 0 {
		return errors.New("invalid log.max_age_days")
	}
	return nil
}
