// Package config loads application settings and the page seed.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/linkpage/internal/validation"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

const (
	envPrefix      = "LINKPAGE"
	appDirName     = "linkpage"
	fileStoreName  = "settings.json"
	sqliteFileName = "linkpage.db"
)

// Config holds the application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`

	// Seed is an optional YAML file with the initial profile and links.
	Seed string `mapstructure:"seed"`
}

// StorageConfig selects where theme settings are persisted.
type StorageConfig struct {
	Backend string `mapstructure:"backend" validate:"oneof=memory file sqlite"`
	Path    string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Human bool   `mapstructure:"human"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.path", "")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.human", true)
	v.SetDefault("seed", "")
}

// Load reads configuration from configPath (or the default search paths when
// empty) and LINKPAGE_ environment variables. A missing file in the search
// paths is not an error; a missing explicit file is.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, appDirName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	return validation.Struct(c)
}

// StoragePath returns the configured store path, or the per-user default for
// the selected backend. The memory backend has no path.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Backend == BackendMemory {
		return "", nil
	}
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	name := fileStoreName
	if c.Storage.Backend == BackendSQLite {
		name = sqliteFileName
	}
	return filepath.Join(dir, appDirName, name), nil
}
