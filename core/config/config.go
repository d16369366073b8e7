package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"hearth-mirror/core/graph/memgraph"
	"hearth-mirror/core/logger"
	"hearth-mirror/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by LoadConfig when a value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for the object storage holding graph dumps.
	Storage storage.Config `mapstructure:"storage"`
	// Dump selects where the graph dump is read from.
	Dump memgraph.Config `mapstructure:"dump"`
}

// LoadConfig loads configuration from environment variables and the .env file
// found in dir, then validates it.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is fine; the environment alone may configure everything.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")

	// LOG_LEVEL -> log.level, DUMP_SOURCE -> dump.source, ...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if !c.Dump.IsValidSource() {
		return fmt.Errorf("%w: dump.source %q (want %q or %q)", ErrInvalidConfig, c.Dump.Source, memgraph.SourceFile, memgraph.SourceBucket)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format %q (want json or console)", ErrInvalidConfig, c.Log.Format)
	}
	if c.Dump.Source == memgraph.SourceBucket && strings.TrimSpace(c.Storage.Bucket) == "" {
		return fmt.Errorf("%w: storage.bucket is required for bucket dumps", ErrInvalidConfig)
	}
	return nil
}

// registerDefaults walks the section structs and registers every
// `mapstructure` key with its `default` tag, so AutomaticEnv can see it.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for i := range t.NumField() {
		field := t.Field(i)
		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
