// Package config loads the bookingform CLI configuration from an optional
// YAML file, an optional .env file and BOOKINGFORM_ environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/goliatone/go-bookingform/internal/logging"
	"github.com/goliatone/go-bookingform/pkg/storage"
)

// EnvPrefix namespaces environment overrides, e.g. BOOKINGFORM_LOG_LEVEL.
const EnvPrefix = "BOOKINGFORM"

// Config holds all configuration values.
type Config struct {
	Log     logging.Config `mapstructure:"log"`
	Storage storage.Config `mapstructure:"storage"`
	Catalog CatalogConfig  `mapstructure:"catalog"`
	Server  ServerConfig   `mapstructure:"server"`
	// PayloadCheck verifies payloads against the OpenAPI document before
	// they are submitted.
	PayloadCheck bool `mapstructure:"payload_check"`
}

// CatalogConfig points at an alternative product catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig configures the vehicles options endpoint.
type ServerConfig struct {
	Addr     string `mapstructure:"addr"`
	BasePath string `mapstructure:"base_path"`
}

// Options controls where Load looks for its inputs.
type Options struct {
	// ConfigFile is an explicit YAML file. When empty, bookingform.yaml is
	// looked up in the working directory and its absence is not an error.
	ConfigFile string
	// EnvFile is loaded into the process environment before reading
	// variables. A missing file is ignored.
	EnvFile string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_path", "stderr")
	v.SetDefault("log.development", false)
	v.SetDefault("storage.backend", string(storage.BackendFile))
	v.SetDefault("storage.file_path", "")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.prefix", "bookingform:")
	v.SetDefault("catalog.path", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.base_path", "/")
	v.SetDefault("payload_check", true)
}

// Load reads configuration. Precedence from highest: environment (including
// values from the .env file), config file, defaults.
func Load(opts Options) (Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load env file %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("bookingform")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: read bookingform.yaml: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the CLI cannot act on.
func (c Config) Validate() error {
	switch storage.Backend(strings.ToLower(string(c.Storage.Backend))) {
	case "", storage.BackendMemory, storage.BackendFile, storage.BackendRedis:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New("config: server address is required")
	}
	return nil
}
