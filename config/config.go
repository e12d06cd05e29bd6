package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	CartStore CartStoreConfig `mapstructure:"cart_store"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Environment     string        `mapstructure:"environment"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// CatalogConfig holds catalog API configuration
type CatalogConfig struct {
	URL               string        `mapstructure:"url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	MaxRetries        int           `mapstructure:"max_retries"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
}

// CartStoreConfig holds cart persistence configuration
type CartStoreConfig struct {
	Type     string `mapstructure:"type"` // "leveldb", "redis" or "memory"
	Key      string `mapstructure:"key"`
	Path     string `mapstructure:"path"`
	RedisURL string `mapstructure:"redis_url"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// Load loads configuration from an optional YAML file and environment variables.
// An empty path searches the default locations for config.yaml.
func Load(path string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/storefront/")
	}

	// STOREFRONT_CART_STORE_TYPE -> cart_store.type
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile exports variables from ./.env without overriding ones already set.
// A missing file is not an error.
func loadEnvFile() error {
	err := godotenv.Load(".env")
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})
	v.SetDefault("server.shutdown_timeout", "10s")

	// Catalog defaults
	v.SetDefault("catalog.url", "https://fakestoreapi.com/products")
	v.SetDefault("catalog.timeout", "30s")
	v.SetDefault("catalog.max_retries", 0)
	v.SetDefault("catalog.requests_per_second", 5)

	// Cart store defaults
	v.SetDefault("cart_store.type", "leveldb")
	v.SetDefault("cart_store.key", "cart")
	v.SetDefault("cart_store.path", "./data/cart")
	v.SetDefault("cart_store.redis_url", "")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.URL == "" {
		return fmt.Errorf("catalog URL is required (set STOREFRONT_CATALOG_URL)")
	}

	if config.Catalog.MaxRetries < 0 {
		return fmt.Errorf("catalog max_retries must not be negative, got: %d", config.Catalog.MaxRetries)
	}

	switch config.CartStore.Type {
	case "leveldb":
		if config.CartStore.Path == "" {
			return fmt.Errorf("cart store path is required when cart store type is 'leveldb'")
		}
	case "redis":
		if config.CartStore.RedisURL == "" {
			return fmt.Errorf("Redis URL is required when cart store type is 'redis'")
		}
	case "memory":
	default:
		return fmt.Errorf("cart store type must be 'leveldb', 'redis' or 'memory', got: %s", config.CartStore.Type)
	}

	if config.CartStore.Key == "" {
		return fmt.Errorf("cart store key must not be empty")
	}

	if _, err := log.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("log format must be 'text' or 'json', got: %s", config.Log.Format)
	}

	return nil
}
