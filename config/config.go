package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Shopify   ShopifyConfig   `mapstructure:"shopify"`
	Pixel     PixelConfig     `mapstructure:"pixel"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Checkout  CheckoutConfig  `mapstructure:"checkout"`
	Session   SessionConfig   `mapstructure:"session"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// DatabaseConfig configures the optional Postgres event journal.
// Enabled=false disables journaling entirely.
type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ShopifyConfig configures the Storefront API cart client.
type ShopifyConfig struct {
	StoreDomain     string        `mapstructure:"store_domain"`     // e.g. my-shop.myshopify.com
	StorefrontToken string        `mapstructure:"storefront_token"` // X-Shopify-Storefront-Access-Token
	APIVersion      string        `mapstructure:"api_version"`
	APIEndpoint     string        `mapstructure:"api_endpoint"` // overrides the derived endpoint (local mocks)
	Timeout         time.Duration `mapstructure:"timeout"`
}

// Endpoint returns the Storefront GraphQL endpoint URL.
func (s ShopifyConfig) Endpoint() string {
	if s.APIEndpoint != "" {
		return s.APIEndpoint
	}
	return fmt.Sprintf("https://%s/api/%s/graphql.json", s.StoreDomain, s.APIVersion)
}

// PixelConfig configures the server-side pixel (conversions) sink.
// Empty PixelID means the pixel is not installed; calls are skipped.
type PixelConfig struct {
	Endpoint    string        `mapstructure:"endpoint"`
	PixelID     string        `mapstructure:"pixel_id"`
	AccessToken string        `mapstructure:"access_token"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// AnalyticsConfig selects the data-layer queue backend.
type AnalyticsConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	Queue        string   `mapstructure:"queue"` // redis, kafka, memory
	RedisKey     string   `mapstructure:"redis_key"`
	KafkaBrokers []string `mapstructure:"kafka_brokers"`
	KafkaTopic   string   `mapstructure:"kafka_topic"`
}

// CheckoutConfig tunes the coordinator.
// RedirectDelay is the grace period between firing tracking and releasing the
// checkout URL, so tracking beacons can flush before the browser navigates away.
type CheckoutConfig struct {
	RedirectDelay time.Duration `mapstructure:"redirect_delay"`
	SubmitTimeout time.Duration `mapstructure:"submit_timeout"`
}

// SessionConfig tunes the visitor session registry.
type SessionConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SCG_ (Storefront Checkout Gateway).
// Nested keys use underscore: SCG_SHOPIFY_STORE_DOMAIN, SCG_REDIS_HOST, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "checkout_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("shopify.store_domain", "")
	v.SetDefault("shopify.storefront_token", "")
	v.SetDefault("shopify.api_version", "2024-01")
	v.SetDefault("shopify.timeout", "10s")
	v.SetDefault("pixel.endpoint", "https://graph.facebook.com/v18.0")
	v.SetDefault("pixel.pixel_id", "")
	v.SetDefault("pixel.access_token", "")
	v.SetDefault("pixel.timeout", "5s")
	v.SetDefault("analytics.enabled", true)
	v.SetDefault("analytics.queue", "redis")
	v.SetDefault("analytics.redis_key", "datalayer:events")
	v.SetDefault("analytics.kafka_brokers", []string{"localhost:9092"})
	v.SetDefault("analytics.kafka_topic", "datalayer-events")
	v.SetDefault("checkout.redirect_delay", "250ms")
	v.SetDefault("checkout.submit_timeout", "15s")
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.sweep_interval", "5m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SCG_SHOPIFY_STORE_DOMAIN -> shopify.store_domain
	v.SetEnvPrefix("SCG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
