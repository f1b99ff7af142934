package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Centrifugo CentrifugoConfig `mapstructure:"centrifugo"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Analytics  AnalyticsConfig  `mapstructure:"analytics"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
	Port int    `mapstructure:"port"`

	// Timezone used to bucket messages into calendar days
	Timezone string `mapstructure:"timezone"`

	// CurrentUsername user returned by GET /api/me (there is no auth)
	CurrentUsername string `mapstructure:"current_username"`
}

// StorageConfig selects the entity store backend at process start
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Seed   bool   `mapstructure:"seed"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	TimeZone        string        `mapstructure:"time_zone"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.TimeZone,
	)
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

// CacheConfig TTL 0 disables the analytics cache
type CacheConfig struct {
	AnalyticsTTL time.Duration `mapstructure:"analytics_ttl"`
}

type CentrifugoConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// Enabled reports whether realtime publishing is configured
func (c *CentrifugoConfig) Enabled() bool {
	return c.URL != "" && c.APIKey != ""
}

// PaginationConfig limit defaults for list endpoints.
// A missing or invalid limit falls back to DefaultLimit; larger limits are capped at MaxLimit.
type PaginationConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit"`
}

type AnalyticsConfig struct {
	// VolumeDays length of the daily message volume series
	VolumeDays int `mapstructure:"volume_days"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`

	// File optional log file, rotated by size
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// IsProduction checks if app is in production mode
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// IsDevelopment checks if app is in development mode
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// Location returns the configured timezone
func (c *AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load reads configuration from file and environment variables.
// A missing config file is not an error; defaults and env vars are used instead.
func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	// ENV vars override config keys (app.port -> APP_PORT)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Name:            getEnvOrDefault("APP_NAME", v.GetString("app.name")),
			Env:             getEnvOrDefault("APP_ENV", v.GetString("app.env")),
			Port:            getEnvOrDefaultInt("APP_PORT", v.GetInt("app.port")),
			Timezone:        getEnvOrDefault("APP_TIMEZONE", v.GetString("app.timezone")),
			CurrentUsername: getEnvOrDefault("APP_CURRENT_USERNAME", v.GetString("app.current_username")),
		},
		Storage: StorageConfig{
			Driver: getEnvOrDefault("STORAGE_DRIVER", v.GetString("storage.driver")),
			Seed:   v.GetBool("storage.seed"),
		},
		Database: DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", v.GetString("database.host")),
			Port:            getEnvOrDefaultInt("DB_PORT", v.GetInt("database.port")),
			User:            getEnvOrDefault("DB_USER", v.GetString("database.user")),
			Password:        getEnvOrDefault("DB_PASSWORD", v.GetString("database.password")),
			Name:            getEnvOrDefault("DB_NAME", v.GetString("database.name")),
			SSLMode:         getEnvOrDefault("DB_SSL_MODE", v.GetString("database.ssl_mode")),
			TimeZone:        getEnvOrDefault("DB_TIME_ZONE", v.GetString("database.time_zone")),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
		},
		Redis: RedisConfig{
			URL: getEnvOrDefault("REDIS_URL", v.GetString("redis.url")),
		},
		Cache: CacheConfig{
			AnalyticsTTL: v.GetDuration("cache.analytics_ttl"),
		},
		Centrifugo: CentrifugoConfig{
			URL:    getEnvOrDefault("CENTRIFUGO_URL", v.GetString("centrifugo.url")),
			APIKey: getEnvOrDefault("CENTRIFUGO_API_KEY", v.GetString("centrifugo.api_key")),
		},
		Pagination: PaginationConfig{
			DefaultLimit: v.GetInt("pagination.default_limit"),
			MaxLimit:     v.GetInt("pagination.max_limit"),
		},
		Analytics: AnalyticsConfig{
			VolumeDays: v.GetInt("analytics.volume_days"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
		},
		Metrics: MetricsConfig{
			Enabled: !v.IsSet("metrics.enabled") || v.GetBool("metrics.enabled"),
			Path:    v.GetString("metrics.path"),
		},
		Logging: LoggingConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", v.GetString("logging.level")),
			Format:     getEnvOrDefault("LOG_FORMAT", v.GetString("logging.format")),
			File:       getEnvOrDefault("LOG_FILE", v.GetString("logging.file")),
			MaxSizeMB:  v.GetInt("logging.max_size_mb"),
			MaxBackups: v.GetInt("logging.max_backups"),
			MaxAgeDays: v.GetInt("logging.max_age_days"),
		},
	}

	cfg.setDefaults()

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.App.Name == "" {
		c.App.Name = "classapp-admin"
	}
	if c.App.Env == "" {
		c.App.Env = "development"
	}
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if c.App.Timezone == "" {
		c.App.Timezone = "America/Sao_Paulo"
	}
	if c.App.CurrentUsername == "" {
		c.App.CurrentUsername = "admin"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverMemory
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.TimeZone == "" {
		c.Database.TimeZone = "UTC"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 5 * time.Minute
	}
	if c.Pagination.DefaultLimit == 0 {
		c.Pagination.DefaultLimit = 10
	}
	if c.Pagination.MaxLimit == 0 {
		c.Pagination.MaxLimit = 100
	}
	if c.Analytics.VolumeDays == 0 {
		c.Analytics.VolumeDays = 30
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 100
	}
}

// getEnvOrDefault returns env value or default
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	// Handle ${VAR:default} pattern in defaultVal
	if strings.HasPrefix(defaultVal, "${") && strings.HasSuffix(defaultVal, "}") {
		inner := defaultVal[2 : len(defaultVal)-1]
		parts := strings.SplitN(inner, ":", 2)
		if len(parts) == 2 {
			return parts[1]
		}
		return ""
	}
	return defaultVal
}

// getEnvOrDefaultInt returns env value as int or default
func getEnvOrDefaultInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		var intVal int
		fmt.Sscanf(val, "%d", &intVal)
		if intVal > 0 {
			return intVal
		}
	}
	if defaultVal > 0 {
		return defaultVal
	}
	return 0
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.App.Port)
	}

	switch c.Storage.Driver {
	case DriverMemory, DriverPostgres:
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}

	if c.Pagination.DefaultLimit < 1 || c.Pagination.MaxLimit < c.Pagination.DefaultLimit {
		return fmt.Errorf("invalid pagination limits: default=%d max=%d", c.Pagination.DefaultLimit, c.Pagination.MaxLimit)
	}

	if c.Analytics.VolumeDays < 1 {
		return fmt.Errorf("invalid analytics volume_days: %d", c.Analytics.VolumeDays)
	}

	if c.Cache.AnalyticsTTL < 0 {
		return fmt.Errorf("invalid cache analytics_ttl: %s", c.Cache.AnalyticsTTL)
	}

	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.App.Timezone, err)
	}

	return nil
}
