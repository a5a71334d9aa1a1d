package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	TxMaxAttempts    int    `mapstructure:"TX_MAX_ATTEMPTS"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis configuration (locks and notification stream)
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Locking: "memory" serializes within one process, "redis" across replicas
	LockBackend string `mapstructure:"LOCK_BACKEND"`
	LockTTLSec  int    `mapstructure:"LOCK_TTL_SEC"`

	// Identity directory: "static" reads DIRECTORY_FILE, "ldap" queries LDAP groups
	DirectoryBackend string `mapstructure:"DIRECTORY_BACKEND"`
	DirectoryFile    string `mapstructure:"DIRECTORY_FILE"`

	// LDAP configuration
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBindDN             string `mapstructure:"LDAP_BIND_DN"`
	LDAPBindPW             string `mapstructure:"LDAP_BIND_PW"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPGroupBaseDN        string `mapstructure:"LDAP_GROUP_BASE_DN"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`

	// Workflow state notifications
	NotifyBackend string `mapstructure:"NOTIFY_BACKEND"`
	NotifyStream  string `mapstructure:"NOTIFY_STREAM"`

	// Tracing
	OTelExporter    string  `mapstructure:"OTEL_EXPORTER"`
	OTelEndpoint    string  `mapstructure:"OTEL_ENDPOINT"`
	OTelSampleRatio float64 `mapstructure:"OTEL_SAMPLE_RATIO"`

	// Workflow tuning
	DefaultWindowHours  int `mapstructure:"WORKFLOW_DEFAULT_WINDOW_HOURS"`
	DefaultForecastDays int `mapstructure:"FORECAST_DEFAULT_DAYS"`
	MaxForecastDays     int `mapstructure:"FORECAST_MAX_DAYS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "assignment_workflow")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("TX_MAX_ATTEMPTS", 3)

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Redis defaults
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("LOCK_BACKEND", "memory")
	viper.SetDefault("LOCK_TTL_SEC", 30)

	viper.SetDefault("DIRECTORY_BACKEND", "static")
	viper.SetDefault("DIRECTORY_FILE", "config/directory.yaml")

	// LDAP defaults
	viper.SetDefault("LDAP_HOST", "ldap.example.com")
	viper.SetDefault("LDAP_PORT", "636")
	viper.SetDefault("LDAP_BIND_DN", "CN=Assignment Service,OU=Users,DC=example,DC=com")
	viper.SetDefault("LDAP_BIND_PW", "")
	viper.SetDefault("LDAP_BASE_DN", "DC=example,DC=com")
	viper.SetDefault("LDAP_GROUP_BASE_DN", "OU=Groups,DC=example,DC=com")
	viper.SetDefault("LDAP_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("LDAP_TIMEOUT_SEC", 10)

	viper.SetDefault("NOTIFY_BACKEND", "log")
	viper.SetDefault("NOTIFY_STREAM", "assignment:workflow-states")

	viper.SetDefault("OTEL_EXPORTER", "none")
	viper.SetDefault("OTEL_ENDPOINT", "")
	viper.SetDefault("OTEL_SAMPLE_RATIO", 1.0)

	viper.SetDefault("WORKFLOW_DEFAULT_WINDOW_HOURS", 8)
	viper.SetDefault("FORECAST_DEFAULT_DAYS", 30)
	viper.SetDefault("FORECAST_MAX_DAYS", 90)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.LockBackend {
	case "memory":
	case "redis":
		if config.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when LOCK_BACKEND=redis")
		}
	default:
		return fmt.Errorf("unknown LOCK_BACKEND %q", config.LockBackend)
	}

	switch config.NotifyBackend {
	case "log":
	case "redis":
		if config.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when NOTIFY_BACKEND=redis")
		}
	default:
		return fmt.Errorf("unknown NOTIFY_BACKEND %q", config.NotifyBackend)
	}

	switch config.DirectoryBackend {
	case "static", "ldap":
	default:
		return fmt.Errorf("unknown DIRECTORY_BACKEND %q", config.DirectoryBackend)
	}

	if config.DefaultWindowHours < 1 {
		return fmt.Errorf("WORKFLOW_DEFAULT_WINDOW_HOURS must be positive")
	}
	if config.MaxForecastDays < 1 || config.DefaultForecastDays > config.MaxForecastDays {
		return fmt.Errorf("FORECAST_DEFAULT_DAYS must not exceed FORECAST_MAX_DAYS")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesRedis reports whether any component needs a Redis client
func (c *Config) UsesRedis() bool {
	return c.LockBackend == "redis" || c.NotifyBackend == "redis"
}
