package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DatabaseDriverPostgres = "pgx"
	DatabaseDriverMySQL    = "mysql"

	PaymentProviderStub   = "stub"
	PaymentProviderStripe = "stripe"
)

type Config struct {
	App               AppConfig
	HTTP              ServerConfig
	GRPC              ServerConfig
	Database          DatabaseConfig
	Log               LogConfig
	InternalEndpoints InternalEndpointsConfig
	Subscriptions     SubscriptionConfig
	Payment           PaymentConfig
	Redis             RedisConfig
	Jobs              JobsConfig
}

type AppConfig struct {
	ServiceName string
}

type ServerConfig struct {
	Host string
	Port string
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
	// Format is json or text.
	Format string
}

type InternalEndpointsConfig struct {
	AuthGRPCAddr string
}

type SubscriptionConfig struct {
	// Location used for calendar-day expiry arithmetic.
	Location     *time.Location
	GateCacheTTL time.Duration
}

type PaymentConfig struct {
	Provider        string
	Currency        string
	StubDelay       time.Duration
	StripeSecretKey string
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type JobsConfig struct {
	ExpirationCheckInterval time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		return nil, errors.New("DATABASE_DSN environment variable is required")
	}

	driver := strings.ToLower(getEnv("DATABASE_DRIVER", DatabaseDriverPostgres))
	if driver != DatabaseDriverPostgres && driver != DatabaseDriverMySQL {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", driver)
	}

	location := time.Local
	if tz := strings.TrimSpace(os.Getenv("SUBSCRIPTION_TIMEZONE")); tz != "" {
		loaded, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid SUBSCRIPTION_TIMEZONE %q: %w", tz, err)
		}
		location = loaded
	}

	provider := strings.ToLower(getEnv("PAYMENT_PROVIDER", PaymentProviderStub))
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	switch provider {
	case PaymentProviderStub:
	case PaymentProviderStripe:
		if stripeKey == "" {
			return nil, errors.New("STRIPE_SECRET_KEY is required when PAYMENT_PROVIDER=stripe")
		}
	default:
		return nil, fmt.Errorf("unsupported PAYMENT_PROVIDER %q", provider)
	}

	return &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "investor-subscriptions-service"),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		GRPC: ServerConfig{
			Host: getEnv("GRPC_HOST", "0.0.0.0"),
			Port: getEnv("GRPC_PORT", "9090"),
		},
		Database: DatabaseConfig{
			Driver:          driver,
			DSN:             dsn,
			MaxOpenConns:    getIntEnv("DATABASE_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DATABASE_CONN_MAX_LIFETIME_MINUTES", 30*time.Minute),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
		InternalEndpoints: InternalEndpointsConfig{
			AuthGRPCAddr: getEnv("AUTH_SERVICE_GRPC_ADDR", "localhost:9090"),
		},
		Subscriptions: SubscriptionConfig{
			Location:     location,
			GateCacheTTL: time.Duration(getIntEnv("GATE_CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Payment: PaymentConfig{
			Provider:        provider,
			Currency:        strings.ToUpper(getEnv("PAYMENT_CURRENCY", "USD")),
			StubDelay:       time.Duration(getIntEnv("PAYMENT_STUB_DELAY_MS", 0)) * time.Millisecond,
			StripeSecretKey: stripeKey,
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", ""),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getIntEnv("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "investor-subscriptions:"),
		},
		Jobs: JobsConfig{
			ExpirationCheckInterval: getDurationEnv("EXPIRATION_CHECK_INTERVAL_MINUTES", time.Hour),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}
