package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	StorageDriver     string
	MigrationsPath    string
	TxIsolation       string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// Refresh Token Config
	RefreshTokenExpiryDuration time.Duration

	// Ledger
	BaseCurrency        string
	SupportedCurrencies []string

	// Bootstrap administrator, created at start-up when both are set
	AdminUsername string
	AdminPassword string

	// Infrastructure
	RedisURL           string
	EventsChannel      string
	RateLimit          string
	MetricsEnabled     bool
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("TX_ISOLATION", "read committed")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "wallet-ledger")
	v.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	v.SetDefault("BASE_CURRENCY", domain.DefaultBaseCurrency)
	v.SetDefault("SUPPORTED_CURRENCIES", strings.Join(domain.DefaultCurrencies(), ","))
	v.SetDefault("ADMIN_USERNAME", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("EVENTS_CHANNEL", "ledger_events")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.StorageDriver = strings.ToLower(v.GetString("STORAGE_DRIVER"))
	if cfg.StorageDriver != StorageDriverPostgres && cfg.StorageDriver != StorageDriverMemory {
		log.Printf("Warning: unknown STORAGE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StorageDriver, StorageDriverPostgres)
		cfg.StorageDriver = StorageDriverPostgres
	}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" && cfg.StorageDriver == StorageDriverPostgres {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	// Load JWT Secret
	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = parseDuration(v, "JWT_EXPIRY_DURATION", time.Hour)
	cfg.RefreshTokenExpiryDuration = parseDuration(v, "REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour)
	cfg.ShutdownTimeout = parseDuration(v, "SHUTDOWN_TIMEOUT", 10*time.Second)

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "wallet-ledger"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.BaseCurrency = strings.ToUpper(strings.TrimSpace(v.GetString("BASE_CURRENCY")))
	cfg.SupportedCurrencies = splitList(v.GetString("SUPPORTED_CURRENCIES"))
	if len(cfg.SupportedCurrencies) == 0 {
		cfg.SupportedCurrencies = domain.DefaultCurrencies()
		log.Println("Warning: SUPPORTED_CURRENCIES is empty. Using the default currency set.")
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.TxIsolation = strings.ToLower(v.GetString("TX_ISOLATION"))
	cfg.AdminUsername = v.GetString("ADMIN_USERNAME")
	cfg.AdminPassword = v.GetString("ADMIN_PASSWORD")
	cfg.RedisURL = v.GetString("REDIS_URL")
	cfg.EventsChannel = v.GetString("EVENTS_CHANNEL")
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.MetricsEnabled = v.GetBool("METRICS_ENABLED")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

// CurrencyRegistry builds the currency registry described by the configuration.
func (c *Config) CurrencyRegistry() (*domain.CurrencyRegistry, error) {
	return domain.NewCurrencyRegistry(c.BaseCurrency, c.SupportedCurrencies)
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
