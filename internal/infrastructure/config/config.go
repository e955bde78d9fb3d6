package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Email providers
const (
	EmailNone     = "none"
	EmailSMTP     = "smtp"
	EmailSendGrid = "sendgrid"
)

// Config holds application configuration values.
type Config struct {
	Port       string
	Env        string
	LogLevel   string
	AppBaseURL string

	StoreBackend string
	MongoURI     string
	MongoDBName  string
	RedisURL     string
	SeedFile     string

	JWTSecret          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	SimulateLatency             bool
	AllowAdminEmailProvisioning bool
	SeedAdminEmails             []string

	EmailProvider    string
	EmailHost        string
	EmailPort        string
	EmailUsername    string
	EmailAppPassword string
	EmailFrom        string
	EmailFromName    string
	SendGridAPIKey   string

	GoogleClientID     string
	GoogleClientSecret string

	RateLimitPerSecond float64
	CacheWarmSchedule  string
	StatsSchedule      string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:8080"),

		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", StoreMemory)),
		MongoURI:     getEnv("MONGODB_URI", ""),
		MongoDBName:  getEnv("MONGODB_DB_NAME", "suppliers_egypt"),
		RedisURL:     getEnv("REDIS_URL", ""),
		SeedFile:     getEnv("SEED_FILE", ""),

		JWTSecret:          getEnv("JWT_SECRET", ""),
		AccessTokenExpiry:  time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 15)),
		RefreshTokenExpiry: time.Hour * time.Duration(getEnvAsInt("REFRESH_TOKEN_EXPIRY_HOURS", 168)), // 7 days

		SimulateLatency:             getEnvAsBool("SIMULATE_LATENCY", false),
		AllowAdminEmailProvisioning: getEnvAsBool("ALLOW_ADMIN_EMAIL_PROVISIONING", false),
		SeedAdminEmails:             getEnvAsList("SEED_ADMIN_EMAILS"),

		EmailProvider:    strings.ToLower(getEnv("EMAIL_PROVIDER", EmailNone)),
		EmailHost:        getEnv("EMAIL_HOST", ""),
		EmailPort:        getEnv("EMAIL_PORT", "587"),
		EmailUsername:    getEnv("EMAIL_USERNAME", ""),
		EmailAppPassword: getEnv("EMAIL_APP_PASSWORD", ""),
		EmailFrom:        getEnv("EMAIL_FROM", ""),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "موردين مصر"),
		SendGridAPIKey:   getEnv("SENDGRID_API_KEY", ""),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),

		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		CacheWarmSchedule:  getEnv("CACHE_WARM_SCHEDULE", "@every 5m"),
		StatsSchedule:      getEnv("STATS_SCHEDULE", "@hourly"),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// Validate checks the combinations the server can't start without.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	switch c.StoreBackend {
	case StoreMemory:
	case StoreMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGODB_URI is required when STORE_BACKEND=mongo"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend))
	}
	switch c.EmailProvider {
	case EmailNone:
	case EmailSMTP:
		if c.EmailHost == "" || c.EmailFrom == "" {
			errs = append(errs, errors.New("EMAIL_HOST and EMAIL_FROM are required when EMAIL_PROVIDER=smtp"))
		}
	case EmailSendGrid:
		if c.SendGridAPIKey == "" || c.EmailFrom == "" {
			errs = append(errs, errors.New("SENDGRID_API_KEY and EMAIL_FROM are required when EMAIL_PROVIDER=sendgrid"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown EMAIL_PROVIDER %q", c.EmailProvider))
	}
	if c.RateLimitPerSecond <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND must be positive"))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAccessTokenExpiry returns the lifetime of access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetRefreshTokenExpiry returns the expiry duration for refresh tokens.
func (c *Config) GetRefreshTokenExpiry() time.Duration {
	return c.RefreshTokenExpiry
}

func (c *Config) GetAllowAdminEmailProvisioning() bool {
	return c.AllowAdminEmailProvisioning
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(name, ""), 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}

// comma separated, blanks dropped
func getEnvAsList(name string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(name, ""), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
