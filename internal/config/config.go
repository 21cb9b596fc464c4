package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv               string        `json:"app_env"`
	ServerPort           int           `json:"server_port"`
	JWTSecretKey         string        `json:"jwt_secret_key"`
	JWTExpirationHours   int           `json:"jwt_expiration_hours"`
	DefaultRateLimit     int           `json:"default_rate_limit"`
	GlobalRateLimit      int           `json:"global_rate_limit"`
	AllowedOrigins       []string      `json:"allowed_origins"`
	MaxRequestBytes      int64         `json:"max_request_bytes"`
	AutoApproveOwners    bool          `json:"auto_approve_owners"`
	SubscriptionRequired bool          `json:"subscription_required"`
	InvoiceDueDays       int           `json:"invoice_due_days"`
	InvoiceReminderDays  int           `json:"invoice_reminder_days"`
	OverdueSweepInterval time.Duration `json:"overdue_sweep_interval"`
	DashboardCacheTTL    time.Duration `json:"dashboard_cache_ttl"`
	PasswordResetTTL     time.Duration `json:"password_reset_ttl"`
	PhoneRegion          string        `json:"phone_region"`
	FrontendURL          string        `json:"frontend_url"`
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY is required")

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:               getEnvWithDefault("APP_ENV", "development"),
		ServerPort:           getEnvIntWithDefault("SERVER_PORT", 10000),
		JWTSecretKey:         os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours:   getEnvIntWithDefault("JWT_EXPIRATION_HOURS", 24),
		DefaultRateLimit:     getEnvIntWithDefault("DEFAULT_RATE_LIMIT", 600),   // per user per minute
		GlobalRateLimit:      getEnvIntWithDefault("GLOBAL_RATE_LIMIT", 10000), // per IP per minute
		AllowedOrigins:       getEnvListWithDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		MaxRequestBytes:      int64(getEnvIntWithDefault("MAX_REQUEST_BYTES", 10*1024*1024)),
		AutoApproveOwners:    getEnvBoolWithDefault("AUTO_APPROVE_OWNERS", false),
		SubscriptionRequired: getEnvBoolWithDefault("SUBSCRIPTION_REQUIRED", false),
		InvoiceDueDays:       getEnvIntWithDefault("INVOICE_DUE_DAYS", 7),
		InvoiceReminderDays:  getEnvIntWithDefault("INVOICE_REMINDER_DAYS", 3),
		OverdueSweepInterval: getEnvDurationWithDefault("OVERDUE_SWEEP_INTERVAL", time.Hour),
		DashboardCacheTTL:    getEnvDurationWithDefault("DASHBOARD_CACHE_TTL", 5*time.Minute),
		PasswordResetTTL:     getEnvDurationWithDefault("PASSWORD_RESET_TTL", 30*time.Minute),
		PhoneRegion:          getEnvWithDefault("PHONE_REGION", "VN"),
		FrontendURL:          getEnvWithDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	if cfg.JWTSecretKey == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpirationHours) * time.Hour
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDurationWithDefault returns environment variable as duration or default if not set
func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvListWithDefault splits a comma separated variable
func getEnvListWithDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
