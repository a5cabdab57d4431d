package config

import (
	"os"
	"strconv"
	"strings"
)

// Config contains the application configuration.
type Config struct {
	Env      string // local | staging | prod
	LogLevel string

	// Backend API
	APIBaseURL     string
	APIToken       string // bearer token; empty until login
	APITimeoutSec  int
	RateLimitRPS   int // 0 disables client-side throttling
	RateLimitBurst int

	// Locale for user-facing messages (toasts, reports)
	Locale string

	// Reports
	ReportsDir string
}

// Load reads the configuration from environment variables.
func Load() *Config {
	// APP_ENV (fallback to ENV for backward compat, default: local)
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = os.Getenv("ENV")
	}
	if env == "" {
		env = "local"
	}

	// LOG_LEVEL (default: debug)
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "debug"
	}

	// ---------- Backend API ----------
	apiBase := strings.TrimRight(strings.TrimSpace(os.Getenv("API_BASE_URL")), "/")
	if apiBase == "" {
		apiBase = "http://localhost:8080"
	}
	apiToken := strings.TrimSpace(os.Getenv("API_TOKEN"))
	apiTimeout := envInt("API_TIMEOUT_SECONDS", 30)

	// ---------- Rate Limiting ----------
	rateLimitRPS := envInt("RATE_LIMIT_RPS", 0)
	rateLimitBurst := envInt("RATE_LIMIT_BURST", 0)

	// ---------- Locale ----------
	locale := strings.TrimSpace(os.Getenv("LOCALE"))
	if locale == "" {
		locale = "en"
	}

	// ---------- Reports ----------
	reportsDir := strings.TrimSpace(os.Getenv("REPORTS_DIR"))
	if reportsDir == "" {
		reportsDir = "."
	}

	return &Config{
		Env:            env,
		LogLevel:       logLevel,
		APIBaseURL:     apiBase,
		APIToken:       apiToken,
		APITimeoutSec:  apiTimeout,
		RateLimitRPS:   rateLimitRPS,
		RateLimitBurst: rateLimitBurst,
		Locale:         locale,
		ReportsDir:     reportsDir,
	}
}

// envInt reads an int env var with a default value.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
