package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultSpreadsheetID is the published spreadsheet the directory reads when none is configured
const DefaultSpreadsheetID = "1PBN_HQOi5ZpKDd63mouxttFvvCwtmY97Tb5if5_cdBA"

type Config struct {
	Server         ServerConfig
	Sheets         SheetsConfig
	CircuitBreaker CircuitBreakerConfig
	Security       SecurityConfig
	Listing        ListingConfig
	Log            LogConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

// SheetsConfig describes where the published spreadsheet lives and how its tabs are named
type SheetsConfig struct {
	BaseURL       string
	SpreadsheetID string
	ClientsTab    string
	AccountsTab   string
	BranchesTab   string
	FetchTimeout  time.Duration
	UserAgent     string
}

type CircuitBreakerConfig struct {
	MaxFailures       int
	ResetTimeout      time.Duration
	HalfOpenSuccesses int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type ListingConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

type LogConfig struct {
	Level string
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Sheets: SheetsConfig{
			BaseURL:       strings.TrimRight(getEnv("SHEETS_BASE_URL", "https://docs.google.com/spreadsheets/d"), "/"),
			SpreadsheetID: getEnv("SHEETS_SPREADSHEET_ID", DefaultSpreadsheetID),
			ClientsTab:    getEnv("SHEETS_TAB_CLIENTS", "clientes"),
			AccountsTab:   getEnv("SHEETS_TAB_ACCOUNTS", "contas"),
			BranchesTab:   getEnv("SHEETS_TAB_BRANCHES", "agencias"),
			FetchTimeout:  getDurationEnv("SHEETS_FETCH_TIMEOUT", 10*time.Second),
			UserAgent:     getEnv("SHEETS_USER_AGENT", "client-directory/1.0"),
		},
		CircuitBreaker: CircuitBreakerConfig{
			MaxFailures:       getIntEnv("BREAKER_MAX_FAILURES", 5),
			ResetTimeout:      getDurationEnv("BREAKER_RESET_TIMEOUT", 30*time.Second),
			HalfOpenSuccesses: getIntEnv("BREAKER_HALF_OPEN_SUCCESSES", 1),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Listing: ListingConfig{
			DefaultPageSize: getIntEnv("LIST_DEFAULT_PAGE_SIZE", 10),
			MaxPageSize:     getIntEnv("LIST_MAX_PAGE_SIZE", 100),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate reports configuration that would make the service unusable
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Sheets.SpreadsheetID) == "" {
		errs = append(errs, errors.New("SHEETS_SPREADSHEET_ID must not be empty"))
	}
	if c.Sheets.BaseURL == "" {
		errs = append(errs, errors.New("SHEETS_BASE_URL must not be empty"))
	}
	if c.Sheets.ClientsTab == "" || c.Sheets.AccountsTab == "" || c.Sheets.BranchesTab == "" {
		errs = append(errs, errors.New("sheet tab names must not be empty"))
	}
	if c.Sheets.FetchTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHEETS_FETCH_TIMEOUT must be positive, got %s", c.Sheets.FetchTimeout))
	}
	if c.CircuitBreaker.MaxFailures <= 0 {
		errs = append(errs, fmt.Errorf("BREAKER_MAX_FAILURES must be positive, got %d", c.CircuitBreaker.MaxFailures))
	}
	if c.Listing.DefaultPageSize <= 0 || c.Listing.MaxPageSize <= 0 {
		errs = append(errs, errors.New("page sizes must be positive"))
	} else if c.Listing.DefaultPageSize > c.Listing.MaxPageSize {
		errs = append(errs, fmt.Errorf("LIST_DEFAULT_PAGE_SIZE (%d) exceeds LIST_MAX_PAGE_SIZE (%d)",
			c.Listing.DefaultPageSize, c.Listing.MaxPageSize))
	}

	return errors.Join(errs...)
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// SlogLevel maps LOG_LEVEL onto a slog level, falling back to info
func (c *LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production environment, defaulting to all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
