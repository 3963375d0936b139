package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

// Supported storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	TelegramToken    string
	StorageDriver    string
	DatabaseURL      string // postgres only
	SQLitePath       string // sqlite only
	AuthBaseURL      string
	AuthTimeout      time.Duration
	LogLevel         string
	Environment      string
	CronSpecReminder string
	ReminderLeadDays int
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()
	return fromEnv()
}

// LoadStorage is Load without the Telegram token requirement, for commands
// that only touch the database.
func LoadStorage() (*AppConfig, error) {
	_ = godotenv.Load()
	cfg := &AppConfig{}
	if err := cfg.loadStorage(); err != nil {
		return nil, err
	}
	cfg.loadLogging()
	return cfg, nil
}

func fromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}
	var err error

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	if err = cfg.loadStorage(); err != nil {
		return nil, err
	}
	cfg.loadLogging()

	cfg.AuthBaseURL = strings.TrimRight(os.Getenv("AUTH_BASE_URL"), "/")
	if cfg.AuthBaseURL == "" {
		cfg.AuthBaseURL = "http://127.0.0.1:5000"
	}

	cfg.AuthTimeout = 10 * time.Second
	if raw := os.Getenv("AUTH_TIMEOUT"); raw != "" {
		cfg.AuthTimeout, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTH_TIMEOUT: %w", err)
		}
		if cfg.AuthTimeout <= 0 {
			return nil, fmt.Errorf("invalid AUTH_TIMEOUT: must be positive")
		}
	}

	cfg.CronSpecReminder = os.Getenv("CRON_SPEC_REMINDER")
	if cfg.CronSpecReminder == "" {
		cfg.CronSpecReminder = "0 9 * * *" // Default: 9 AM daily
	}

	cfg.ReminderLeadDays = 2
	if raw := os.Getenv("REMINDER_LEAD_DAYS"); raw != "" {
		cfg.ReminderLeadDays, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REMINDER_LEAD_DAYS: %w", err)
		}
		if cfg.ReminderLeadDays < 0 {
			return nil, fmt.Errorf("invalid REMINDER_LEAD_DAYS: must not be negative")
		}
	}

	return cfg, nil
}

func (cfg *AppConfig) loadStorage() error {
	cfg.StorageDriver = strings.ToLower(os.Getenv("STORAGE_DRIVER"))
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = StorageDriverPostgres
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is not set")
		}
	case StorageDriverSQLite:
		cfg.SQLitePath = os.Getenv("SQLITE_PATH")
		if cfg.SQLitePath == "" {
			cfg.SQLitePath = "pinkguard.db"
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	return nil
}

func (cfg *AppConfig) loadLogging() {
	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}
}
