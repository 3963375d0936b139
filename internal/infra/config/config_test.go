package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TELEGRAM_TOKEN", "STORAGE_DRIVER", "DATABASE_URL", "SQLITE_PATH",
		"AUTH_BASE_URL", "AUTH_TIMEOUT", "LOG_LEVEL", "ENVIRONMENT",
		"CRON_SPEC_REMINDER", "REMINDER_LEAD_DAYS",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/pinkguard")

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "http://127.0.0.1:5000", cfg.AuthBaseURL)
	assert.Equal(t, 10*time.Second, cfg.AuthTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0 9 * * *", cfg.CronSpecReminder)
	assert.Equal(t, 2, cfg.ReminderLeadDays)
}

func TestFromEnv_SQLite(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("AUTH_BASE_URL", "https://auth.example.com/")
	t.Setenv("REMINDER_LEAD_DAYS", "0")

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, StorageDriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "pinkguard.db", cfg.SQLitePath)
	assert.Equal(t, "https://auth.example.com", cfg.AuthBaseURL)
	assert.Zero(t, cfg.ReminderLeadDays)
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "missing token", env: map[string]string{}, wantErr: "TELEGRAM_TOKEN"},
		{name: "missing database url", env: map[string]string{"TELEGRAM_TOKEN": "t"}, wantErr: "DATABASE_URL"},
		{name: "unknown driver", env: map[string]string{"TELEGRAM_TOKEN": "t", "STORAGE_DRIVER": "mongo"}, wantErr: "STORAGE_DRIVER"},
		{name: "bad timeout", env: map[string]string{"TELEGRAM_TOKEN": "t", "STORAGE_DRIVER": "sqlite", "AUTH_TIMEOUT": "soon"}, wantErr: "AUTH_TIMEOUT"},
		{name: "negative lead days", env: map[string]string{"TELEGRAM_TOKEN": "t", "STORAGE_DRIVER": "sqlite", "REMINDER_LEAD_DAYS": "-1"}, wantErr: "REMINDER_LEAD_DAYS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := fromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
