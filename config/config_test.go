package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "Asia/Kolkata", cfg.AppTimezone)
	assert.Equal(t, 30, cfg.SummaryWindowDays)
	assert.Equal(t, "smartattendance", cfg.DBName)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_TIMEZONE", "Asia/Bangkok")
	t.Setenv("SUMMARY_WINDOW_DAYS", "7")

	cfg := Load()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "Asia/Bangkok", cfg.AppTimezone)
	assert.Equal(t, 7, cfg.SummaryWindowDays)
}

func TestLoadIgnoresBadWindowValue(t *testing.T) {
	t.Setenv("SUMMARY_WINDOW_DAYS", "yes")
	assert.Equal(t, 30, Load().SummaryWindowDays)

	t.Setenv("SUMMARY_WINDOW_DAYS", "-3")
	assert.Equal(t, 30, Load().SummaryWindowDays)
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_USER", "kiosk")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "attendance")

	dsn := Load().DSN()
	assert.Contains(t, dsn, "host=db.example.com")
	assert.Contains(t, dsn, "user=kiosk")
	assert.Contains(t, dsn, "dbname=attendance")
	assert.Contains(t, dsn, "sslmode=disable")
}
