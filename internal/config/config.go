package config

import (
	"fmt"
	"os"
	"strconv"
)

// DatabaseConfig PostgreSQL connection settings (used when STORE_BACKEND=postgres).
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// DSN builds the lib/pq connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// Config saisonnale-data (HTTP API) configuration.
type Config struct {
	HTTP struct {
		Addr string
	}
	Store struct {
		// "redis" (default) or "postgres". Both mirror the same key/value
		// payloads; the backend is an ops choice, not a schema choice.
		Backend string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	Database DatabaseConfig
	Log      struct {
		Level  string
		Format string
	}
	Facility FacilityConfig
	Relay    RelayConfig
}

// FacilityConfig static facility parameters.
type FacilityConfig struct {
	TotalRooms   int    // fixed room count, rooms are virtual slots 1..N
	SeasonStart  string // default planning anchor date ("YYYY-MM-DD")
	PeakMonth    string // month watched by the low-occupancy alert ("YYYY-MM")
	ForecastDays int    // horizon of the daily occupancy projection
}

// RelayConfig optional external form-relay endpoint for new reservations.
// Empty URL disables the relay entirely.
type RelayConfig struct {
	URL            string
	TimeoutSeconds int
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Store.Backend = getEnv("STORE_BACKEND", "redis")
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = 0

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "saisonnale")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.Facility.TotalRooms = parseInt(getEnv("TOTAL_ROOMS", "24"), 24)
	// The residence operates seasonally; the dashboard opens on the season's
	// first month rather than on "today".
	cfg.Facility.SeasonStart = getEnv("SEASON_START", "2025-07-01")
	cfg.Facility.PeakMonth = getEnv("PEAK_MONTH", "2025-08")
	cfg.Facility.ForecastDays = parseInt(getEnv("FORECAST_DAYS", "90"), 90)

	cfg.Relay.URL = getEnv("RELAY_URL", "")
	cfg.Relay.TimeoutSeconds = parseInt(getEnv("RELAY_TIMEOUT_SECONDS", "10"), 10)

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
