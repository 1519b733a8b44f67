package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// LogDir, when set, also receives a session log file per run
	LogDir string

	// DBPath is the SQLite file holding the tracker snapshot
	DBPath string
	// TasksFile is an optional YAML catalog replacing the built-in daily tasks
	TasksFile string

	// DailyResetHour is the local hour (0-23) at which daily tasks are re-armed
	DailyResetHour int
	// Timezone is an IANA zone name, or "Local"
	Timezone string

	// FollowUpCheckInterval is how often due follow-ups are swept and announced
	FollowUpCheckInterval time.Duration
	// WorkerCount sizes the background job pool
	WorkerCount int

	// TrustedProxies may report the client address in X-Forwarded-For
	TrustedProxies []string

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:              strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:             strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:                os.Getenv("LOG_DIR"),
		Environment:           getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:           getEnv("SERVICE_NAME", DefaultServiceName),
		Version:               getEnv("VERSION", DefaultVersion),
		DBPath:                getEnv("DB_PATH", DefaultDBPath),
		TasksFile:             getEnv("TASKS_FILE", DefaultTasksFile),
		DailyResetHour:        getEnvAsInt("DAILY_RESET_HOUR", DefaultDailyResetHour),
		Timezone:              getEnv("TIMEZONE", DefaultTimezone),
		FollowUpCheckInterval: getEnvAsDuration("FOLLOW_UP_CHECK_INTERVAL", DefaultFollowUpCheckInterval),
		WorkerCount:           getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		TrustedProxies:        getEnvAsList("TRUSTED_PROXIES"),
		ShutdownTimeout:       getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// Location resolves the configured timezone, falling back to time.Local
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, DefaultTimezone) {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// IsDevelopment reports whether the app runs in a dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, returning the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a duration environment variable, returning the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
