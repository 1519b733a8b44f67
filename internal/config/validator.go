package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/osse101/JobHunter_Go/internal/domain"
)

var (
	validLogLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	validLogFormats = map[string]bool{"json": true, "text": true}
)

// Validate checks that loaded values are usable.
// All problems are reported together, wrapped in domain.ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error

	// ENV_SCHEMA_VERSION is optional, but a stale .env must not be silently accepted
	if v := os.Getenv("ENV_SCHEMA_VERSION"); v != "" && v != ExpectedEnvSchemaVersion {
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, v))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if !validLogFormats[c.LogFormat] {
		errs = append(errs, fmt.Errorf("LOG_FORMAT %q is not one of json, text", c.LogFormat))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("DB_PATH must be set"))
	}
	if c.DailyResetHour < 0 || c.DailyResetHour > 23 {
		errs = append(errs, fmt.Errorf("DAILY_RESET_HOUR must be between 0 and 23, got %d", c.DailyResetHour))
	}
	if c.Timezone != "" && c.Timezone != DefaultTimezone {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			errs = append(errs, fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err))
		}
	}
	if c.FollowUpCheckInterval < time.Second {
		errs = append(errs, fmt.Errorf("FOLLOW_UP_CHECK_INTERVAL must be at least 1s, got %s", c.FollowUpCheckInterval))
	}
	if c.WorkerCount < 1 {
		errs = append(errs, fmt.Errorf("WORKER_COUNT must be at least 1, got %d", c.WorkerCount))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Warnings returns non-fatal observations about the configuration
func (c *Config) Warnings() []string {
	var warnings []string

	if !c.IsDevelopment() && c.LogFormat == "text" {
		warnings = append(warnings, "LOG_FORMAT is text outside development - json is easier to ship to log collectors")
	}
	if !c.IsDevelopment() && len(c.TrustedProxies) == 0 {
		warnings = append(warnings, "TRUSTED_PROXIES is empty outside development - behind a proxy every client shares one rate limit")
	}
	if c.IsDevelopment() && c.LogLevel == "error" {
		warnings = append(warnings, "LOG_LEVEL is error in development - most tracker activity will be hidden")
	}

	return warnings
}
