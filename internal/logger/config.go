package logger

import (
	"log/slog"
	"strings"
)

// Config describes the process logger
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	// AddSource includes file:line in every record
	AddSource bool
}

// NewConfig creates a config from explicit values
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// LogLevel maps Level onto slog, treating unknown values as info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes identifies the running instance; empty names fall back to defaults
func (c Config) BaseAttributes() []slog.Attr {
	service, version := c.ServiceName, c.Version
	if service == "" {
		service = DefaultServiceName
	}
	if version == "" {
		version = DefaultVersion
	}

	attrs := []slog.Attr{
		slog.String(AttrKeyService, service),
		slog.String(AttrKeyVersion, version),
	}
	if c.Environment != "" {
		attrs = append(attrs, slog.String(AttrKeyEnvironment, c.Environment))
	}
	return attrs
}
