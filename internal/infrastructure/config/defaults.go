package config

import "github.com/bnema/sidetabs/internal/domain/entity"

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = LogFormatConsole

	defaultObserveIntervalMs = 3000
	defaultBatchConcurrency  = 8

	defaultRestoreGroups = true
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Tabs: TabsConfig{
			ObserveIntervalMs: defaultObserveIntervalMs,
			BatchConcurrency:  defaultBatchConcurrency,
		},
		Session: SessionConfig{
			TabListKey:    entity.DefaultSessionTabListKey,
			RestoreGroups: defaultRestoreGroups,
		},
	}
}
