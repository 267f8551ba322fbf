package config

import (
	"fmt"
	"strings"
)

const maxBatchConcurrency = 64

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateTabs(config)...)
	validationErrors = append(validationErrors, validateSession(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !validLogLevels[config.Logging.Level] {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case LogFormatJSON, LogFormatConsole:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be json or console (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateTabs(config *Config) []string {
	var validationErrors []string
	if config.Tabs.ObserveIntervalMs < 1 {
		validationErrors = append(validationErrors, "tabs.observe_interval_ms must be positive")
	}
	if config.Tabs.BatchConcurrency < 1 || config.Tabs.BatchConcurrency > maxBatchConcurrency {
		validationErrors = append(validationErrors,
			fmt.Sprintf("tabs.batch_concurrency must be between 1 and %d", maxBatchConcurrency))
	}
	return validationErrors
}

func validateSession(config *Config) []string {
	var validationErrors []string
	if config.Session.TabListKey == "" {
		validationErrors = append(validationErrors, "session.tab_list_key must not be empty")
	}
	if config.Session.SnapshotDebounceMs < 0 {
		validationErrors = append(validationErrors, "session.snapshot_debounce_ms must not be negative")
	}
	return validationErrors
}
