package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/invopop/jsonschema"
)

// File permission constants
const (
	dirPerm  = 0755
	filePerm = 0644
)

// Config represents the complete configuration for sidetabs.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Tabs tunes batch operations and the completion watcher.
	Tabs TabsConfig `mapstructure:"tabs" yaml:"tabs" toml:"tabs" json:"tabs"`
	// Session controls how the sidebar arrangement is stored and restored.
	Session SessionConfig `mapstructure:"session" yaml:"session" toml:"session" json:"session"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	// Path of the sqlite file. Empty means $XDG_DATA_HOME/sidetabs/sidetabs.sqlite.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path,omitempty"`
}

// LogFormat is the output encoding of the logger.
type LogFormat string

const (
	LogFormatJSON    LogFormat = "json"
	LogFormatConsole LogFormat = "console"
)

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string    `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format LogFormat `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=json,enum=console"`
}

// TabsConfig holds tab operation tuning.
type TabsConfig struct {
	// ObserveIntervalMs is the polling period of a loading tab, in milliseconds.
	ObserveIntervalMs int `mapstructure:"observe_interval_ms" yaml:"observe_interval_ms" toml:"observe_interval_ms" json:"observe_interval_ms" jsonschema:"minimum=1"`
	// BatchConcurrency bounds concurrent host calls of a batch operation.
	BatchConcurrency int `mapstructure:"batch_concurrency" yaml:"batch_concurrency" toml:"batch_concurrency" json:"batch_concurrency" jsonschema:"minimum=1"`
}

// ObserveInterval returns the polling period as a duration.
func (c TabsConfig) ObserveInterval() time.Duration {
	return time.Duration(c.ObserveIntervalMs) * time.Millisecond
}

// SessionConfig controls session persistence and restoration.
type SessionConfig struct {
	// TabListKey is the window value key the arrangement is stored under.
	TabListKey string `mapstructure:"tab_list_key" yaml:"tab_list_key" toml:"tab_list_key" json:"tab_list_key"`
	// RestoreGroups rebuilds stored groups when a window is opened.
	RestoreGroups bool `mapstructure:"restore_groups" yaml:"restore_groups" toml:"restore_groups" json:"restore_groups"`
	// SnapshotDebounceMs delays arrangement writes until changes settle.
	// Zero writes after every change.
	SnapshotDebounceMs int `mapstructure:"snapshot_debounce_ms" yaml:"snapshot_debounce_ms" toml:"snapshot_debounce_ms" json:"snapshot_debounce_ms" jsonschema:"minimum=0"`
}

// SnapshotDebounce returns the write delay as a duration.
func (c SessionConfig) SnapshotDebounce() time.Duration {
	return time.Duration(c.SnapshotDebounceMs) * time.Millisecond
}

// GenerateSchema returns the JSON schema of the configuration file.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/sidetabs/config.schema.json"
	schema.Title = "sidetabs configuration"
	schema.Description = "Configuration schema for sidetabs, a sidebar tab arrangement engine"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
