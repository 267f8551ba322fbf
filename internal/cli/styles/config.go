package styles

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/sidetabs/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file location and the effective values.
func (r *ConfigRenderer) RenderConfigInfo(path string, cfg *config.Config) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight

	out := fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
	if cfg == nil {
		return out
	}

	rows := [][2]string{
		{"database.path", cfg.Database.Path},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", string(cfg.Logging.Format)},
		{"tabs.observe_interval_ms", fmt.Sprintf("%d", cfg.Tabs.ObserveIntervalMs)},
		{"tabs.batch_concurrency", fmt.Sprintf("%d", cfg.Tabs.BatchConcurrency)},
		{"session.tab_list_key", cfg.Session.TabListKey},
		{"session.restore_groups", fmt.Sprintf("%t", cfg.Session.RestoreGroups)},
		{"session.snapshot_debounce_ms", fmt.Sprintf("%d", cfg.Session.SnapshotDebounceMs)},
	}
	for _, row := range rows {
		out += fmt.Sprintf("    %s %s %s\n",
			iconStyle.Render(IconCursor),
			keyStyle.Render(fmt.Sprintf("%-26s", row[0])),
			valStyle.Render(row[1]),
		)
	}
	return out
}

// RenderReloaded renders the notice printed when the config file changes.
func (r *ConfigRenderer) RenderReloaded(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Reloaded %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
