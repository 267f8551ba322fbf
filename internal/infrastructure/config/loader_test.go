package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 3000, mgr.viper.GetInt("tabs.observe_interval_ms"))
	assert.Equal(t, 8, mgr.viper.GetInt("tabs.batch_concurrency"))
	assert.Equal(t, "tabList", mgr.viper.GetString("session.tab_list_key"))
	assert.True(t, mgr.viper.GetBool("session.restore_groups"))
	assert.Zero(t, mgr.viper.GetInt("session.snapshot_debounce_ms"))
}

func TestManagerLoad_CreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, filepath.Join(root, "data", "sidetabs", "sidetabs.sqlite"), cfg.Database.Path)
	assert.Equal(t, 3*time.Second, cfg.Tabs.ObserveInterval())
	assert.Equal(t, LogFormatConsole, cfg.Logging.Format)

	_, err = os.Stat(filepath.Join(root, "config", "sidetabs", "config.toml"))
	require.NoError(t, err)
}

func TestManagerLoad_ReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "sidetabs")
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	content := `
[tabs]
  batch_concurrency = 2
  observe_interval_ms = 250

[session]
  tab_list_key = 'arrangement'
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))
	t.Setenv("SIDETABS_LOG_LEVEL", "DEBUG")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 2, cfg.Tabs.BatchConcurrency)
	assert.Equal(t, 250*time.Millisecond, cfg.Tabs.ObserveInterval())
	assert.Equal(t, "arrangement", cfg.Session.TabListKey)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Session.RestoreGroups)
}

func TestManagerLoad_RejectsInvalidValues(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "sidetabs")
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[tabs]\n  batch_concurrency = 0\n"), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tabs.batch_concurrency")
}

func TestManagerSave(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Tabs.BatchConcurrency = 3
	require.NoError(t, mgr.Save(cfg))
	assert.Equal(t, 3, mgr.Get().Tabs.BatchConcurrency)

	reloaded, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 3, reloaded.Get().Tabs.BatchConcurrency)

	cfg.Tabs.BatchConcurrency = 0
	require.Error(t, mgr.Save(cfg))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "sidetabs configuration", schema["title"])
	assert.Contains(t, string(data), "batch_concurrency")
	assert.Contains(t, string(data), "tab_list_key")
}
