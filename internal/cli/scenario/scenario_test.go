package scenario_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sidetabs/internal/cli/scenario"
)

const groupScenario = `
name: group and restore
load_polls: 1
tabs:
  - url: https://a.example
  - url: https://b.example
    loading: true
  - url: https://c.example
  - url: https://d.example
  - url: https://e.example
steps:
  - op: group
    tabs: [1, 3, 5]
  - op: collapse
    tab: 1
  - op: rebuild
  - op: restore
`

func TestDecode(t *testing.T) {
	sc, err := scenario.Decode(strings.NewReader(groupScenario))
	require.NoError(t, err)

	assert.Equal(t, "group and restore", sc.Name)
	assert.Equal(t, 1, sc.LoadPolls)
	require.Len(t, sc.Tabs, 5)
	assert.True(t, sc.Tabs[1].Loading)
	require.Len(t, sc.Steps, 4)
	assert.Equal(t, scenario.OpGroup, sc.Steps[0].Op)
	assert.Equal(t, []int{1, 3, 5}, sc.Steps[0].Tabs)
	assert.Equal(t, 1, sc.Steps[1].Tab)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{
			name:    "no tabs",
			doc:     "name: empty\n",
			wantMsg: "at least one tab",
		},
		{
			name:    "unknown field",
			doc:     "tabs:\n  - url: https://a\n    color: red\n",
			wantMsg: "color",
		},
		{
			name:    "unknown op",
			doc:     "tabs:\n  - url: https://a\nsteps:\n  - op: teleport\n",
			wantMsg: "unknown op",
		},
		{
			name:    "move without anchor",
			doc:     "tabs:\n  - url: https://a\nsteps:\n  - op: move_in_order\n    tabs: [1]\n",
			wantMsg: "anchor is required",
		},
		{
			name:    "pin without tabs",
			doc:     "tabs:\n  - url: https://a\nsteps:\n  - op: pin\n",
			wantMsg: "tabs are required",
		},
		{
			name:    "dupe without tab",
			doc:     "tabs:\n  - url: https://a\nsteps:\n  - op: dupe\n",
			wantMsg: "tab is required",
		},
		{
			name:    "negative polls",
			doc:     "load_polls: -1\ntabs:\n  - url: https://a\n",
			wantMsg: "load_polls",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scenario.Decode(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, scenario.ErrInvalidScenario)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDecode_CloseOthersAcceptsEmptyKeepList(t *testing.T) {
	doc := "tabs:\n  - url: https://a\nsteps:\n  - op: close_others\n    tabs: []\n"
	_, err := scenario.Decode(strings.NewReader(doc))
	require.NoError(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "group.yaml")
	require.NoError(t, os.WriteFile(path, []byte(groupScenario), 0o644))

	sc, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Len(t, sc.Steps, 4)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
