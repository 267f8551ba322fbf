package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sidetabs/internal/application/usecase"
	"github.com/bnema/sidetabs/internal/domain/entity"
)

func TestRestoreTabGroupsUseCase_RebuildsStoredGroups(t *testing.T) {
	h := newHarness(t, tabSpecs(4)...)

	id, err := h.groups.GroupSelected(h.ctx, entity.NewSelection(2, 3), h.window.ID)
	require.NoError(t, err)
	require.NoError(t, h.groups.SetCollapsed(h.ctx, id, true))

	// A rebuild forgets groups, as a restarted sidebar would.
	require.NoError(t, h.sync.Rebuild(h.ctx))
	group, err := h.view.ContainerOf(2)
	require.NoError(t, err)
	require.False(t, group.Group)

	built, err := usecase.NewRestoreTabGroupsUseCase(h.view, h.sessions).Execute(h.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, built)

	group, err = h.view.ContainerOf(2)
	require.NoError(t, err)
	assert.True(t, group.Group)
	assert.True(t, group.Collapsed)
	assert.Equal(t, []entity.TabID{2, 3}, group.TabIDs())
}

func TestRestoreTabGroupsUseCase_NothingStored(t *testing.T) {
	h := newHarness(t, tabSpecs(2)...)

	built, err := usecase.NewRestoreTabGroupsUseCase(h.view, h.sessions).Execute(h.ctx)
	require.NoError(t, err)
	assert.Zero(t, built)
}

func TestRestoreTabGroupsUseCase_SkipsChangedTabs(t *testing.T) {
	h := newHarness(t, tabSpecs(3)...)

	_, err := h.groups.GroupSelected(h.ctx, entity.NewSelection(1, 2), h.window.ID)
	require.NoError(t, err)

	stored, err := h.sessions.LoadWindow(h.ctx, h.window.ID, h.sessions.Key())
	require.NoError(t, err)
	entry := stored[1]
	entry.URL = "https://elsewhere"
	stored[1] = entry
	blob, err := stored.Encode()
	require.NoError(t, err)
	require.NoError(t, h.values.Set(h.ctx, h.window.ID, h.sessions.Key(), blob))

	require.NoError(t, h.sync.Rebuild(h.ctx))
	built, err := usecase.NewRestoreTabGroupsUseCase(h.view, h.sessions).Execute(h.ctx)
	require.NoError(t, err)
	assert.Zero(t, built)
}
