package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T, tabs ...Tab) *TabView {
	t.Helper()
	v := NewTabView(1)
	for i := range tabs {
		tabs[i].WindowID = 1
		tabs[i].Index = i
	}
	require.NoError(t, v.Reset(tabs))
	return v
}

func unpinned(ids ...TabID) []Tab {
	tabs := make([]Tab, len(ids))
	for i, id := range ids {
		tabs[i] = Tab{ID: id, URL: "https://example.com/" + string(rune('a'+i))}
	}
	return tabs
}

// assertContainers checks the structural rules every view must satisfy.
func assertContainers(t *testing.T, v *TabView) {
	t.Helper()
	cs := v.Containers()
	require.NotEmpty(t, cs)
	assert.True(t, cs[0].Pinned, "first container must be the pinned section")
	total := 0
	for i, c := range cs {
		total += len(c.Tabs)
		if i == 0 {
			continue
		}
		assert.False(t, c.Pinned, "only one pinned section")
		assert.NotEmpty(t, c.Tabs, "empty container %s kept", c.ID)
		assert.Equal(t, len(c.Tabs) > 1, c.Group, "group flag of %s", c.ID)
	}
	assert.Equal(t, v.Len(), total)
	for pos, id := range v.TabIDs() {
		got, err := v.Position(id)
		require.NoError(t, err)
		assert.Equal(t, pos, got)
	}
}

func TestTabView_ResetBuildsPinnedPrefix(t *testing.T) {
	tabs := []Tab{
		{ID: 1, Pinned: true},
		{ID: 2, Pinned: true},
		{ID: 3},
		{ID: 4, Active: true},
	}
	v := newTestView(t, tabs...)

	assert.Equal(t, []TabID{1, 2, 3, 4}, v.TabIDs())
	assert.Equal(t, 1, v.LastPinnedPosition())
	assert.Equal(t, 2, v.FirstUnpinnedPosition())
	assert.Equal(t, TabID(4), v.ActiveTabID())

	pinned, err := v.IsPinned(2)
	require.NoError(t, err)
	assert.True(t, pinned)
	pinned, err = v.IsPinned(3)
	require.NoError(t, err)
	assert.False(t, pinned)

	assert.Len(t, v.Containers(), 3)
	assertContainers(t, v)
}

func TestTabView_ResetRejectsBadIDs(t *testing.T) {
	v := NewTabView(1)
	err := v.Reset([]Tab{{ID: 0}})
	require.ErrorIs(t, err, ErrInvalidArgument)

	err = v.Reset([]Tab{{ID: 5}, {ID: 5}})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTabView_ResetFailureKeepsView(t *testing.T) {
	v := newTestView(t, unpinned(1, 2, 3)...)
	_, err := v.GroupTabs([]TabID{2, 3})
	require.NoError(t, err)
	require.NoError(t, v.SetActive(2))
	before := v.Containers()

	err = v.Reset([]Tab{{ID: 7}, {ID: 8}, {ID: 7}})
	require.ErrorIs(t, err, ErrInvalidArgument)
	err = v.Reset([]Tab{{ID: 9}, {ID: -1}})
	require.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, before, v.Containers())
	assert.Equal(t, []TabID{1, 2, 3}, v.TabIDs())
	assert.Equal(t, TabID(2), v.ActiveTabID())
	assert.False(t, v.Contains(7))
}

func TestTabView_TabsAfter(t *testing.T) {
	v := newTestView(t, append([]Tab{{ID: 9, Pinned: true}}, unpinned(1, 2, 3)...)...)
	_, err := v.GroupTabs([]TabID{2, 3})
	require.NoError(t, err)

	after, err := v.TabsAfter(9)
	require.NoError(t, err)
	assert.Equal(t, []TabID{1, 2, 3}, after)

	after, err = v.TabsAfter(2)
	require.NoError(t, err)
	assert.Equal(t, []TabID{3}, after)

	after, err = v.TabsAfter(3)
	require.NoError(t, err)
	assert.Empty(t, after)

	_, err = v.TabsAfter(42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTabView_TabsAfterWhileShrinking(t *testing.T) {
	ids := make([]TabID, 40)
	for i := range ids {
		ids[i] = TabID(i + 1)
	}
	v := newTestView(t, unpinned(ids...)...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, id := range ids[:39] {
			if id == 20 {
				continue
			}
			_, _ = v.Remove(id)
		}
	}()
	for i := 0; i < 200; i++ {
		after, err := v.TabsAfter(20)
		require.NoError(t, err)
		for _, id := range after {
			assert.Greater(t, id, TabID(20))
		}
	}
	<-done

	after, err := v.TabsAfter(20)
	require.NoError(t, err)
	assert.Equal(t, []TabID{40}, after)
}

func TestTabView_EmptyView(t *testing.T) {
	v := NewTabView(1)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, -1, v.LastPinnedPosition())
	assert.Equal(t, 0, v.FirstUnpinnedPosition())
	assert.Empty(t, v.TabIDs())

	_, err := v.Position(7)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = v.Lookup(7)
	require.ErrorIs(t, err, ErrNotFound)
	assertContainers(t, v)
}

func TestTabView_TabsInRange(t *testing.T) {
	v := newTestView(t, unpinned(10, 20, 30, 40, 50)...)

	tests := []struct {
		name     string
		a, b     TabID
		expected []TabID
	}{
		{"forward", 20, 40, []TabID{20, 30, 40}},
		{"backward", 40, 20, []TabID{20, 30, 40}},
		{"single", 30, 30, []TabID{30}},
		{"whole", 10, 50, []TabID{10, 20, 30, 40, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.TabsInRange(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := v.TabsInRange(10, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTabView_InsertJoinsGroupOnlyWhenStrictlyInside(t *testing.T) {
	v := newTestView(t, unpinned(10, 20, 30, 40)...)
	gid, err := v.GroupTabs([]TabID{20, 30})
	require.NoError(t, err)

	// Position 2 lies between 20 and 30, inside the group.
	require.NoError(t, v.Insert(Tab{ID: 25}, 2))
	c, err := v.ContainerOf(25)
	require.NoError(t, err)
	assert.Equal(t, gid, c.ID)
	assert.Equal(t, []TabID{20, 25, 30}, c.TabIDs())

	// Position 1 is the group's leading edge: a new container.
	require.NoError(t, v.Insert(Tab{ID: 15}, 1))
	c, err = v.ContainerOf(15)
	require.NoError(t, err)
	assert.NotEqual(t, gid, c.ID)
	assert.False(t, c.Group)

	assert.Equal(t, []TabID{10, 15, 20, 25, 30, 40}, v.TabIDs())
	assertContainers(t, v)
}

func TestTabView_InsertPinnedLandsInPinnedSection(t *testing.T) {
	v := newTestView(t, Tab{ID: 1, Pinned: true}, Tab{ID: 2}, Tab{ID: 3})

	require.NoError(t, v.Insert(Tab{ID: 9, Pinned: true}, 5))
	assert.Equal(t, []TabID{1, 9, 2, 3}, v.TabIDs())

	// Unpinned tabs are clamped after the pinned section.
	require.NoError(t, v.Insert(Tab{ID: 8}, 0))
	assert.Equal(t, []TabID{1, 9, 8, 2, 3}, v.TabIDs())
	assertContainers(t, v)
}

func TestTabView_InsertRejectsInvalidID(t *testing.T) {
	v := NewTabView(1)
	err := v.Insert(Tab{ID: -3}, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTabView_RemoveNormalizesContainers(t *testing.T) {
	v := newTestView(t, append([]Tab{{ID: 1, Pinned: true}}, unpinned(10, 20, 30)...)...)
	gid, err := v.GroupTabs([]TabID{10, 20})
	require.NoError(t, err)

	_, err = v.Remove(10)
	require.NoError(t, err)
	c, err := v.Container(gid)
	require.NoError(t, err, "a single remaining tab keeps its container")
	assert.False(t, c.Group)
	assert.Equal(t, []TabID{20}, c.TabIDs())

	_, err = v.Remove(20)
	require.NoError(t, err)
	_, err = v.Container(gid)
	require.ErrorIs(t, err, ErrNotFound, "empty container must be dropped")

	// Emptying the pinned section keeps it.
	_, err = v.Remove(1)
	require.NoError(t, err)
	cs := v.Containers()
	assert.True(t, cs[0].Pinned)
	assert.Empty(t, cs[0].Tabs)

	_, err = v.Remove(1)
	require.ErrorIs(t, err, ErrNotFound)
	assertContainers(t, v)
}

func TestTabView_MoveUsesFinalPosition(t *testing.T) {
	v := newTestView(t, unpinned(10, 20, 30, 40)...)

	require.NoError(t, v.Move(10, 2))
	assert.Equal(t, []TabID{20, 30, 10, 40}, v.TabIDs())

	require.NoError(t, v.Move(40, 0))
	assert.Equal(t, []TabID{40, 20, 30, 10}, v.TabIDs())

	require.ErrorIs(t, v.Move(99, 0), ErrNotFound)
	assertContainers(t, v)
}

func TestTabView_MoveOutOfGroupNormalizes(t *testing.T) {
	v := newTestView(t, unpinned(10, 20, 30)...)
	gid, err := v.GroupTabs([]TabID{10, 20})
	require.NoError(t, err)

	require.NoError(t, v.Move(10, 2))
	assert.Equal(t, []TabID{20, 30, 10}, v.TabIDs())
	c, err := v.Container(gid)
	require.NoError(t, err)
	assert.False(t, c.Group)
	assertContainers(t, v)
}

func TestTabView_UpdateRelocatesOnPinnedChange(t *testing.T) {
	v := newTestView(t, Tab{ID: 1, Pinned: true}, Tab{ID: 2}, Tab{ID: 3, Title: "old"})

	relocated, err := v.Update(Tab{ID: 3, Title: "new"})
	require.NoError(t, err)
	assert.False(t, relocated)
	tab, err := v.Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, "new", tab.Title)

	relocated, err = v.Update(Tab{ID: 3, Pinned: true, Index: 1})
	require.NoError(t, err)
	assert.True(t, relocated)
	assert.Equal(t, []TabID{1, 3, 2}, v.TabIDs())
	assert.Equal(t, 1, v.LastPinnedPosition())

	_, err = v.Update(Tab{ID: 42})
	require.ErrorIs(t, err, ErrNotFound)
	assertContainers(t, v)
}

func TestTabView_GroupTabs(t *testing.T) {
	t.Run("groups adjacent tabs in visual order", func(t *testing.T) {
		v := newTestView(t, unpinned(10, 20, 30, 40)...)
		gid, err := v.GroupTabs([]TabID{30, 20})
		require.NoError(t, err)
		c, err := v.Container(gid)
		require.NoError(t, err)
		assert.True(t, c.Group)
		assert.Equal(t, []TabID{20, 30}, c.TabIDs())
		assert.Equal(t, []TabID{10, 20, 30, 40}, v.TabIDs())
		assertContainers(t, v)
	})

	t.Run("splits an existing group", func(t *testing.T) {
		v := newTestView(t, unpinned(10, 20, 30, 40)...)
		_, err := v.GroupTabs([]TabID{10, 20, 30, 40})
		require.NoError(t, err)
		_, err = v.GroupTabs([]TabID{20, 30})
		require.NoError(t, err)
		assert.Len(t, v.Containers(), 4)
		assert.Equal(t, []TabID{10, 20, 30, 40}, v.TabIDs())
		assertContainers(t, v)
	})

	t.Run("rejects non adjacent tabs", func(t *testing.T) {
		v := newTestView(t, unpinned(10, 20, 30)...)
		_, err := v.GroupTabs([]TabID{10, 30})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejects pinned tabs", func(t *testing.T) {
		v := newTestView(t, Tab{ID: 1, Pinned: true}, Tab{ID: 2})
		_, err := v.GroupTabs([]TabID{1, 2})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("rejects a single tab", func(t *testing.T) {
		v := newTestView(t, unpinned(10, 20)...)
		_, err := v.GroupTabs([]TabID{10, 10})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestTabView_DetachAndUngroup(t *testing.T) {
	v := newTestView(t, unpinned(10, 20, 30, 40)...)
	gid, err := v.GroupTabs([]TabID{10, 20, 30})
	require.NoError(t, err)

	require.NoError(t, v.Detach(20))
	c, err := v.ContainerOf(20)
	require.NoError(t, err)
	assert.NotEqual(t, gid, c.ID)
	assert.Equal(t, []TabID{10, 30, 20, 40}, v.TabIDs())

	require.NoError(t, v.Ungroup(gid))
	_, err = v.Container(gid)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, v.Containers(), 5)
	assert.Equal(t, []TabID{10, 30, 20, 40}, v.TabIDs())

	pinnedID := v.Containers()[0].ID
	require.ErrorIs(t, v.Ungroup(pinnedID), ErrInvalidArgument)
	assertContainers(t, v)
}

func TestTabView_SetCollapsed(t *testing.T) {
	v := newTestView(t, unpinned(10, 20)...)
	gid, err := v.GroupTabs([]TabID{10, 20})
	require.NoError(t, err)

	require.NoError(t, v.SetCollapsed(gid, true))
	c, err := v.Container(gid)
	require.NoError(t, err)
	assert.True(t, c.Collapsed)

	require.ErrorIs(t, v.SetCollapsed("missing", true), ErrNotFound)
	require.ErrorIs(t, v.SetCollapsed(v.Containers()[0].ID, true), ErrInvalidArgument)
}

func TestTabView_EnRoute(t *testing.T) {
	v := newTestView(t, unpinned(10, 20)...)

	require.NoError(t, v.MarkEnRoute(10))
	assert.True(t, v.IsEnRoute(10))
	assert.Equal(t, 1, v.EnRouteCount())

	// Moving a node keeps the flag until it is cleared.
	require.NoError(t, v.Move(10, 1))
	assert.True(t, v.IsEnRoute(10))

	assert.True(t, v.ClearEnRoute(10))
	assert.False(t, v.ClearEnRoute(10))
	assert.Equal(t, 0, v.EnRouteCount())
	require.ErrorIs(t, v.MarkEnRoute(99), ErrNotFound)
}

func TestTabView_SetActive(t *testing.T) {
	v := newTestView(t, Tab{ID: 1, Active: true}, Tab{ID: 2})

	require.NoError(t, v.SetActive(2))
	assert.Equal(t, TabID(2), v.ActiveTabID())
	prev, err := v.Lookup(1)
	require.NoError(t, err)
	assert.False(t, prev.Active)

	require.ErrorIs(t, v.SetActive(3), ErrNotFound)
}

func TestTabView_SessionTabListRoundTrip(t *testing.T) {
	tabs := append([]Tab{{ID: 1, Pinned: true, URL: "https://pinned"}}, unpinned(10, 20, 30, 40)...)
	v := newTestView(t, tabs...)
	gid, err := v.GroupTabs([]TabID{20, 30})
	require.NoError(t, err)
	require.NoError(t, v.SetCollapsed(gid, true))

	list := v.SessionTabList()
	require.Len(t, list, 5)
	assert.Equal(t, SessionTabEntry{URL: "https://pinned", ContainerIndex: 0}, list[0])
	assert.Equal(t, 1, list[1].ContainerIndex)
	assert.Equal(t, 2, list[2].ContainerIndex)
	assert.Equal(t, 2, list[3].ContainerIndex)
	assert.True(t, list[3].Collapsed)
	assert.Equal(t, 3, list[4].ContainerIndex)

	// A fresh view of the same tabs gets its group back.
	restored := newTestView(t, tabs...)
	assert.Equal(t, 1, restored.ApplySessionTabList(list))
	c, err := restored.ContainerOf(20)
	require.NoError(t, err)
	assert.Equal(t, []TabID{20, 30}, c.TabIDs())
	assert.True(t, c.Collapsed)
	assertContainers(t, restored)
}

func TestTabView_ApplySessionTabListSkipsMismatchedURLs(t *testing.T) {
	v := newTestView(t, unpinned(10, 20, 30)...)
	list := SessionTabList{
		0: {URL: "https://example.com/a", ContainerIndex: 1},
		1: {URL: "https://elsewhere", ContainerIndex: 1},
		2: {URL: "https://example.com/c", ContainerIndex: 1},
	}
	assert.Equal(t, 0, v.ApplySessionTabList(list))
	assert.Len(t, v.Containers(), 4)
}
