package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sidetabs/internal/domain/entity"
	"github.com/bnema/sidetabs/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/sidetabs/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestRepo(t *testing.T) (context.Context, *sqlite.LazyDB) {
	t.Helper()
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "data", "sidetabs.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })
	return ctx, lazy
}

func TestWindowValueRepository_CRUD(t *testing.T) {
	ctx, lazy := newTestRepo(t)
	assert.False(t, lazy.IsInitialized())

	repo, err := lazy.WindowValues(ctx)
	require.NoError(t, err)
	assert.True(t, lazy.IsInitialized())

	_, found, err := repo.Get(ctx, 3, "tabList")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Set(ctx, 3, "tabList", `{"0":{}}`))
	require.NoError(t, repo.Set(ctx, 3, "tabList", `{"1":{}}`))
	require.NoError(t, repo.Set(ctx, 7, "tabList", `{}`))

	value, found, err := repo.Get(ctx, 3, "tabList")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"1":{}}`, value)

	windows, err := repo.ListWindows(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.WindowID{3, 7}, windows)

	require.NoError(t, repo.Delete(ctx, 3, "tabList"))
	require.NoError(t, repo.Delete(ctx, 3, "tabList"))
	_, found, err = repo.Get(ctx, 3, "tabList")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWindowValueRepository_SetValidates(t *testing.T) {
	ctx, lazy := newTestRepo(t)
	repo, err := lazy.WindowValues(ctx)
	require.NoError(t, err)

	require.ErrorIs(t, repo.Set(ctx, entity.WindowIDCurrent, "tabList", "{}"), entity.ErrInvalidArgument)
	require.ErrorIs(t, repo.Set(ctx, 1, "", "{}"), entity.ErrInvalidArgument)
}

func TestWindowValueRepository_SessionTabListRoundTrip(t *testing.T) {
	ctx, lazy := newTestRepo(t)
	repo, err := lazy.WindowValues(ctx)
	require.NoError(t, err)

	view := entity.NewTabView(4)
	require.NoError(t, view.Reset([]entity.Tab{
		{ID: 1, Pinned: true, URL: "https://pinned"},
		{ID: 2, URL: "https://a"},
		{ID: 3, URL: "https://b"},
		{ID: 4, URL: "https://c"},
	}))
	gid, err := view.GroupTabs([]entity.TabID{3, 4})
	require.NoError(t, err)
	require.NoError(t, view.SetCollapsed(gid, true))

	list := view.SessionTabList()
	blob, err := list.Encode()
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, 4, entity.DefaultSessionTabListKey, blob))

	stored, found, err := repo.Get(ctx, 4, entity.DefaultSessionTabListKey)
	require.NoError(t, err)
	require.True(t, found)
	decoded, err := entity.DecodeSessionTabList(stored)
	require.NoError(t, err)
	assert.Equal(t, list, decoded)

	restored := entity.NewTabView(4)
	require.NoError(t, restored.Reset([]entity.Tab{
		{ID: 11, Pinned: true, URL: "https://pinned"},
		{ID: 12, URL: "https://a"},
		{ID: 13, URL: "https://b"},
		{ID: 14, URL: "https://c"},
	}))
	assert.Equal(t, 1, restored.ApplySessionTabList(decoded))
	assert.Equal(t, list, restored.SessionTabList())
}

func TestLazyDB_InvalidPath(t *testing.T) {
	lazy := sqlite.NewLazyDB("")
	_, err := lazy.DB(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database path cannot be empty")
	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_InMemory(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(":memory:")
	t.Cleanup(func() { _ = lazy.Close() })

	repo, err := lazy.WindowValues(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, 1, "tabList", "{}"))

	value, found, err := repo.Get(ctx, 1, "tabList")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "{}", value)
}
