package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sidetabs/internal/application/port"
	portmocks "github.com/bnema/sidetabs/internal/application/port/mocks"
	"github.com/bnema/sidetabs/internal/application/usecase"
	"github.com/bnema/sidetabs/internal/domain/entity"
)

func newManageTabs(t *testing.T, host port.TabHost, view *entity.TabView) *usecase.ManageTabsUseCase {
	t.Helper()
	return usecase.NewManageTabsUseCase(host, view, usecase.NewResolveSelectionUseCase(view), 2)
}

func TestManageTabsUseCase_CloseOthers_RemovesComplement(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockTabHost(t)
	view := viewOf(t, 1, 2, 3, 4, 5)

	host.EXPECT().RemoveTabs(mock.Anything, []entity.TabID{1, 3, 5}).Return(nil).Once()

	err := newManageTabs(t, host, view).CloseOthers(ctx, []entity.TabID{4, 2})
	require.NoError(t, err)
}

func TestManageTabsUseCase_CloseOthers_EdgeCases(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockTabHost(t)
	uc := newManageTabs(t, host, viewOf(t, 1, 2))

	require.ErrorIs(t, uc.CloseOthers(ctx, nil), entity.ErrInvalidArgument)
	// Keeping everything issues no request.
	require.NoError(t, uc.CloseOthers(ctx, []entity.TabID{1, 2}))
}

func TestManageTabsUseCase_CloseToEnd_RemovesTail(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockTabHost(t)
	view := viewOf(t, 1, 2, 3, 4, 5)

	host.EXPECT().RemoveTabs(mock.Anything, []entity.TabID{4, 5}).Return(nil).Once()

	uc := newManageTabs(t, host, view)
	require.NoError(t, uc.CloseToEnd(ctx, 3))
	// The last tab and unknown tabs have no tail.
	require.NoError(t, uc.CloseToEnd(ctx, 5))
	require.NoError(t, uc.CloseToEnd(ctx, 42))
}

func TestManageTabsUseCase_Close(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockTabHost(t)
	view := viewOf(t, 1, 2, 3)

	host.EXPECT().RemoveTabs(mock.Anything, []entity.TabID{3, 1}).Return(assert.AnError).Once()

	uc := newManageTabs(t, host, view)
	err := uc.Close(ctx, entity.NewSelection(3, 7, 1))
	require.ErrorIs(t, err, entity.ErrHostOperation)

	require.ErrorIs(t, uc.Close(ctx, nil), entity.ErrInvalidArgument)
}

func TestManageTabsUseCase_Dupe(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockTabHost(t)

	host.EXPECT().GetTab(mock.Anything, entity.TabID(3)).
		Return(&entity.Tab{ID: 3, WindowID: 1, Index: 2, URL: "https://x"}, nil).Once()
	host.EXPECT().CreateTab(mock.Anything, port.CreateTabOptions{
		URL:         "https://x",
		WindowID:    entity.WindowIDCurrent,
		Index:       3,
		Active:      true,
		OpenerTabID: 3,
	}).Return(&entity.Tab{ID: 9, WindowID: 1, Index: 3, URL: "https://x", Active: true, OpenerTabID: 3}, nil).Once()

	tab, err := newManageTabs(t, host, viewOf(t, 1, 2, 3)).Dupe(ctx, 3, 0)
	require.NoError(t, err)
	require.NotNil(t, tab)
	assert.Equal(t, entity.TabID(9), tab.ID)
}

func TestManageTabsUseCase_Dupe_Host(t *testing.T) {
	h := newHarness(t, tabSpecs(4)...)

	tab, err := h.tabs.Dupe(h.ctx, 3, h.window.ID)
	require.NoError(t, err)
	require.NotNil(t, tab)
	assert.Equal(t, 3, tab.Index)
	assert.Equal(t, "https://example.com/c", tab.URL)
	assert.Equal(t, entity.TabID(3), tab.OpenerTabID)

	pos, err := h.view.Position(tab.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, pos)
	assert.Equal(t, tab.ID, h.view.ActiveTabID())
}

func TestManageTabsUseCase_Dupe_MissingOrInvalid(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockTabHost(t)
	host.EXPECT().GetTab(mock.Anything, entity.TabID(5)).Return(nil, nil).Once()
	uc := newManageTabs(t, host, viewOf(t, 1))

	tab, err := uc.Dupe(ctx, 5, 0)
	require.NoError(t, err)
	assert.Nil(t, tab)

	_, err = uc.Dupe(ctx, 0, 0)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestManageTabsUseCase_Activate(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockTabHost(t)
	host.EXPECT().UpdateTab(mock.Anything, entity.TabID(2), mock.Anything).
		Run(func(_ context.Context, _ entity.TabID, patch port.TabPatch) {
			require.NotNil(t, patch.Active)
			assert.True(t, *patch.Active)
			assert.Nil(t, patch.Pinned)
		}).
		Return(&entity.Tab{ID: 2, Active: true}, nil).Once()

	uc := newManageTabs(t, host, viewOf(t, 1, 2))
	require.NoError(t, uc.Activate(ctx, 2))
	require.NoError(t, uc.Activate(ctx, 42))
}

func TestManageTabsUseCase_Bookmark_UsesCachedMetadata(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockTabHost(t)
	view := entity.NewTabView(1)
	require.NoError(t, view.Reset([]entity.Tab{
		{ID: 1, URL: "https://a", Title: "A"},
		{ID: 2, URL: "https://b", Title: "B"},
	}))

	host.EXPECT().CreateBookmark(mock.Anything, port.BookmarkRequest{Title: "B", URL: "https://b"}).Return(nil).Once()

	result, err := newManageTabs(t, host, view).Bookmark(ctx, entity.NewSelection(2))
	require.NoError(t, err)
	assert.Equal(t, []entity.TabID{2}, result.Succeeded)
	assert.NoError(t, result.Err())
}

func TestManageTabsUseCase_Bookmark_SkipsTabsLeavingTheView(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockTabHost(t)
	view := entity.NewTabView(1)
	require.NoError(t, view.Reset([]entity.Tab{
		{ID: 1, URL: "https://a", Title: "A"},
		{ID: 2, URL: "https://b", Title: "B"},
	}))

	// One member at a time: tab 2 closes while tab 1 is being bookmarked.
	host.EXPECT().CreateBookmark(mock.Anything, port.BookmarkRequest{Title: "A", URL: "https://a"}).
		Run(func(context.Context, port.BookmarkRequest) {
			_, err := view.Remove(2)
			assert.NoError(t, err)
		}).
		Return(nil).Once()

	uc := usecase.NewManageTabsUseCase(host, view, usecase.NewResolveSelectionUseCase(view), 1)
	result, err := uc.Bookmark(ctx, entity.NewSelection(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []entity.TabID{1}, result.Succeeded)
	assert.Empty(t, result.Failed)
	assert.NoError(t, result.Err())
}

func TestManageTabsUseCase_BookmarkAll_Host(t *testing.T) {
	h := newHarness(t, tabSpecs(3)...)

	result, err := h.tabs.BookmarkAll(h.ctx)
	require.NoError(t, err)
	assert.Len(t, result.Succeeded, 3)
	assert.Len(t, h.browser.Bookmarks(), 3)
}

func TestManageTabsUseCase_ReloadAll_IsolatesFailures(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockTabHost(t)
	view := viewOf(t, 1, 2, 3, 4)

	host.EXPECT().ReloadTab(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id entity.TabID) error {
			if id == 3 {
				return assert.AnError
			}
			return nil
		}).Times(4)

	result, err := newManageTabs(t, host, view).ReloadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.TabID{1, 2, 4}, result.Succeeded)
	require.Contains(t, result.Failed, entity.TabID(3))
	assert.ErrorIs(t, result.Failed[3], entity.ErrHostOperation)
	assert.ErrorIs(t, result.Err(), assert.AnError)
}

func TestManageTabsUseCase_Reload(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockTabHost(t)
	host.EXPECT().ReloadTab(mock.Anything, entity.TabID(2)).Return(assert.AnError).Once()

	result, err := newManageTabs(t, host, viewOf(t, 1, 2)).Reload(ctx, entity.NewSelection(2))
	require.NoError(t, err)
	assert.Empty(t, result.Succeeded)
	assert.Len(t, result.Failed, 1)
}

func TestManageTabsUseCase_MuteAndPin(t *testing.T) {
	ctx := testContext()
	host := portmocks.NewMockTabHost(t)
	view := viewOf(t, 1, 2, 3)

	host.EXPECT().UpdateTab(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id entity.TabID, patch port.TabPatch) (*entity.Tab, error) {
			tab := &entity.Tab{ID: id}
			if patch.Muted != nil {
				tab.Muted = *patch.Muted
			}
			if patch.Pinned != nil {
				tab.Pinned = *patch.Pinned
			}
			return tab, nil
		})

	uc := newManageTabs(t, host, view)
	result, err := uc.Mute(ctx, entity.NewSelection(1, 3), true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.TabID{1, 3}, result.Succeeded)

	result, err = uc.Pin(ctx, entity.NewSelection(2), false)
	require.NoError(t, err)
	assert.Equal(t, []entity.TabID{2}, result.Succeeded)

	host.AssertNumberOfCalls(t, "UpdateTab", 3)
}

func TestManageTabsUseCase_Pin_Host(t *testing.T) {
	h := newHarness(t, tabSpecs(3)...)

	result, err := h.tabs.Pin(h.ctx, entity.NewSelection(3), true)
	require.NoError(t, err)
	require.NoError(t, result.Err())

	assert.Equal(t, []entity.TabID{3, 1, 2}, h.view.TabIDs())
	assert.Equal(t, 0, h.view.LastPinnedPosition())
	pinned, err := h.view.IsPinned(3)
	require.NoError(t, err)
	assert.True(t, pinned)
}
