package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/sidetabs/internal/application/usecase"
	"github.com/bnema/sidetabs/internal/domain/entity"
	"github.com/bnema/sidetabs/internal/infrastructure/memhost"
	"github.com/bnema/sidetabs/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// viewOf builds a view of unpinned tabs with the given ids.
func viewOf(t *testing.T, ids ...entity.TabID) *entity.TabView {
	t.Helper()
	tabs := make([]entity.Tab, len(ids))
	for i, id := range ids {
		tabs[i] = entity.Tab{ID: id, WindowID: 1, Index: i, URL: "https://example.com/" + string(rune('a'+i))}
	}
	view := entity.NewTabView(1)
	require.NoError(t, view.Reset(tabs))
	return view
}

// countingSaver records snapshot writes.
type countingSaver struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *countingSaver) Save(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *countingSaver) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type noopWatcher struct{}

func (noopWatcher) Start(context.Context, entity.TabID) {}

// memValues is an in-memory window value store.
type memValues struct {
	mu     sync.Mutex
	values map[entity.WindowID]map[string]string
}

func newMemValues() *memValues {
	return &memValues{values: make(map[entity.WindowID]map[string]string)}
}

func (m *memValues) Get(_ context.Context, windowID entity.WindowID, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[windowID][key]
	return v, ok, nil
}

func (m *memValues) Set(_ context.Context, windowID entity.WindowID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values[windowID] == nil {
		m.values[windowID] = make(map[string]string)
	}
	m.values[windowID][key] = value
	return nil
}

func (m *memValues) Delete(_ context.Context, windowID entity.WindowID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values[windowID], key)
	return nil
}

func (m *memValues) ListWindows(context.Context) ([]entity.WindowID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]entity.WindowID, 0, len(m.values))
	for id := range m.values {
		ids = append(ids, id)
	}
	return ids, nil
}

// harness wires the use cases to an in-memory browser whose events keep the
// view in sync.
type harness struct {
	ctx      context.Context
	browser  *memhost.Browser
	window   *entity.Window
	view     *entity.TabView
	values   *memValues
	resolver *usecase.ResolveSelectionUseCase
	mover    *usecase.MoveTabsUseCase
	tabs     *usecase.ManageTabsUseCase
	sessions *usecase.SessionTabListUseCase
	groups   *usecase.ManageGroupsUseCase
	sync     *usecase.SyncTabViewUseCase
}

func newHarness(t *testing.T, specs ...memhost.TabSpec) *harness {
	t.Helper()
	h := &harness{
		ctx:     testContext(),
		browser: memhost.NewBrowser(0),
		values:  newMemValues(),
	}
	h.window = h.browser.OpenWindow(false, specs...)
	h.view = entity.NewTabView(h.window.ID)
	h.resolver = usecase.NewResolveSelectionUseCase(h.view)
	h.mover = usecase.NewMoveTabsUseCase(h.browser, h.view, h.resolver)
	h.tabs = usecase.NewManageTabsUseCase(h.browser, h.view, h.resolver, 4)
	h.sessions = usecase.NewSessionTabListUseCase(h.browser, h.view, h.values, "")
	h.groups = usecase.NewManageGroupsUseCase(h.view, h.resolver, h.mover, h.sessions)
	h.sync = usecase.NewSyncTabViewUseCase(h.browser, h.view, h.sessions, noopWatcher{})

	require.NoError(t, h.sync.Rebuild(h.ctx))
	t.Cleanup(h.sync.Listen(h.browser))
	return h
}

func tabSpecs(n int) []memhost.TabSpec {
	specs := make([]memhost.TabSpec, n)
	for i := range specs {
		specs[i] = memhost.TabSpec{URL: "https://example.com/" + string(rune('a'+i))}
	}
	return specs
}

// hostOrder returns the tab ids of the harness window in host order.
func (h *harness) hostOrder(t *testing.T) []entity.TabID {
	t.Helper()
	win, err := h.browser.GetWindow(h.ctx, h.window.ID)
	require.NoError(t, err)
	require.NotNil(t, win)
	ids := make([]entity.TabID, len(win.Tabs))
	for i, tab := range win.Tabs {
		ids[i] = tab.ID
	}
	return ids
}
