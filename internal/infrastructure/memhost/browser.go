// Package memhost provides an in-memory browser implementing the tab host
// port. It backs the simulate command and integration tests.
package memhost

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/sidetabs/internal/application/port"
	"github.com/bnema/sidetabs/internal/domain/entity"
)

// DefaultLoadPolls is how many reads a loading tab reports before completing.
const DefaultLoadPolls = 2

var (
	// ErrNoTab is returned when a call names a tab that does not exist.
	ErrNoTab = errors.New("no tab with this id")
	// ErrNoWindow is returned when a call names a window that does not exist.
	ErrNoWindow = errors.New("no window with this id")
)

type tabState struct {
	tab          entity.Tab
	pendingPolls int
}

type window struct {
	id        entity.WindowID
	typ       entity.WindowType
	incognito bool
	tabs      []*tabState
}

func (w *window) numPinned() int {
	n := 0
	for _, t := range w.tabs {
		if t.tab.Pinned {
			n++
		}
	}
	return n
}

func (w *window) indexOf(id entity.TabID) int {
	for i, t := range w.tabs {
		if t.tab.ID == id {
			return i
		}
	}
	return -1
}

func (w *window) reindex() {
	for i, t := range w.tabs {
		t.tab.Index = i
		t.tab.WindowID = w.id
	}
}

func (w *window) remove(i int) *tabState {
	t := w.tabs[i]
	w.tabs = append(w.tabs[:i], w.tabs[i+1:]...)
	w.reindex()
	return t
}

// insert places t at index, clamped to its section, and returns the index used.
func (w *window) insert(t *tabState, index int) int {
	pinned := w.numPinned()
	lo, hi := pinned, len(w.tabs)
	if t.tab.Pinned {
		lo, hi = 0, pinned
	}
	if index == entity.IndexEnd || index > hi {
		index = hi
	}
	if index < lo {
		index = lo
	}
	w.tabs = append(w.tabs, nil)
	copy(w.tabs[index+1:], w.tabs[index:])
	w.tabs[index] = t
	w.reindex()
	return index
}

func (w *window) snapshot() *entity.Window {
	out := &entity.Window{
		ID:        w.id,
		Type:      w.typ,
		Incognito: w.incognito,
		Tabs:      make([]entity.Tab, len(w.tabs)),
	}
	for i, t := range w.tabs {
		out.Tabs[i] = t.tab
	}
	return out
}

// Browser is an in-memory tab host. Events are delivered synchronously to
// subscribers after each call, outside of the browser lock.
type Browser struct {
	mu        sync.Mutex
	windows   map[entity.WindowID]*window
	order     []entity.WindowID
	focused   entity.WindowID
	nextTab   entity.TabID
	nextWin   entity.WindowID
	bookmarks []port.BookmarkRequest
	loadPolls int
	failures  map[string]error

	listenersMu  sync.RWMutex
	listeners    map[int]port.TabEventListener
	nextListener int
}

var (
	_ port.TabHost        = (*Browser)(nil)
	_ port.TabEventSource = (*Browser)(nil)
)

// NewBrowser creates an empty browser. loadPolls below zero falls back to
// DefaultLoadPolls.
func NewBrowser(loadPolls int) *Browser {
	if loadPolls < 0 {
		loadPolls = DefaultLoadPolls
	}
	return &Browser{
		windows:   make(map[entity.WindowID]*window),
		nextTab:   1,
		nextWin:   1,
		loadPolls: loadPolls,
		failures:  make(map[string]error),
		listeners: make(map[int]port.TabEventListener),
	}
}

// TabSpec seeds a tab of a new window.
type TabSpec struct {
	URL     string
	Title   string
	Pinned  bool
	Muted   bool
	Loading bool
}

// OpenWindow creates and focuses a window holding the given tabs, without
// emitting events. Pinned tabs are placed before unpinned ones.
func (b *Browser) OpenWindow(incognito bool, specs ...TabSpec) *entity.Window {
	b.mu.Lock()
	defer b.mu.Unlock()

	w := b.newWindowLocked(entity.WindowTypeNormal, incognito)
	for _, spec := range specs {
		t := b.newTabLocked(spec.URL, spec.Loading)
		t.tab.Title = spec.Title
		t.tab.Pinned = spec.Pinned
		t.tab.Muted = spec.Muted
		w.insert(t, entity.IndexEnd)
	}
	if len(w.tabs) > 0 {
		w.tabs[0].tab.Active = true
	}
	return w.snapshot()
}

// FailOn makes every subsequent call of op fail with err, until cleared with
// a nil err. Ops are the TabHost method names.
func (b *Browser) FailOn(op string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		delete(b.failures, op)
		return
	}
	b.failures[op] = err
}

// Bookmarks returns the bookmarks created so far.
func (b *Browser) Bookmarks() []port.BookmarkRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]port.BookmarkRequest(nil), b.bookmarks...)
}

// Subscribe registers a listener for tab events.
func (b *Browser) Subscribe(listener port.TabEventListener) func() {
	b.listenersMu.Lock()
	defer b.listenersMu.Unlock()
	id := b.nextListener
	b.nextListener++
	b.listeners[id] = listener
	return func() {
		b.listenersMu.Lock()
		defer b.listenersMu.Unlock()
		delete(b.listeners, id)
	}
}

func (b *Browser) emit(ctx context.Context, events []port.TabEvent) {
	if len(events) == 0 {
		return
	}
	b.listenersMu.RLock()
	listeners := make([]port.TabEventListener, 0, len(b.listeners))
	for i := 0; i < b.nextListener; i++ {
		if l, ok := b.listeners[i]; ok {
			listeners = append(listeners, l)
		}
	}
	b.listenersMu.RUnlock()

	for _, ev := range events {
		for _, l := range listeners {
			l(ctx, ev)
		}
	}
}

func (b *Browser) GetTab(_ context.Context, id entity.TabID) (*entity.Tab, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failureLocked("GetTab"); err != nil {
		return nil, err
	}
	t, _ := b.findLocked(id)
	if t == nil {
		return nil, nil
	}
	if t.tab.Status == entity.StatusLoading {
		if t.pendingPolls > 0 {
			t.pendingPolls--
		} else {
			t.tab.Status = entity.StatusComplete
		}
	}
	tab := t.tab
	return &tab, nil
}

func (b *Browser) MoveTabs(ctx context.Context, ids []entity.TabID, opts port.MoveOptions) error {
	events, err := b.moveTabs(ids, opts)
	b.emit(ctx, events)
	return err
}

func (b *Browser) moveTabs(ids []entity.TabID, opts port.MoveOptions) ([]port.TabEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failureLocked("MoveTabs"); err != nil {
		return nil, err
	}
	dst, err := b.windowLocked(opts.WindowID)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if t, _ := b.findLocked(id); t == nil {
			return nil, fmt.Errorf("move tab %d: %w", id, ErrNoTab)
		}
	}

	var events []port.TabEvent
	for i, id := range ids {
		index := opts.Index
		if index != entity.IndexEnd {
			index += i
		}
		events = append(events, b.relocateLocked(id, dst, index)...)
	}
	return events, nil
}

// relocateLocked moves a tab to index in dst and returns the events it causes.
func (b *Browser) relocateLocked(id entity.TabID, dst *window, index int) []port.TabEvent {
	t, src := b.findLocked(id)
	from := src.indexOf(id)
	src.remove(from)

	if src == dst {
		// Moves are reported even when the index is unchanged, so callers
		// waiting on a moved event always get one.
		to := dst.insert(t, index)
		return []port.TabEvent{{
			Kind: port.TabMoved, TabID: id, WindowID: dst.id,
			FromIndex: from, ToIndex: to, Tab: t.tab,
		}}
	}

	// Pinned state does not survive a window change.
	t.tab.Pinned = false
	wasActive := t.tab.Active
	t.tab.Active = false
	to := dst.insert(t, index)
	events := []port.TabEvent{
		{Kind: port.TabDetached, TabID: id, WindowID: src.id, FromIndex: from, ToIndex: -1},
		{Kind: port.TabAttached, TabID: id, WindowID: dst.id, FromIndex: -1, ToIndex: to, Tab: t.tab},
	}
	if wasActive && len(src.tabs) > 0 {
		events = append(events, b.activateLocked(src, src.tabs[clampIndex(from, len(src.tabs))]))
	}
	if len(src.tabs) == 0 {
		b.closeWindowLocked(src.id)
	}
	return events
}

func (b *Browser) UpdateTab(ctx context.Context, id entity.TabID, patch port.TabPatch) (*entity.Tab, error) {
	tab, events, err := b.updateTab(id, patch)
	b.emit(ctx, events)
	return tab, err
}

func (b *Browser) updateTab(id entity.TabID, patch port.TabPatch) (*entity.Tab, []port.TabEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failureLocked("UpdateTab"); err != nil {
		return nil, nil, err
	}
	t, w := b.findLocked(id)
	if t == nil {
		return nil, nil, fmt.Errorf("update tab %d: %w", id, ErrNoTab)
	}

	var events []port.TabEvent
	changed := false
	if patch.Muted != nil && t.tab.Muted != *patch.Muted {
		t.tab.Muted = *patch.Muted
		changed = true
	}
	if patch.Pinned != nil && t.tab.Pinned != *patch.Pinned {
		from := w.indexOf(id)
		w.remove(from)
		t.tab.Pinned = *patch.Pinned
		// Pinning appends to the pinned section, unpinning leads the rest.
		index := w.numPinned()
		w.insert(t, index)
		changed = true
	}
	if changed {
		events = append(events, port.TabEvent{
			Kind: port.TabUpdated, TabID: id, WindowID: w.id,
			FromIndex: t.tab.Index, ToIndex: t.tab.Index, Tab: t.tab,
		})
	}
	if patch.Active != nil && *patch.Active && !t.tab.Active {
		events = append(events, b.activateLocked(w, t))
	}
	tab := t.tab
	return &tab, events, nil
}

func (b *Browser) activateLocked(w *window, t *tabState) port.TabEvent {
	for _, other := range w.tabs {
		other.tab.Active = false
	}
	t.tab.Active = true
	return port.TabEvent{Kind: port.TabActivated, TabID: t.tab.ID, WindowID: w.id, ToIndex: t.tab.Index, Tab: t.tab}
}

func (b *Browser) RemoveTabs(ctx context.Context, ids []entity.TabID) error {
	events, err := b.removeTabs(ids)
	b.emit(ctx, events)
	return err
}

func (b *Browser) removeTabs(ids []entity.TabID) ([]port.TabEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failureLocked("RemoveTabs"); err != nil {
		return nil, err
	}
	for _, id := range ids {
		if t, _ := b.findLocked(id); t == nil {
			return nil, fmt.Errorf("remove tab %d: %w", id, ErrNoTab)
		}
	}

	var events []port.TabEvent
	for _, id := range ids {
		t, w := b.findLocked(id)
		if t == nil {
			continue
		}
		from := w.indexOf(id)
		w.remove(from)
		events = append(events, port.TabEvent{Kind: port.TabRemoved, TabID: id, WindowID: w.id, FromIndex: from, ToIndex: -1})
		if len(w.tabs) == 0 {
			b.closeWindowLocked(w.id)
			continue
		}
		if t.tab.Active {
			events = append(events, b.activateLocked(w, w.tabs[clampIndex(from, len(w.tabs))]))
		}
	}
	return events, nil
}

func (b *Browser) ReloadTab(ctx context.Context, id entity.TabID) error {
	events, err := b.reloadTab(id)
	b.emit(ctx, events)
	return err
}

func (b *Browser) reloadTab(id entity.TabID) ([]port.TabEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failureLocked("ReloadTab"); err != nil {
		return nil, err
	}
	t, w := b.findLocked(id)
	if t == nil {
		return nil, fmt.Errorf("reload tab %d: %w", id, ErrNoTab)
	}
	t.tab.Status = entity.StatusLoading
	t.pendingPolls = b.loadPolls
	return []port.TabEvent{{
		Kind: port.TabUpdated, TabID: id, WindowID: w.id,
		FromIndex: t.tab.Index, ToIndex: t.tab.Index, Tab: t.tab,
	}}, nil
}

func (b *Browser) CreateTab(ctx context.Context, opts port.CreateTabOptions) (*entity.Tab, error) {
	tab, events, err := b.createTab(opts)
	b.emit(ctx, events)
	return tab, err
}

func (b *Browser) createTab(opts port.CreateTabOptions) (*entity.Tab, []port.TabEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failureLocked("CreateTab"); err != nil {
		return nil, nil, err
	}
	w, err := b.windowLocked(opts.WindowID)
	if err != nil {
		return nil, nil, err
	}
	t := b.newTabLocked(opts.URL, true)
	t.tab.OpenerTabID = opts.OpenerTabID
	to := w.insert(t, opts.Index)

	events := []port.TabEvent{{
		Kind: port.TabCreated, TabID: t.tab.ID, WindowID: w.id,
		FromIndex: -1, ToIndex: to, Tab: t.tab,
	}}
	if opts.Active {
		events = append(events, b.activateLocked(w, t))
	}
	tab := t.tab
	return &tab, events, nil
}

func (b *Browser) CreateBookmark(_ context.Context, req port.BookmarkRequest) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failureLocked("CreateBookmark"); err != nil {
		return err
	}
	b.bookmarks = append(b.bookmarks, req)
	return nil
}

func (b *Browser) CreateWindow(ctx context.Context, opts port.CreateWindowOptions) (*entity.Window, error) {
	win, events, err := b.createWindow(opts)
	b.emit(ctx, events)
	return win, err
}

func (b *Browser) createWindow(opts port.CreateWindowOptions) (*entity.Window, []port.TabEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failureLocked("CreateWindow"); err != nil {
		return nil, nil, err
	}
	if opts.TabID.Valid() {
		if t, _ := b.findLocked(opts.TabID); t == nil {
			return nil, nil, fmt.Errorf("create window with tab %d: %w", opts.TabID, ErrNoTab)
		}
	}
	typ := opts.Type
	if typ == "" {
		typ = entity.WindowTypeNormal
	}
	w := b.newWindowLocked(typ, false)

	var events []port.TabEvent
	if opts.TabID.Valid() {
		events = b.relocateLocked(opts.TabID, w, 0)
	} else {
		t := b.newTabLocked("about:newtab", false)
		w.insert(t, 0)
		events = append(events, port.TabEvent{Kind: port.TabCreated, TabID: t.tab.ID, WindowID: w.id, FromIndex: -1, Tab: t.tab})
	}
	events = append(events, b.activateLocked(w, w.tabs[0]))
	return w.snapshot(), events, nil
}

func (b *Browser) GetWindow(_ context.Context, id entity.WindowID) (*entity.Window, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failureLocked("GetWindow"); err != nil {
		return nil, err
	}
	w, ok := b.windows[id]
	if !ok {
		return nil, nil
	}
	win := w.snapshot()
	win.Focused = id == b.focused
	return win, nil
}

func (b *Browser) GetCurrentWindow(_ context.Context) (*entity.Window, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failureLocked("GetCurrentWindow"); err != nil {
		return nil, err
	}
	w, ok := b.windows[b.focused]
	if !ok {
		return nil, nil
	}
	win := w.snapshot()
	win.Focused = true
	return win, nil
}

// Focus makes a window the current one.
func (b *Browser) Focus(id entity.WindowID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.windows[id]; !ok {
		return fmt.Errorf("focus window %d: %w", id, ErrNoWindow)
	}
	b.focused = id
	return nil
}

func (b *Browser) newWindowLocked(typ entity.WindowType, incognito bool) *window {
	w := &window{id: b.nextWin, typ: typ, incognito: incognito}
	b.nextWin++
	b.windows[w.id] = w
	b.order = append(b.order, w.id)
	b.focused = w.id
	return w
}

func (b *Browser) newTabLocked(url string, loading bool) *tabState {
	t := &tabState{tab: entity.Tab{ID: b.nextTab, URL: url, Status: entity.StatusComplete}}
	b.nextTab++
	if loading {
		t.tab.Status = entity.StatusLoading
		t.pendingPolls = b.loadPolls
	}
	return t
}

func (b *Browser) closeWindowLocked(id entity.WindowID) {
	delete(b.windows, id)
	for i, wid := range b.order {
		if wid == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	if b.focused == id {
		b.focused = 0
		if len(b.order) > 0 {
			b.focused = b.order[len(b.order)-1]
		}
	}
}

func (b *Browser) windowLocked(id entity.WindowID) (*window, error) {
	if !id.IsConcrete() {
		id = b.focused
	}
	w, ok := b.windows[id]
	if !ok {
		return nil, fmt.Errorf("window %d: %w", id, ErrNoWindow)
	}
	return w, nil
}

func (b *Browser) findLocked(id entity.TabID) (*tabState, *window) {
	for _, wid := range b.order {
		w := b.windows[wid]
		if i := w.indexOf(id); i >= 0 {
			return w.tabs[i], w
		}
	}
	return nil, nil
}

func (b *Browser) failureLocked(op string) error {
	return b.failures[op]
}

func clampIndex(i, n int) int {
	if i >= n {
		return n - 1
	}
	return i
}
