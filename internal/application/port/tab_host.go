package port

import (
	"context"

	"github.com/bnema/sidetabs/internal/domain/entity"
)

// MoveOptions describes where moved tabs should land. Index is the final
// index of the first moved tab; entity.IndexEnd appends.
type MoveOptions struct {
	Index    int
	WindowID entity.WindowID
}

// TabPatch holds the tab properties to change. Nil fields are left as is.
type TabPatch struct {
	Active *bool
	Muted  *bool
	Pinned *bool
}

// CreateTabOptions describes a tab to open.
type CreateTabOptions struct {
	URL         string
	WindowID    entity.WindowID
	Index       int
	Active      bool
	OpenerTabID entity.TabID
}

// BookmarkRequest is a bookmark to create.
type BookmarkRequest struct {
	Title string
	URL   string
}

// CreateWindowOptions describes a window to open. TabID, when set, is moved
// into the new window as its first tab.
type CreateWindowOptions struct {
	TabID entity.TabID
	Type  entity.WindowType
}

// TabHost is the browser's tab capability. Every call may fail; failures are
// reported as plain errors and wrapped by the caller.
type TabHost interface {
	// GetTab returns the tab, or nil without error when it no longer exists.
	GetTab(ctx context.Context, id entity.TabID) (*entity.Tab, error)

	// MoveTabs moves tabs, in order, so the first lands at opts.Index.
	MoveTabs(ctx context.Context, ids []entity.TabID, opts MoveOptions) error

	// UpdateTab applies a patch and returns the updated tab.
	UpdateTab(ctx context.Context, id entity.TabID, patch TabPatch) (*entity.Tab, error)

	// RemoveTabs closes tabs.
	RemoveTabs(ctx context.Context, ids []entity.TabID) error

	// ReloadTab reloads a tab.
	ReloadTab(ctx context.Context, id entity.TabID) error

	// CreateTab opens a tab.
	CreateTab(ctx context.Context, opts CreateTabOptions) (*entity.Tab, error)

	// CreateBookmark stores a bookmark.
	CreateBookmark(ctx context.Context, req BookmarkRequest) error

	// CreateWindow opens a window.
	CreateWindow(ctx context.Context, opts CreateWindowOptions) (*entity.Window, error)

	// GetWindow returns a window with its tabs, or nil when it does not exist.
	GetWindow(ctx context.Context, id entity.WindowID) (*entity.Window, error)

	// GetCurrentWindow returns the focused window with its tabs, or nil.
	GetCurrentWindow(ctx context.Context) (*entity.Window, error)
}

// TabEventKind enumerates host tab notifications.
type TabEventKind string

const (
	TabCreated   TabEventKind = "created"
	TabRemoved   TabEventKind = "removed"
	TabMoved     TabEventKind = "moved"
	TabUpdated   TabEventKind = "updated"
	TabAttached  TabEventKind = "attached"
	TabDetached  TabEventKind = "detached"
	TabActivated TabEventKind = "activated"
)

// TabEvent is a host notification about one tab. Tab carries the tab state
// after the change; it is zero for removals and detachments.
type TabEvent struct {
	Kind      TabEventKind
	TabID     entity.TabID
	WindowID  entity.WindowID
	FromIndex int
	ToIndex   int
	Tab       entity.Tab
}

// Structural reports whether the event always changes the arrangement of
// tabs. Updates only do so when the pinned state flips.
func (e TabEvent) Structural() bool {
	switch e.Kind {
	case TabCreated, TabRemoved, TabMoved, TabAttached, TabDetached:
		return true
	default:
		return false
	}
}

// TabEventListener receives host tab notifications.
type TabEventListener func(ctx context.Context, ev TabEvent)

// TabEventSource lets the sidebar subscribe to host tab notifications.
type TabEventSource interface {
	// Subscribe registers a listener and returns a function removing it.
	Subscribe(listener TabEventListener) (unsubscribe func())
}
