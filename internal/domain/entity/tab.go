// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// TabID is the host-assigned identifier of a tab.
// Valid identifiers are positive and stable until the tab is closed.
type TabID int

// Valid reports whether the identifier can refer to a host tab.
func (id TabID) Valid() bool {
	return id > 0
}

// IndexEnd asks the host to append a moved tab after all existing tabs.
const IndexEnd = -1

// LoadStatus is the host's loading state for a tab.
type LoadStatus string

const (
	StatusLoading  LoadStatus = "loading"
	StatusComplete LoadStatus = "complete"
)

// Tab is the host's view of a browsing context.
type Tab struct {
	ID          TabID
	WindowID    WindowID
	Index       int // Host index inside its window
	URL         string
	Title       string
	Pinned      bool
	Muted       bool
	Active      bool
	Status      LoadStatus
	OpenerTabID TabID
}

// IsComplete reports whether the tab reached its terminal load state.
func (t *Tab) IsComplete() bool {
	return t != nil && t.Status == StatusComplete
}

// DisplayTitle returns the title, falling back to the URL or "New Tab".
func (t *Tab) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	if t.URL != "" {
		return t.URL
	}
	return "New Tab"
}
