package entity

// WindowID identifies a host window.
type WindowID int

// WindowIDCurrent is the sentinel meaning "whichever window is current",
// resolved by the host at call time.
const WindowIDCurrent WindowID = -2

// IsConcrete reports whether the id names an actual host window.
func (id WindowID) IsConcrete() bool {
	return id > 0
}

// Resolve returns id when concrete, the current-window sentinel otherwise.
func (id WindowID) Resolve() WindowID {
	if id.IsConcrete() {
		return id
	}
	return WindowIDCurrent
}

// WindowType mirrors the host's window kinds.
type WindowType string

const (
	WindowTypeNormal WindowType = "normal"
	WindowTypePopup  WindowType = "popup"
)

// Window is a host window and, optionally, its tabs in host order.
type Window struct {
	ID        WindowID
	Type      WindowType
	Incognito bool
	Focused   bool
	Tabs      []Tab
}
