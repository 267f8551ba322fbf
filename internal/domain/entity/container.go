package entity

import "github.com/google/uuid"

// ContainerID identifies a visual tab container within a view.
type ContainerID string

// NewContainerID returns a fresh random container identifier.
func NewContainerID() ContainerID {
	return ContainerID(uuid.NewString())
}

// Container is a read-only copy of a visual group of adjacent tabs.
type Container struct {
	ID        ContainerID
	Collapsed bool
	Pinned    bool // The pinned section; exactly one per view
	Group     bool // Boxed group, only ever true with 2+ tabs
	Tabs      []Tab
}

// TabIDs returns the identifiers of the container's tabs in visual order.
func (c Container) TabIDs() []TabID {
	ids := make([]TabID, len(c.Tabs))
	for i := range c.Tabs {
		ids[i] = c.Tabs[i].ID
	}
	return ids
}

// tabNode is the view node of a single tab.
type tabNode struct {
	tab       Tab
	container *container
	enRoute   bool
}

type container struct {
	id        ContainerID
	nodes     []*tabNode
	collapsed bool
	pinned    bool
	group     bool
}

func (c *container) indexOf(n *tabNode) int {
	for i, node := range c.nodes {
		if node == n {
			return i
		}
	}
	return -1
}

func (c *container) insert(n *tabNode, offset int) {
	offset = clamp(offset, 0, len(c.nodes))
	c.nodes = append(c.nodes, nil)
	copy(c.nodes[offset+1:], c.nodes[offset:])
	c.nodes[offset] = n
	n.container = c
}

func (c *container) remove(n *tabNode) {
	i := c.indexOf(n)
	if i < 0 {
		return
	}
	c.nodes = append(c.nodes[:i], c.nodes[i+1:]...)
	n.container = nil
}

// normalize applies the container invariants and reports whether the
// container must be dropped from the view.
func (c *container) normalize() (drop bool) {
	if c.pinned {
		return false
	}
	switch len(c.nodes) {
	case 0:
		return true
	case 1:
		c.group = false
	default:
		c.group = true
	}
	return false
}

func (c *container) snapshot() Container {
	out := Container{
		ID:        c.id,
		Collapsed: c.collapsed,
		Pinned:    c.pinned,
		Group:     c.group,
		Tabs:      make([]Tab, len(c.nodes)),
	}
	for i, n := range c.nodes {
		out.Tabs[i] = n.tab
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
