package entity

import (
	"sort"
	"sync"
)

// TabView is the ordered, grouped sidebar view of one window's tabs.
//
// The first container is always the pinned section. Visual positions are
// derived on every read by walking the containers; nothing is cached, so a
// read always reflects the latest applied mutation. An explicit index maps
// tab identifiers to their view nodes.
type TabView struct {
	mu         sync.RWMutex
	windowID   WindowID
	containers []*container
	nodes      map[TabID]*tabNode
	activeID   TabID
	newID      func() ContainerID
}

// NewTabView creates an empty view for the given window.
func NewTabView(windowID WindowID) *TabView {
	v := &TabView{
		windowID: windowID,
		nodes:    make(map[TabID]*tabNode),
		newID:    NewContainerID,
	}
	v.containers = []*container{{id: v.newID(), pinned: true}}
	return v
}

// WindowID returns the window this view mirrors.
func (v *TabView) WindowID() WindowID {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.windowID
}

// SetWindowID rebinds the view to a concrete host window.
func (v *TabView) SetWindowID(id WindowID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.windowID = id
}

// Len returns the number of tabs in the view.
func (v *TabView) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.nodes)
}

// TabIDs returns every tab identifier in visual order.
func (v *TabView) TabIDs() []TabID {
	v.mu.RLock()
	defer v.mu.RUnlock()
	ids := make([]TabID, 0, len(v.nodes))
	for _, c := range v.containers {
		for _, n := range c.nodes {
			ids = append(ids, n.tab.ID)
		}
	}
	return ids
}

// Lookup returns the cached metadata of a tab.
func (v *TabView) Lookup(id TabID) (Tab, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	n, ok := v.nodes[id]
	if !ok {
		return Tab{}, ErrNotFound
	}
	return n.tab, nil
}

// Contains reports whether the tab is part of the view.
func (v *TabView) Contains(id TabID) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.nodes[id]
	return ok
}

// Position returns the 0-based visual position of a tab.
func (v *TabView) Position(id TabID) (int, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	n, ok := v.nodes[id]
	if !ok {
		return 0, ErrNotFound
	}
	return v.positionLocked(n), nil
}

// TabsAfter returns the tabs positioned after id, in visual order.
func (v *TabView) TabsAfter(id TabID) ([]TabID, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if _, ok := v.nodes[id]; !ok {
		return nil, ErrNotFound
	}
	var out []TabID
	found := false
	for _, c := range v.containers {
		for _, n := range c.nodes {
			if found {
				out = append(out, n.tab.ID)
			}
			if n.tab.ID == id {
				found = true
			}
		}
	}
	return out, nil
}

// TabsInRange returns the tabs between a and b inclusive, in visual order,
// whichever of the two comes first.
func (v *TabView) TabsInRange(a, b TabID) ([]TabID, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	na, okA := v.nodes[a]
	nb, okB := v.nodes[b]
	if !okA || !okB {
		return nil, ErrNotFound
	}
	from, to := v.positionLocked(na), v.positionLocked(nb)
	if from > to {
		from, to = to, from
	}
	out := make([]TabID, 0, to-from+1)
	pos := 0
	for _, c := range v.containers {
		for _, n := range c.nodes {
			if pos >= from && pos <= to {
				out = append(out, n.tab.ID)
			}
			pos++
		}
	}
	return out, nil
}

// IsPinned reports whether the tab sits in the pinned section.
func (v *TabView) IsPinned(id TabID) (bool, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	n, ok := v.nodes[id]
	if !ok {
		return false, ErrNotFound
	}
	return n.container.pinned, nil
}

// ContainerOf returns the container holding the tab.
func (v *TabView) ContainerOf(id TabID) (Container, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	n, ok := v.nodes[id]
	if !ok {
		return Container{}, ErrNotFound
	}
	return n.container.snapshot(), nil
}

// Container returns a container by id.
func (v *TabView) Container(id ContainerID) (Container, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, c := v.findContainerLocked(id)
	if c == nil {
		return Container{}, ErrNotFound
	}
	return c.snapshot(), nil
}

// Containers returns copies of all containers in visual order.
func (v *TabView) Containers() []Container {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]Container, len(v.containers))
	for i, c := range v.containers {
		out[i] = c.snapshot()
	}
	return out
}

// LastPinnedPosition returns the position of the last pinned tab, or -1.
func (v *TabView) LastPinnedPosition() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.containers[0].nodes) - 1
}

// FirstUnpinnedPosition returns the position of the first unpinned slot.
func (v *TabView) FirstUnpinnedPosition() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.containers[0].nodes)
}

// ActiveTabID returns the active tab, zero when unknown.
func (v *TabView) ActiveTabID() TabID {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.activeID
}

// IsEnRoute reports whether the tab has a pending move issued by the view.
func (v *TabView) IsEnRoute(id TabID) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	n, ok := v.nodes[id]
	return ok && n.enRoute
}

// EnRouteCount returns how many tabs still have a pending move.
func (v *TabView) EnRouteCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	count := 0
	for _, n := range v.nodes {
		if n.enRoute {
			count++
		}
	}
	return count
}

// MarkEnRoute flags a tab as being moved by a sequence in progress.
func (v *TabView) MarkEnRoute(id TabID) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	n, ok := v.nodes[id]
	if !ok {
		return ErrNotFound
	}
	n.enRoute = true
	return nil
}

// ClearEnRoute resets the in-transit flag and reports whether it was set.
func (v *TabView) ClearEnRoute(id TabID) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	n, ok := v.nodes[id]
	if !ok || !n.enRoute {
		return false
	}
	n.enRoute = false
	return true
}

// SetActive marks a tab as the active one.
func (v *TabView) SetActive(id TabID) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.nodes[id]; !ok {
		return ErrNotFound
	}
	if prev, ok := v.nodes[v.activeID]; ok {
		prev.tab.Active = false
	}
	v.nodes[id].tab.Active = true
	v.activeID = id
	return nil
}

// Reset replaces the whole view with tabs in host order, one container per
// unpinned tab. On error the view is left untouched.
func (v *TabView) Reset(tabs []Tab) error {
	seen := make(map[TabID]struct{}, len(tabs))
	for _, tab := range tabs {
		if !tab.ID.Valid() {
			return InvalidArgumentf("tab id %d", tab.ID)
		}
		if _, dup := seen[tab.ID]; dup {
			return InvalidArgumentf("duplicate tab id %d", tab.ID)
		}
		seen[tab.ID] = struct{}{}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.nodes = make(map[TabID]*tabNode, len(tabs))
	v.containers = []*container{{id: v.newID(), pinned: true}}
	v.activeID = 0
	for _, tab := range tabs {
		n := &tabNode{tab: tab}
		v.nodes[tab.ID] = n
		v.insertLocked(n, len(v.nodes)-1)
		if tab.Active {
			v.activeID = tab.ID
		}
	}
	return nil
}

// Insert adds a tab at the given visual position. Pinned tabs land in the
// pinned section; others get their own container unless the position falls
// strictly inside a group, which they then join.
func (v *TabView) Insert(tab Tab, position int) error {
	if !tab.ID.Valid() {
		return InvalidArgumentf("tab id %d", tab.ID)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if n, ok := v.nodes[tab.ID]; ok {
		v.detachLocked(n)
		n.tab = tab
		v.insertLocked(n, position)
		v.normalizeLocked()
		return nil
	}
	n := &tabNode{tab: tab}
	v.nodes[tab.ID] = n
	v.insertLocked(n, position)
	if tab.Active {
		v.activeID = tab.ID
	}
	return nil
}

// Remove drops a tab and normalizes its former container.
func (v *TabView) Remove(id TabID) (Tab, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	n, ok := v.nodes[id]
	if !ok {
		return Tab{}, ErrNotFound
	}
	v.detachLocked(n)
	delete(v.nodes, id)
	if v.activeID == id {
		v.activeID = 0
	}
	v.normalizeLocked()
	return n.tab, nil
}

// Move relocates a tab so that it ends up at the given visual position.
func (v *TabView) Move(id TabID, position int) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	n, ok := v.nodes[id]
	if !ok {
		return ErrNotFound
	}
	v.detachLocked(n)
	n.tab.Index = position
	v.insertLocked(n, position)
	v.normalizeLocked()
	return nil
}

// Update refreshes the cached metadata of a tab. A change of the pinned flag
// relocates the tab to tab.Index in its new section; relocated reports that.
func (v *TabView) Update(tab Tab) (relocated bool, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	n, ok := v.nodes[tab.ID]
	if !ok {
		return false, ErrNotFound
	}
	if n.tab.Pinned == tab.Pinned {
		n.tab = tab
		return false, nil
	}
	v.detachLocked(n)
	n.tab = tab
	v.insertLocked(n, tab.Index)
	v.normalizeLocked()
	return true, nil
}

// GroupTabs boxes adjacent unpinned tabs into a single group container.
func (v *TabView) GroupTabs(ids []TabID) (ContainerID, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.groupLocked(ids, false)
}

// Detach takes a tab out of its group and gives it its own container right
// after the group. Tabs that are not grouped are left untouched.
func (v *TabView) Detach(id TabID) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	n, ok := v.nodes[id]
	if !ok {
		return ErrNotFound
	}
	c := n.container
	if c.pinned || len(c.nodes) < 2 {
		return nil
	}
	i, _ := v.findContainerLocked(c.id)
	c.remove(n)
	v.insertContainerLocked(i+1, &container{id: v.newID(), nodes: []*tabNode{n}})
	v.normalizeLocked()
	return nil
}

// Ungroup splits a group into single-tab containers, keeping positions.
func (v *TabView) Ungroup(id ContainerID) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	i, c := v.findContainerLocked(id)
	if c == nil {
		return ErrNotFound
	}
	if c.pinned {
		return InvalidArgumentf("pinned section cannot be ungrouped")
	}
	singles := make([]*container, len(c.nodes))
	for j, n := range c.nodes {
		single := &container{id: v.newID(), nodes: []*tabNode{n}}
		n.container = single
		singles[j] = single
	}
	rest := append([]*container{}, v.containers[i+1:]...)
	v.containers = append(append(v.containers[:i], singles...), rest...)
	v.normalizeLocked()
	return nil
}

// SetCollapsed changes the collapsed flag of a container.
func (v *TabView) SetCollapsed(id ContainerID, collapsed bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, c := v.findContainerLocked(id)
	if c == nil {
		return ErrNotFound
	}
	if c.pinned {
		return InvalidArgumentf("pinned section cannot be collapsed")
	}
	c.collapsed = collapsed
	return nil
}

// ApplySessionTabList regroups the view from a stored arrangement: runs of
// consecutive unpinned tabs whose URL matches the stored entry and which
// shared a container are boxed again. It returns the number of groups built.
func (v *TabView) ApplySessionTabList(list SessionTabList) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	type run struct {
		containerIndex int
		collapsed      bool
		ids            []TabID
	}
	var runs []run
	current := -1

	pos := 0
	for _, c := range v.containers {
		for _, n := range c.nodes {
			entry, ok := list[pos]
			pos++
			if c.pinned || !ok || entry.URL != n.tab.URL {
				current = -1
				continue
			}
			if current >= 0 && runs[current].containerIndex == entry.ContainerIndex {
				runs[current].ids = append(runs[current].ids, n.tab.ID)
				continue
			}
			runs = append(runs, run{containerIndex: entry.ContainerIndex, collapsed: entry.Collapsed, ids: []TabID{n.tab.ID}})
			current = len(runs) - 1
		}
	}

	built := 0
	for _, r := range runs {
		if len(r.ids) < 2 {
			continue
		}
		if _, err := v.groupLocked(r.ids, r.collapsed); err == nil {
			built++
		}
	}
	return built
}

func (v *TabView) groupLocked(ids []TabID, collapsed bool) (ContainerID, error) {
	seen := make(map[TabID]bool, len(ids))
	nodes := make([]*tabNode, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		n, ok := v.nodes[id]
		if !ok {
			return "", ErrNotFound
		}
		if n.container.pinned {
			return "", InvalidArgumentf("pinned tab %d cannot be grouped", id)
		}
		nodes = append(nodes, n)
	}
	if len(nodes) < 2 {
		return "", InvalidArgumentf("a group needs at least two tabs")
	}

	positions := make(map[*tabNode]int, len(nodes))
	for _, n := range nodes {
		positions[n] = v.positionLocked(n)
	}
	sort.Slice(nodes, func(i, j int) bool { return positions[nodes[i]] < positions[nodes[j]] })
	for i := 1; i < len(nodes); i++ {
		if positions[nodes[i]] != positions[nodes[i-1]]+1 {
			return "", InvalidArgumentf("tabs to group must be adjacent")
		}
	}

	first := positions[nodes[0]]
	for _, n := range nodes {
		n.container.remove(n)
	}
	v.dropEmptyLocked()

	group := &container{id: v.newID(), collapsed: collapsed, group: true}
	for _, n := range nodes {
		group.insert(n, len(group.nodes))
	}
	v.insertContainerLocked(v.boundaryLocked(first), group)
	v.normalizeLocked()
	return group.id, nil
}

func (v *TabView) positionLocked(n *tabNode) int {
	pos := 0
	for _, c := range v.containers {
		if c == n.container {
			return pos + c.indexOf(n)
		}
		pos += len(c.nodes)
	}
	return -1
}

func (v *TabView) findContainerLocked(id ContainerID) (int, *container) {
	for i, c := range v.containers {
		if c.id == id {
			return i, c
		}
	}
	return -1, nil
}

func (v *TabView) insertLocked(n *tabNode, position int) {
	pinned := v.containers[0]
	if n.tab.Pinned {
		pinned.insert(n, position)
		return
	}
	position = clamp(position, len(pinned.nodes), v.countLocked())
	start := len(pinned.nodes)
	for i := 1; i < len(v.containers); i++ {
		c := v.containers[i]
		if position == start {
			v.insertContainerLocked(i, &container{id: v.newID(), nodes: []*tabNode{n}})
			return
		}
		if position < start+len(c.nodes) {
			c.insert(n, position-start)
			return
		}
		start += len(c.nodes)
	}
	single := &container{id: v.newID(), nodes: []*tabNode{n}}
	n.container = single
	v.containers = append(v.containers, single)
}

// boundaryLocked returns the container index at which a new container must
// be inserted to start at the given unpinned position, splitting the
// container that straddles it.
func (v *TabView) boundaryLocked(position int) int {
	start := len(v.containers[0].nodes)
	for i := 1; i < len(v.containers); i++ {
		c := v.containers[i]
		if position <= start {
			return i
		}
		if position < start+len(c.nodes) {
			off := position - start
			tail := &container{id: v.newID(), collapsed: c.collapsed}
			for _, n := range c.nodes[off:] {
				tail.insert(n, len(tail.nodes))
			}
			c.nodes = c.nodes[:off]
			v.insertContainerLocked(i+1, tail)
			return i + 1
		}
		start += len(c.nodes)
	}
	return len(v.containers)
}

func (v *TabView) insertContainerLocked(i int, c *container) {
	for _, n := range c.nodes {
		n.container = c
	}
	v.containers = append(v.containers, nil)
	copy(v.containers[i+1:], v.containers[i:])
	v.containers[i] = c
}

// countLocked counts nodes attached to a container.
func (v *TabView) countLocked() int {
	count := 0
	for _, c := range v.containers {
		count += len(c.nodes)
	}
	return count
}

func (v *TabView) detachLocked(n *tabNode) {
	if n.container != nil {
		n.container.remove(n)
	}
}

func (v *TabView) dropEmptyLocked() {
	kept := v.containers[:0]
	for _, c := range v.containers {
		if c.pinned || len(c.nodes) > 0 {
			kept = append(kept, c)
		}
	}
	v.containers = kept
}

func (v *TabView) normalizeLocked() {
	kept := v.containers[:0]
	for _, c := range v.containers {
		if !c.normalize() {
			kept = append(kept, c)
		}
	}
	v.containers = kept
}
