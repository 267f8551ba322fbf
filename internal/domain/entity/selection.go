package entity

// Selection is an ordered, duplicate-free set of tab references chosen by
// the user. References are not guaranteed to resolve; the selection resolver
// validates them against the current view.
type Selection struct {
	refs []TabID
}

// NewSelection builds a selection, keeping the first occurrence of each id.
func NewSelection(ids ...TabID) *Selection {
	seen := make(map[TabID]struct{}, len(ids))
	refs := make([]TabID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		refs = append(refs, id)
	}
	return &Selection{refs: refs}
}

// Refs returns a copy of the references in selection order.
func (s *Selection) Refs() []TabID {
	if s == nil {
		return nil
	}
	return append([]TabID(nil), s.refs...)
}

// Len returns the number of references.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.refs)
}

// First returns the first reference, if any.
func (s *Selection) First() (TabID, bool) {
	if s.Len() == 0 {
		return 0, false
	}
	return s.refs[0], true
}
