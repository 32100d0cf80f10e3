package inspect

// OpenSet maps node ids to their open state. The tree itself never
// stores expansion; a renderer owns an OpenSet and keys it by node id,
// which survives rebuilds because ids are stable.
type OpenSet map[string]bool

// NewOpenSet seeds an open-state store from an initial expansion list
// of node ids.
func NewOpenSet(ids ...string) OpenSet {
	s := make(OpenSet, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// IsOpen reports whether the id is currently open.
func (s OpenSet) IsOpen(id string) bool { return s[id] }

// Set records the open state for an id.
func (s OpenSet) Set(id string, open bool) {
	if open {
		s[id] = true
		return
	}
	delete(s, id)
}

// Toggle flips the open state for an id and returns the new state.
func (s OpenSet) Toggle(id string) bool {
	open := !s[id]
	s.Set(id, open)
	return open
}
