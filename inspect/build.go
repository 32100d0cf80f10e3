package inspect

// DefaultRootID is used when Options.ID is empty.
const DefaultRootID = "$ROOT"

// IDSeparator joins a parent id and a child key into the child id.
const IDSeparator = "."

// Options configures a Build call.
type Options struct {
	// ID is the root node id. Defaults to DefaultRootID.
	ID string
	// Label optionally names the root node.
	Label string
}

// Build transforms v into a node tree. The result is always a
// single-element slice holding the root, so hosts can treat "no data"
// and "one root" uniformly.
//
// Construction is eager: the entire tree is built up front. The input is
// only observed, never copied or mutated, and the call is re-entrant.
// Self-referential values are not detected and recurse without bound.
func Build(v any, opts Options) []*Node {
	id := opts.ID
	if id == "" {
		id = DefaultRootID
	}
	return []*Node{buildNode(v, id, opts.Label)}
}

func buildNode(v any, id, label string) *Node {
	n := &Node{
		ID:    id,
		Label: label,
		Value: v,
		Kind:  Classify(v),
	}
	if !n.Kind.Composite() {
		return n
	}
	ents := Entries(v)
	if len(ents) == 0 {
		// Composite but empty: children stay absent, not an empty
		// slice, so the node reads as a leaf.
		return n
	}
	n.Children = make([]*Node, len(ents))
	for i, e := range ents {
		n.Children[i] = buildNode(e.Value, id+IDSeparator+e.Key, e.Key)
	}
	return n
}
