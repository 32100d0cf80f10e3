// Package inspect turns an arbitrary runtime value into a stable,
// uniquely-addressable tree of display nodes.
//
// The package has three pieces:
//
//   - Classify assigns every value a Kind from a closed set.
//   - Build walks a value and produces the node tree. Node ids are derived
//     from the key path, so they stay stable across rebuilds and a host can
//     persist open/closed state by id.
//   - Format produces the display label for a node given its current
//     expansion state.
//
// The tree is built eagerly and is immutable once constructed. Expansion
// state is never stored on nodes; hosts keep it in an OpenSet keyed by
// node id.
//
// Example:
//
//	nodes := inspect.Build(value, inspect.Options{ID: "$ROOT"})
//	open := inspect.NewOpenSet("$ROOT")
//	label := inspect.Format(nodes[0].Value, nodes[0].Kind, open.IsOpen(nodes[0].ID))
package inspect
