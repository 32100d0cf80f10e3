package nodetree

import "github.com/HazzazBinFaiz/objscope/inspect"

// Item is one visible row of the flattened tree.
type Item struct {
	ID          string
	Label       string // key under which the value sits in its parent
	Value       any
	Kind        inspect.Kind
	Depth       int
	HasChildren bool
	ChildCount  int
	Expanded    bool
	Parent      string // parent node id, empty at the root
}
