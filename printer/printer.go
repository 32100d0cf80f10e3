// Package printer renders built inspect trees as indented text, for
// non-interactive dumps and tests.
package printer

import (
	"fmt"
	"io"

	"github.com/HazzazBinFaiz/objscope/inspect"
)

// Options controls tree output.
type Options struct {
	// Indent is the per-level indentation. Defaults to two spaces.
	Indent string
	// ShowIDs appends each node's id to its line.
	ShowIDs bool
	// MaxDepth limits how deep the printer descends; 0 means no limit.
	MaxDepth int
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{Indent: "  "}
}

// PrintTree writes every node of the tree to w, one line per node, with
// labels formatted in their open state so composite counts are visible.
func PrintTree(w io.Writer, nodes []*inspect.Node, opts Options) error {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	for _, n := range nodes {
		if err := printNode(w, n, 0, opts); err != nil {
			return err
		}
	}
	return nil
}

func printNode(w io.Writer, n *inspect.Node, depth int, opts Options) error {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	label := inspect.Format(n.Value, n.Kind, true)
	line := label.Text
	if n.Label != "" {
		line = n.Label + ": " + line
	}
	if opts.ShowIDs {
		line += "  [" + n.ID + "]"
	}

	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, opts.Indent); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}

	for _, c := range n.Children {
		if err := printNode(w, c, depth+1, opts); err != nil {
			return err
		}
	}
	return nil
}
