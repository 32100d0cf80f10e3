package printer

import (
	"bytes"
	"testing"

	"github.com/HazzazBinFaiz/objscope/inspect"
	"github.com/HazzazBinFaiz/objscope/jsondoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample() []*inspect.Node {
	return inspect.Build(jsondoc.D{
		{Key: "name", Value: "demo"},
		{Key: "tags", Value: jsondoc.A{"a", "b"}},
	}, inspect.Options{ID: "$ROOT"})
}

func TestPrintTree(t *testing.T) {
	var buf bytes.Buffer
	err := PrintTree(&buf, buildSample(), DefaultOptions())
	require.NoError(t, err)

	want := "Object (2 keys)\n" +
		"  name: \"demo\"\n" +
		"  tags: Array (2 items)\n" +
		"    0: \"a\"\n" +
		"    1: \"b\"\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintTreeShowIDs(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowIDs = true
	err := PrintTree(&buf, buildSample(), opts)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "[$ROOT.tags.0]")
	assert.Contains(t, buf.String(), "[$ROOT]")
}

func TestPrintTreeMaxDepth(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.MaxDepth = 1
	err := PrintTree(&buf, buildSample(), opts)
	require.NoError(t, err)

	assert.Equal(t, "Object (2 keys)\n", buf.String())
}
