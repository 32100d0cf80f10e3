package inspect

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/HazzazBinFaiz/objscope/jsondoc"
	"github.com/stretchr/testify/assert"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func TestClassifyScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"nil", nil, KindNull},
		{"bool", true, KindBoolean},
		{"int", 42, KindNumber},
		{"float", 1.5, KindNumber},
		{"json number", json.Number("3.14"), KindNumber},
		{"big int", big.NewInt(9000), KindBigint},
		{"symbol", Symbol("tag"), KindSymbol},
		{"undefined", Undefined{}, KindUndefined},
		{"func", func() {}, KindFunction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassifyStrings(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"hello", KindString},
		{"", KindString},
		{"#fff", KindColor},
		{"#ff0000", KindColor},
		{"rgb(1,2,3)", KindColor},
		{"rgba(0,0,0,1)", KindColor},
		{"hsl(120,50%,50%)", KindColor},
		{"hsla(120,50%,50%,0.3)", KindColor},
		// prefix match is case-sensitive
		{"RGB(1,2,3)", KindString},
		// no validation past the prefix
		{"#not-really-a-color", KindColor},
		{"rgbish", KindColor},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.in), "classify %q", tt.in)
	}
}

func TestClassifySequences(t *testing.T) {
	assert.Equal(t, KindArray, Classify([]any{}))
	assert.Equal(t, KindArray, Classify([]any{1, "x"}))
	assert.Equal(t, KindArray, Classify([]int{1, 2, 3}))
	assert.Equal(t, KindArray, Classify([2]string{"a", "b"}))
	assert.Equal(t, KindArray, Classify(jsondoc.A{1, 2}))
}

func TestClassifyComposites(t *testing.T) {
	assert.Equal(t, KindObject, Classify(map[string]any{"a": 1}))
	assert.Equal(t, KindObject, Classify(struct{ A int }{1}))
	assert.Equal(t, KindObject, Classify(&struct{ A int }{1}))

	// a document is keyed even though it is slice-backed
	assert.Equal(t, KindObject, Classify(jsondoc.D{{Key: "a", Value: 1}}))

	om := orderedmap.New[string, any]()
	om.Set("a", 1)
	assert.Equal(t, KindObject, Classify(om))
}

func TestKindToken(t *testing.T) {
	assert.Equal(t, Token("string"), KindColor.Token())
	assert.Equal(t, Token("comment"), KindArray.Token())
	assert.Equal(t, Token("comment"), KindObject.Token())
	assert.Equal(t, Token("number"), KindNumber.Token())
	assert.Equal(t, Token("null"), KindNull.Token())
	assert.Equal(t, Token("function"), KindFunction.Token())
}

func TestKindComposite(t *testing.T) {
	assert.True(t, KindArray.Composite())
	assert.True(t, KindObject.Composite())
	assert.False(t, KindColor.Composite())
	assert.False(t, KindString.Composite())
	assert.False(t, KindNull.Composite())
}
