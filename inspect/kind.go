package inspect

import (
	"encoding/json"
	"math/big"
	"reflect"
	"strings"

	"github.com/HazzazBinFaiz/objscope/jsondoc"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind is the semantic type of an inspected value. The set is closed:
// every possible input classifies to exactly one Kind.
type Kind string

const (
	KindNull      Kind = "null"
	KindArray     Kind = "array"
	KindColor     Kind = "color"
	KindString    Kind = "string"
	KindNumber    Kind = "number"
	KindBigint    Kind = "bigint"
	KindBoolean   Kind = "boolean"
	KindSymbol    Kind = "symbol"
	KindFunction  Kind = "function"
	KindUndefined Kind = "undefined"
	KindObject    Kind = "object"
)

func (k Kind) String() string { return string(k) }

// Composite reports whether values of this kind can carry children.
// Color strings never expand even though they are textual.
func (k Kind) Composite() bool { return k == KindArray || k == KindObject }

// Token is the display-token category used for styling. It never
// influences classification or label text.
type Token string

// Token returns the styling category for the kind: color values style
// like strings, composites style like comments, everything else styles
// as itself.
func (k Kind) Token() Token {
	switch k {
	case KindColor:
		return Token(KindString)
	case KindArray, KindObject:
		return Token("comment")
	default:
		return Token(k)
	}
}

// Symbol is an opaque named marker value. Go has no intrinsic symbol
// kind, so hosts that need one wrap a name in this type.
type Symbol string

// Undefined is the distinguished "no value" marker. It is distinct from
// an untyped nil, which classifies as null.
type Undefined struct{}

// colorPrefixes are matched case-sensitively against the start of a
// string; no further validation of the remainder is done. "rgb" and
// "hsl" already cover their alpha variants, which are kept listed so
// the rule reads the same as it is specified.
var colorPrefixes = [...]string{"#", "rgb", "rgba", "hsl", "hsla"}

func isColorLiteral(s string) bool {
	for _, p := range colorPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Classify determines the semantic Kind of v. It is pure and total:
// every input yields a Kind and none panics.
//
// Precedence, first match wins: null, sequence, color-literal string,
// then the value's intrinsic kind with object as the residual case.
func Classify(v any) Kind {
	if v == nil {
		return KindNull
	}

	switch val := v.(type) {
	case jsondoc.D:
		// A document is keyed, not integer-indexed, so it is an object
		// even though it is backed by a slice.
		return KindObject
	case jsondoc.A:
		return KindArray
	case string:
		if isColorLiteral(val) {
			return KindColor
		}
		return KindString
	case Symbol:
		return KindSymbol
	case Undefined:
		return KindUndefined
	case bool:
		return KindBoolean
	case json.Number:
		return KindNumber
	case *big.Int, big.Int:
		return KindBigint
	case *orderedmap.OrderedMap[string, any]:
		return KindObject
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.String:
		if isColorLiteral(rv.String()) {
			return KindColor
		}
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Func:
		return KindFunction
	default:
		return KindObject
	}
}
