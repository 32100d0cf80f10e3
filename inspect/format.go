package inspect

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"runtime"
	"strings"
)

// Label is the display rendering of a node: the text to show and the
// token category a renderer may use for styling.
type Label struct {
	Text  string
	Token Token
}

// Format produces the display label for a value of the given kind.
// It is pure and depends only on its three inputs; isOpen matters only
// for arrays and objects and is ignored for every other kind.
func Format(v any, k Kind, isOpen bool) Label {
	return Label{Text: formatText(v, k, isOpen), Token: k.Token()}
}

func formatText(v any, k Kind, isOpen bool) string {
	switch k {
	case KindArray:
		n := len(Entries(v))
		if isOpen {
			return fmt.Sprintf("Array (%d %s)", n, pluralize("item", n))
		}
		if n > 0 {
			return "[…]"
		}
		return "[]"
	case KindObject:
		n := len(Entries(v))
		if isOpen {
			return fmt.Sprintf("Object (%d %s)", n, pluralize("key", n))
		}
		if n > 0 {
			return "{…}"
		}
		return "{}"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindFunction:
		return "f " + funcName(v) + "()"
	case KindString:
		// Raw string in double quotes; embedded quotes and control
		// characters are not escaped.
		return `"` + stringify(v) + `"`
	case KindSymbol:
		return "Symbol(" + stringify(v) + ")"
	default:
		// number, bigint, boolean, and color all show their plain
		// string conversion.
		return stringify(v)
	}
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case Symbol:
		return string(val)
	case json.Number:
		return val.String()
	case big.Int:
		return val.String()
	case fmt.Stringer:
		return val.String()
	}
	return fmt.Sprint(v)
}

// funcName resolves the bare name of a function value, or "" for
// functions the runtime cannot name.
func funcName(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
