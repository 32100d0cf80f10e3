package inspect

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/HazzazBinFaiz/objscope/jsondoc"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry is one key/value pair of a composite value, in display order.
type Entry struct {
	Key   string
	Value any
}

// Entries enumerates the children of a composite value in the order the
// tree presents them: document order for jsondoc documents and ordered
// maps, index order for sequences, declaration order for struct fields,
// and sorted key order for native Go maps (which carry no insertion
// order of their own). Non-composite values yield nil.
func Entries(v any) []Entry {
	if v == nil {
		return nil
	}

	switch val := v.(type) {
	case jsondoc.D:
		if len(val) == 0 {
			return nil
		}
		ents := make([]Entry, len(val))
		for i, e := range val {
			ents[i] = Entry{Key: e.Key, Value: e.Value}
		}
		return ents
	case jsondoc.A:
		return indexEntries(len(val), func(i int) any { return val[i] })
	case *orderedmap.OrderedMap[string, any]:
		if val == nil || val.Len() == 0 {
			return nil
		}
		ents := make([]Entry, 0, val.Len())
		for pair := val.Oldest(); pair != nil; pair = pair.Next() {
			ents = append(ents, Entry{Key: pair.Key, Value: pair.Value})
		}
		return ents
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ents := make([]Entry, len(keys))
		for i, k := range keys {
			ents[i] = Entry{Key: k, Value: val[k]}
		}
		return ents
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return indexEntries(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Map:
		keys := rv.MapKeys()
		named := make([]Entry, len(keys))
		for i, k := range keys {
			named[i] = Entry{Key: fmt.Sprint(k.Interface()), Value: rv.MapIndex(k).Interface()}
		}
		sort.Slice(named, func(i, j int) bool { return named[i].Key < named[j].Key })
		return named
	case reflect.Struct:
		rt := rv.Type()
		var ents []Entry
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}
			ents = append(ents, Entry{Key: f.Name, Value: rv.Field(i).Interface()})
		}
		return ents
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return Entries(rv.Elem().Interface())
	default:
		return nil
	}
}

func indexEntries(n int, at func(int) any) []Entry {
	if n == 0 {
		return nil
	}
	ents := make([]Entry, n)
	for i := 0; i < n; i++ {
		ents[i] = Entry{Key: strconv.Itoa(i), Value: at(i)}
	}
	return ents
}
