// Package jsondoc provides an order-preserving JSON document model.
//
// encoding/json decodes objects into Go maps, which forget the order
// keys appeared in. jsondoc decodes into D, an ordered collection of
// entries, so a document renders in the same order it was written.
package jsondoc

// D represents a JSON object: an ordered collection of key/value
// entries.
type D []E

// E is a single entry in a D.
type E struct {
	Key   string
	Value any
}

// A represents a JSON array.
type A []any

// Value returns the value stored under key and whether it is present.
// Lookup is linear; documents are built for display, not indexing.
func (d D) Value(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the entry keys in document order.
func (d D) Keys() []string {
	keys := make([]string, len(d))
	for i, e := range d {
		keys[i] = e.Key
	}
	return keys
}
