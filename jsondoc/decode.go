package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Unmarshal decodes JSON data into the ordered document model: objects
// become D, arrays become A, numbers stay json.Number, and the other
// scalars decode to string, bool, or nil.
func Unmarshal(data []byte) (any, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one JSON value from r into the ordered document model.
func Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool, or nil
		return tok, nil
	}

	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim.String())
	}
}

func decodeObject(dec *json.Decoder) (D, error) {
	d := D{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, want string", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		d = append(d, E{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return d, nil
}

func decodeArray(dec *json.Decoder) (A, error) {
	a := A{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		a = append(a, v)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return a, nil
}
