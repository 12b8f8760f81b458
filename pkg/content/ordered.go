package content

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is a JSON object with its key order preserved. The standard
// library decodes objects into unordered maps, but content normalization
// treats object keys as item titles, so the document order of keys is part
// of the slide's meaning and has to survive decoding.
type Object struct {
	Keys   []string
	Values map[string]any
}

// Get returns the value for key and whether the key is present.
func (o Object) Get(key string) (any, bool) {
	v, ok := o.Values[key]
	return v, ok
}

// DecodeOrdered decodes JSON bytes into string, bool, json.Number, []any,
// or [Object], preserving object key order at every nesting level.
func DecodeOrdered(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		// string, bool, json.Number, or nil
		return tok, nil
	}
}

func decodeObject(dec *json.Decoder) (Object, error) {
	obj := Object{Values: map[string]any{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Object{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Object{}, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return Object{}, err
		}
		if _, dup := obj.Values[key]; !dup {
			obj.Keys = append(obj.Keys, key)
		}
		obj.Values[key] = val
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return Object{}, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	var arr []any
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	// consume closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
