package repository

import (
	"bytes"
	"encoding/json"
)

// The collections went through several incompatible write conventions before
// settling on one canonical shape. Reads must keep tolerating every shape the
// store has ever produced:
//
//	[...]                    the list itself
//	"[...]"                  a JSON string containing the list
//	{"value": [...]}         a wrapper object around the list
//	{"value": "[...]"}       a wrapper around the stringified list
//
// Anything unreadable degrades to an empty list instead of failing the
// request; garbage in the store is expected, not exceptional.

// DecodeCollection normalizes a raw stored value into a slice of records.
// Records that fail to unmarshal individually are dropped.
func DecodeCollection[T any](raw []byte) []T {
	elements := unwrapList(raw, 0)

	items := make([]T, 0, len(elements))
	for _, element := range elements {
		var item T
		if err := json.Unmarshal(element, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}

// EncodeCollection serializes records into the canonical shape: the JSON text
// of the list, stored as the key's string value. New writes never reintroduce
// shape ambiguity.
func EncodeCollection[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// unwrapList peels wrapper layers until it reaches a JSON array. The depth
// cap stops pathological nesting; legitimate historical data is at most two
// layers deep.
func unwrapList(raw []byte, depth int) []json.RawMessage {
	if depth > 3 {
		return nil
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	switch trimmed[0] {
	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return nil
		}
		return elements
	case '"':
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil
		}
		return unwrapList([]byte(inner), depth+1)
	case '{':
		var wrapper struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil
		}
		return unwrapList(wrapper.Value, depth+1)
	default:
		return nil
	}
}
