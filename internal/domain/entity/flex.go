// internal/domain/entity/flex.go
package entity

import (
	"bytes"
	"encoding/json"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexString is an upstream scalar that may arrive as text, number or boolean.
// Numbers keep their literal text; null and missing both decode to "".
type FlexString string

// String returns the text form
func (s FlexString) String() string {
	return string(s)
}

// UnmarshalJSON accepts any JSON scalar
func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}

	switch b[0] {
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
	case 't':
		*s = "True"
	case 'f':
		*s = "False"
	default:
		*s = FlexString(b)
	}
	return nil
}

// UnmarshalBSONValue accepts the scalar types the mongo driver can hand back
func (s *FlexString) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.String:
		*s = FlexString(rv.StringValue())
	case bsontype.Int32:
		*s = FlexString(strconv.FormatInt(int64(rv.Int32()), 10))
	case bsontype.Int64:
		*s = FlexString(strconv.FormatInt(rv.Int64(), 10))
	case bsontype.Double:
		*s = FlexString(strconv.FormatFloat(rv.Double(), 'f', -1, 64))
	case bsontype.Boolean:
		if rv.Boolean() {
			*s = "True"
		} else {
			*s = "False"
		}
	case bsontype.Null, bsontype.Undefined:
		*s = ""
	default:
		*s = FlexString(rv.String())
	}
	return nil
}

// Items is a JSON array whose elements decode independently. An element that
// does not fit T is dropped instead of failing the enclosing document, and a
// value that is not an array decodes as empty.
type Items[T any] []T

// UnmarshalJSON decodes element by element
func (it *Items[T]) UnmarshalJSON(b []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		*it = nil
		return nil
	}

	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	*it = out
	return nil
}

// decodeField decodes raw[key] into dst. A missing member or one that does
// not fit leaves dst untouched.
func decodeField[T any](raw map[string]json.RawMessage, key string, dst *T) {
	v, ok := raw[key]
	if !ok {
		return
	}
	var out T
	if err := json.Unmarshal(v, &out); err != nil {
		return
	}
	*dst = out
}

// OrderedMap is a JSON object that remembers key order. Upstream seat maps key
// decks and compartments by id, and the order they appear in decides which
// duplicate seat is kept.
type OrderedMap[T any] struct {
	keys   []string
	values map[string]T
}

// Set stores v under key; an existing key keeps its position
func (m *OrderedMap[T]) Set(key string, v T) {
	if m.values == nil {
		m.values = make(map[string]T)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key
func (m OrderedMap[T]) Get(key string) (T, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in document order
func (m OrderedMap[T]) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of entries
func (m OrderedMap[T]) Len() int {
	return len(m.keys)
}

// Values returns the values in document order
func (m OrderedMap[T]) Values() []T {
	out := make([]T, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// UnmarshalJSON decodes an object keeping key order. Entries that do not fit T
// are dropped; a value that is not an object decodes as empty.
func (m *OrderedMap[T]) UnmarshalJSON(b []byte) error {
	*m = OrderedMap[T]{}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		m.Set(key, v)
	}

	_, err = dec.Token()
	return err
}

// MarshalJSON encodes the object in key order
func (m OrderedMap[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
