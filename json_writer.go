package assetbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter builds a JSON object whose keys keep the order they were
// added in. The first marshaling error is kept and returned by MarshalJSON.
// Its zero value is an empty object.
type jsonObjectWriter struct {
	keys   []string
	values []json.RawMessage
	err    error
}

// Append adds key with value encoded by json.Marshal.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot encode %q: %w", key, err)
		return w
	}
	w.keys = append(w.keys, key)
	w.values = append(w.values, raw)
	return w
}

// Optional adds key unless value is the zero value of its type.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// Number adds key with n written as a bare number, or null when n is empty.
func (w *jsonObjectWriter) Number(key string, n json.Number) *jsonObjectWriter {
	if n == "" {
		return w.Append(key, nil)
	}
	return w.Append(key, n)
}

func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, key := range w.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		b.Write(k)
		b.WriteByte(':')
		b.Write(w.values[i])
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
