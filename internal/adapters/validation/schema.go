package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// Object is a decoded JSON object whose members have not been typed yet.
type Object map[string]json.RawMessage

// DecodeArray splits a JSON array into its raw elements. Anything other than
// a single JSON array (including null) is an error.
func DecodeArray(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("expected a JSON array")
	}

	var items []json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("invalid JSON array: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after JSON array")
	}
	return items, nil
}

// Object decodes raw as a JSON object. A problem is recorded under the
// validator's own prefix when raw is not an object.
func (v *Validator) Object(raw json.RawMessage) Object {
	var obj Object
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		v.Add("", "Must be a JSON object")
		return nil
	}
	return obj
}

// String reads a required JSON string member.
func (v *Validator) String(obj Object, key string) string {
	raw, ok := v.member(obj, key)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		v.Add(key, "Must be a string")
		return ""
	}
	return s
}

// Int reads a required JSON number member that must be an integer.
func (v *Validator) Int(obj Object, key string) int64 {
	n, ok := v.number(obj, key)
	if !ok {
		return 0
	}
	i, err := n.Int64()
	if err != nil {
		v.Add(key, "Must be an integer")
		return 0
	}
	return i
}

// Float reads a required JSON number member.
func (v *Validator) Float(obj Object, key string) float64 {
	n, ok := v.number(obj, key)
	if !ok {
		return 0
	}
	f, err := n.Float64()
	if err != nil {
		v.Add(key, "Must be a number")
		return 0
	}
	return f
}

// Time reads a required RFC 3339 timestamp member and returns it in UTC.
func (v *Validator) Time(obj Object, key string) time.Time {
	raw, ok := v.member(obj, key)
	if !ok {
		return time.Time{}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		v.Add(key, "Must be an RFC 3339 timestamp")
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		v.Add(key, "Must be an RFC 3339 timestamp")
		return time.Time{}
	}
	return t.UTC()
}

func (v *Validator) number(obj Object, key string) (json.Number, bool) {
	raw, ok := v.member(obj, key)
	if !ok {
		return "", false
	}
	// encoding/json accepts quoted numbers into json.Number; the schema does not.
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '"' {
		v.Add(key, "Must be a number")
		return "", false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil || n == "" {
		v.Add(key, "Must be a number")
		return "", false
	}
	return n, true
}

func (v *Validator) member(obj Object, key string) (json.RawMessage, bool) {
	if obj == nil {
		return nil, false
	}
	raw, ok := obj[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		v.Add(key, "This field is required")
		return nil, false
	}
	return raw, true
}
