// AngelaMos | 2026
// decode.go

// Package decode turns loosely structured JSON or GraphQL result data
// into typed records. Decoding is all or nothing: the first field that
// violates its contract fails the whole record, and the error names
// the offending field path.
package decode

import (
	"errors"
	"fmt"
)

// Object is a parsed JSON object, as produced by encoding/json into
// map[string]any.
type Object = map[string]any

// Error reports a single contract violation: which field path failed
// and what was expected there.
type Error struct {
	Path        string
	Expectation string
}

func (e *Error) Error() string {
	return fmt.Sprintf("decode %q: %s", e.Path, e.Expectation)
}

// AsError unwraps a decode error from an error chain.
func AsError(err error) (*Error, bool) {
	var decodeErr *Error
	if errors.As(err, &decodeErr) {
		return decodeErr, true
	}
	return nil, false
}

func prefix(err error, key string) error {
	var decodeErr *Error
	if errors.As(err, &decodeErr) {
		path := key
		if decodeErr.Path != "" {
			path = key + "." + decodeErr.Path
		}
		return &Error{
			Path:        path,
			Expectation: decodeErr.Expectation,
		}
	}
	return err
}

func typeName(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case float64:
		return "a number"
	case Object:
		return "an object"
	case []any:
		return "an array"
	}
	return fmt.Sprintf("%T", raw)
}

// String decodes a JSON string value.
func String(raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", &Error{Expectation: "expected a string, got " + typeName(raw)}
	}
	return s, nil
}

// Bool decodes a JSON boolean value.
func Bool(raw any) (bool, error) {
	b, ok := raw.(bool)
	if !ok {
		return false, &Error{Expectation: "expected a boolean, got " + typeName(raw)}
	}
	return b, nil
}

// Int64 decodes a JSON number as an integer. encoding/json parses all
// numbers as float64; anything with a fractional part is rejected.
func Int64(raw any) (int64, error) {
	f, ok := raw.(float64)
	if !ok {
		return 0, &Error{Expectation: "expected an integer, got " + typeName(raw)}
	}
	n := int64(f)
	if float64(n) != f {
		return 0, &Error{Expectation: "expected an integer, got a fraction"}
	}
	return n, nil
}

// Obj decodes a nested JSON object.
func Obj(raw any) (Object, error) {
	obj, ok := raw.(Object)
	if !ok {
		return nil, &Error{Expectation: "expected an object, got " + typeName(raw)}
	}
	return obj, nil
}

// Field decodes a required, non-nullable field. The key must be
// present and its value must satisfy dec.
func Field[T any](obj Object, key string, dec func(any) (T, error), dst *T) error {
	raw, ok := obj[key]
	if !ok {
		return &Error{Path: key, Expectation: "required key is missing"}
	}

	value, err := dec(raw)
	if err != nil {
		return prefix(err, key)
	}

	*dst = value
	return nil
}

// NullableField decodes a required field whose value may be the
// explicit null marker. The key itself must still be present; a
// missing key is a failure, an explicit null decodes to nil.
func NullableField[T any](
	obj Object,
	key string,
	dec func(any) (T, error),
	dst **T,
) error {
	raw, ok := obj[key]
	if !ok {
		return &Error{Path: key, Expectation: "required key is missing"}
	}

	if raw == nil {
		*dst = nil
		return nil
	}

	value, err := dec(raw)
	if err != nil {
		return prefix(err, key)
	}

	*dst = &value
	return nil
}

// OptionalField decodes a field that may be absent entirely. Absent
// keys and explicit nulls both leave dst nil.
func OptionalField[T any](
	obj Object,
	key string,
	dec func(any) (T, error),
	dst **T,
) error {
	raw, ok := obj[key]
	if !ok || raw == nil {
		*dst = nil
		return nil
	}

	value, err := dec(raw)
	if err != nil {
		return prefix(err, key)
	}

	*dst = &value
	return nil
}

// Nested decodes a required nested object through fn, prefixing any
// failure inside fn with the field key.
func Nested[T any](
	obj Object,
	key string,
	fn func(Object) (T, error),
	dst *T,
) error {
	var nested Object
	if err := Field(obj, key, Obj, &nested); err != nil {
		return err
	}

	value, err := fn(nested)
	if err != nil {
		return prefix(err, key)
	}

	*dst = value
	return nil
}
