package patch

import "encoding/json"

// Field distinguishes "absent from the payload" from "present with a zero or
// null value", so PATCH bodies don't need untyped map inspection.
type Field[T any] struct {
	value T
	set   bool
}

func NewField[T any](value T) Field[T] {
	return Field[T]{value: value, set: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	return json.Unmarshal(data, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

func (f Field[T]) IsSet() bool {
	return f.set
}

func (f Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// Value returns the zero value when the field was absent.
func (f Field[T]) Value() T {
	return f.value
}

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
