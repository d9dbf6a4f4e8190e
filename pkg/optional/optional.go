// Package optional provides a tri-state JSON field for partial updates.
package optional

import "encoding/json"

// Field distinguishes an absent JSON field from an explicit null and from
// a value. Absent means "leave unchanged", null means "clear".
type Field[T any] struct {
	present bool
	valid   bool
	value   T
}

// Of returns a field holding a value.
func Of[T any](value T) Field[T] {
	return Field[T]{present: true, valid: true, value: value}
}

// Null returns a field explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{present: true}
}

// UnmarshalJSON marks the field present; encoding/json only calls this
// when the key appears in the payload.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if string(data) == "null" {
		f.valid = false
		var zero T
		f.value = zero
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err != nil {
		return err
	}
	f.valid = true
	return nil
}

// Present reports whether the field appeared in the payload at all.
func (f Field[T]) Present() bool {
	return f.present
}

// IsNull reports whether the field was an explicit null.
func (f Field[T]) IsNull() bool {
	return f.present && !f.valid
}

// Value returns the decoded value and whether one was provided.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.present && f.valid
}
