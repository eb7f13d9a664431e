package models

import "encoding/json"

// Optional is a JSON field that distinguishes three states the partial-update
// contract depends on: absent from the payload (Present=false, leave the field
// untouched), explicit null (Present=true, Valid=false, clear the field), and
// set (Present=true, Valid=true).
type Optional[T any] struct {
	Present bool
	Valid   bool
	Value   T
}

// Set returns an Optional carrying v.
func Set[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Valid: true, Value: v}
}

// Null returns an explicit-null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true}
}

// UnmarshalJSON is only invoked for keys present in the payload, which is what
// makes the absent/null distinction work.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Present = true
	if string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
