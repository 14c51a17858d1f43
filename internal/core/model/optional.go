package model

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Optional distinguishes an absent value from a present zero (or null) value.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// Or returns the wrapped value if set, fallback otherwise.
func (o Optional[T]) Or(fallback T) T {
	if !o.set {
		return fallback
	}

	return o.value
}

// UnmarshalJSON implements [json.Unmarshaler].
//
// It is only called when the key is present in the payload, an explicit
// null is therefore kept as a set zero value.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.value = zero
		return nil
	}

	if err := json.Unmarshal(data, &o.value); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// MarshalJSON implements [json.Marshaler].
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}

	data, err := json.Marshal(o.value)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

var (
	_ json.Marshaler   = Optional[string]{}
	_ json.Unmarshaler = &Optional[string]{}
)
