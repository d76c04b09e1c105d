package domain

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes "field absent from the request body" from "field
// explicitly set to null" in PATCH payloads.
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(data, []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Set reports whether the field was supplied with a non-null value.
func (o Optional[T]) Set() bool {
	return o.Present && !o.Null
}

// Ptr returns the value as a nullable pointer, nil when absent or null.
func (o Optional[T]) Ptr() *T {
	if !o.Set() {
		return nil
	}
	v := o.Value
	return &v
}
