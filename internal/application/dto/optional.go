package dto

import (
	"bytes"
	"encoding/json"
)

// Optional distingue un campo ausente de uno enviado como null en una actualización parcial.
// Set indica que el campo vino en el JSON; Value es nil cuando vino como null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some construye un Optional presente con valor.
func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: &v} }

// Null construye un Optional presente sin valor.
func Null[T any]() Optional[T] { return Optional[T]{Set: true} }

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
