package types

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/collections"
)

// jsonValueCodec adapts encoding/json to collections.ValueCodec. The original
// Rust contracts serialize every stored value with cosmwasm_schema::cw_serde,
// which is serde_json under the hood; this keeps the Go port's wire form
// faithful to that without requiring a gogoproto schema this repo has no way
// to generate (see SPEC_FULL.md section 6).
type jsonValueCodec[T any] struct {
	name string
}

// NewJSONValueCodec returns a collections.ValueCodec[T] backed by
// encoding/json, named for diagnostics the way codec.CollValue names its
// proto-backed counterpart.
func NewJSONValueCodec[T any](name string) collections.ValueCodec[T] {
	return jsonValueCodec[T]{name: name}
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var value T
	err := json.Unmarshal(b, &value)
	return value, err
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("<%s: %v>", c.name, err)
	}
	return string(b)
}

func (c jsonValueCodec[T]) ValueType() string {
	return c.name
}
