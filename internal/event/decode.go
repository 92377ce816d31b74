package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyPayload is returned when an event carries no payload to decode
var ErrEmptyPayload = errors.New("event payload is empty")

// DecodePayload returns an event payload as T. The memory bus hands over T or *T as
// published; entries read back from the dead-letter log carry raw JSON or a generic map.
func DecodePayload[T any](input any) (T, error) {
	var out T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, ErrEmptyPayload
		}
		return *v, nil
	case nil:
		return out, ErrEmptyPayload
	case json.RawMessage:
		return out, decodeJSON(v, &out)
	case []byte:
		return out, decodeJSON(v, &out)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return out, fmt.Errorf("re-encode %T payload: %w", input, err)
	}
	return out, decodeJSON(data, &out)
}

func decodeJSON[T any](data []byte, out *T) error {
	if len(data) == 0 {
		return ErrEmptyPayload
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %T payload: %w", *out, err)
	}
	return nil
}
