package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload of an event as T. In-process publishers
// hand over T or *T directly; anything else (maps from a replay, raw JSON)
// is converted through JSON.
func DecodePayload[T any](payload any) (T, error) {
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	case json.RawMessage:
		return unmarshalPayload[T](v)
	}

	var zero T
	data, err := json.Marshal(payload)
	if err != nil {
		return zero, fmt.Errorf("encode %T payload: %w", payload, err)
	}
	return unmarshalPayload[T](data)
}

func unmarshalPayload[T any](data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %T payload: %w", out, err)
	}
	return out, nil
}
