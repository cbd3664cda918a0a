package asana

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Payload converts a typed record into the field map the mutation operations
// accept as a request body. Fields tagged omitempty are dropped when zero,
// which keeps the result safe for partial updates: only the fields the caller
// actually set reach the wire.
func Payload(v interface{}) (map[string]interface{}, error) {
	var m map[string]interface{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &m,
	})
	if err != nil {
		return nil, fmt.Errorf("asana: failed to build payload decoder: %w", err)
	}
	if err := decoder.Decode(v); err != nil {
		return nil, fmt.Errorf("asana: failed to build payload: %w", err)
	}
	return m, nil
}
