package event

import "encoding/json"

// DecodePayload returns the payload as T. MemoryBus hands payloads over as the
// original struct; anything else (e.g. a map from a JSON source) goes through a
// JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
