package event

import "encoding/json"

// DecodePayload decodes an event payload into T.
// In-process publishers hand over the typed struct, which is returned directly;
// payloads that arrive as generic maps go through a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	if p, ok := input.(*T); ok && p != nil {
		return *p, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
