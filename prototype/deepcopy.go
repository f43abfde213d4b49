package prototype

import (
	"bytes"
	"encoding/json"
)

// DeepCopy returns a deep copy of v via a JSON round trip.
//
// It handles arbitrary plain-data values (structs, maps, slices) without
// per-type copy code, at the cost of requiring v to be JSON-encodable;
// channels, funcs, and cyclic values fail with the encoder's error.
func DeepCopy[T any](v T) (T, error) {
	var zero T

	b, err := json.Marshal(v)
	if err != nil {
		return zero, err
	}

	// Decode with UseNumber so numeric fields inside map[string]any values
	// survive the round trip without float64 truncation.
	var out T
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return zero, err
	}

	return out, nil
}
