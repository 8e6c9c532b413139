package dailyverse

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeSelection unmarshals a stored selection, forcing every numeric field
// through normalizeNumbers first. The store hands back arbitrary-precision
// numbers; integer-valued ones must cross the JSON boundary as plain ints,
// anything fractional as a float.
func decodeSelection(data []byte) (*DailySelection, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding daily selection: %w", err)
	}

	native, err := json.Marshal(normalizeNumbers(raw))
	if err != nil {
		return nil, fmt.Errorf("normalizing daily selection: %w", err)
	}

	var sel DailySelection
	if err := json.Unmarshal(native, &sel); err != nil {
		return nil, fmt.Errorf("decoding daily selection: %w", err)
	}
	return &sel, nil
}

// normalizeNumbers converts json.Number values (and nested lists/maps) into
// plain int64/float64.
func normalizeNumbers(v interface{}) interface{} {
	switch val := v.(type) {
	case []interface{}:
		for i, item := range val {
			val[i] = normalizeNumbers(item)
		}
		return val
	case map[string]interface{}:
		for k, item := range val {
			val[k] = normalizeNumbers(item)
		}
		return val
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}
