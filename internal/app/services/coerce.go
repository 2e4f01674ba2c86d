package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Payload numerics arrive either as JSON numbers or as strings, depending on
// the client. These helpers coerce them into their semantic types; anything
// else is a validation failure, never a stored value.

// isMissing reports whether a loosely-typed payload value counts as absent
func isMissing(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// coerceFloat parses a payload value into a float64
func coerceFloat(v interface{}) (float64, error) {
	switch value := v.(type) {
	case float64:
		return value, nil
	case float32:
		return float64(value), nil
	case int:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case json.Number:
		return value.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(value), 64)
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}

// coerceInt parses a payload value into an int. Fractional values are
// rejected rather than truncated.
func coerceInt(v interface{}) (int, error) {
	switch value := v.(type) {
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case float64:
		if value != math.Trunc(value) {
			return 0, fmt.Errorf("not an integer: %v", value)
		}
		return int(value), nil
	case json.Number:
		parsed, err := value.Int64()
		if err != nil {
			return 0, err
		}
		return int(parsed), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(value))
	default:
		return 0, fmt.Errorf("not an integer: %v", v)
	}
}
