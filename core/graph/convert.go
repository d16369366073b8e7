package graph

import (
	"math"
	"strconv"
	"strings"
)

// ToInt converts a terminal value to int using explicit type switching.
// It handles every integer width, integral floats, numeric strings and byte
// slices. ok is false for nil, for values that do not hold a number and for
// numbers that do not fit in an int.
func ToInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return fromInt64(v)
	case int32:
		return int(v), true
	case int16:
		return int(v), true
	case int8:
		return int(v), true
	case uint:
		return fromUint64(uint64(v))
	case uint64:
		return fromUint64(v)
	case uint32:
		return fromUint64(uint64(v))
	case uint16:
		return int(v), true
	case uint8:
		return int(v), true
	case float64:
		return fromFloat(v)
	case float32:
		return fromFloat(float64(v))
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		return i, err == nil
	case []byte:
		i, err := strconv.Atoi(strings.TrimSpace(string(v)))
		return i, err == nil
	default:
		return 0, false
	}
}

func fromInt64(v int64) (int, bool) {
	if v < math.MinInt || v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

func fromUint64(v uint64) (int, bool) {
	if v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

// fromFloat accepts integral values only.
func fromFloat(v float64) (int, bool) {
	if v != math.Trunc(v) || v < math.MinInt || v >= math.MaxInt {
		return 0, false
	}
	return int(v), true
}

// ToString converts a terminal value to string.
// Managed strings arrive as string or []byte; nil is not a string.
func ToString(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

// ToBool converts a terminal value to bool.
// It handles bool, numeric types (non-zero=true) and the strings accepted by
// strconv.ParseBool. ok is false for any other string.
func ToBool(val any) (bool, bool) {
	switch v := val.(type) {
	case nil:
		return false, false
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return b, err == nil
	case []byte:
		b, err := strconv.ParseBool(strings.TrimSpace(string(v)))
		return b, err == nil
	default:
		i, ok := ToInt(v)
		return i != 0, ok
	}
}
