package utils

import (
	"encoding/json"
	"strings"
)

// NormalizeBool coerces a loosely typed profile flag to a strict boolean.
// Numbers are true only when equal to 1; text is true for "true", "1" or
// "yes" in any case. Anything else is false.
func NormalizeBool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "yes":
			return true
		}
		return false
	}

	if n, ok := toFloat(v); ok {
		return n == 1
	}
	return false
}

// NormalizeStudent coerces a student count to "has at least one student".
// Text counts only when it is made of ASCII digits.
func NormalizeStudent(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return positiveDigits(strings.TrimSpace(t))
	}

	if n, ok := toFloat(v); ok {
		return n > 0
	}
	return false
}

// positiveDigits reports whether s is a non-empty ASCII digit string with a
// non-zero value. Checking for a non-zero digit avoids overflow on long input.
func positiveDigits(s string) bool {
	if s == "" {
		return false
	}
	nonZero := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		if c != '0' {
			nonZero = true
		}
	}
	return nonZero
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
