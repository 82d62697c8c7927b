package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCount converts a decimal count string, as found in collection exports, to
// a uint32. A single leading '+' is allowed. Whitespace, a minus sign and
// fractions are rejected.
func ParseCount(s string) (uint32, error) {
	digits := strings.TrimPrefix(s, "+")
	if digits == "" || digits[0] < '0' || digits[0] > '9' {
		return 0, fmt.Errorf("invalid count %q", s)
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", s, err)
	}
	return uint32(n), nil
}

// ToString renders a loosely typed value, such as a decoded JSON count, as text.
// Numbers are printed without exponent so ParseCount sees every digit.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
