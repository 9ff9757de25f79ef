package tools

import (
	"strconv"
	"strings"
)

// Argument extraction helpers. Tool arguments arrive as decoded JSON, so
// numbers are float64 and everything else may be a string. The model
// occasionally sends the literal string "null" for omitted parameters and a
// bare string where an array is declared; both are tolerated here so a sloppy
// call degrades to "filter unset" instead of a hard failure.

// stringArg returns the string value for key, or "" when absent, null, or the
// literal "null" placeholder.
func stringArg(args map[string]any, key string) string {
	v, ok := args[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	if strings.EqualFold(strings.TrimSpace(s), "null") {
		return ""
	}
	return s
}

// intArg returns the integer value for key. Accepts JSON numbers and numeric
// strings. The second return is false when the key is absent or the value is
// not coercible to a whole number.
func intArg(args map[string]any, key string) (int, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// stringListArg returns the string-array value for key. A bare string is
// treated as a single-element list; "null" entries are dropped.
func stringListArg(args map[string]any, key string) []string {
	v, ok := args[key]
	if !ok || v == nil {
		return nil
	}

	var raw []string
	switch l := v.(type) {
	case string:
		raw = []string{l}
	case []any:
		for _, item := range l {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	case []string:
		raw = l
	}

	out := raw[:0]
	for _, s := range raw {
		if s == "" || strings.EqualFold(strings.TrimSpace(s), "null") {
			continue
		}
		out = append(out, s)
	}
	return out
}
