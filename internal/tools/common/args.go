package common

import (
	"strconv"

	"github.com/teemow/analytics-mcp/internal/apierror"
)

// Tool arguments arrive as a map decoded from untrusted JSON, so every
// accessor here validates shape and reports a typed invalid-argument error
// instead of panicking on a bad assertion.

// String returns the string argument under key, or "" when the argument is
// absent or not a string.
func String(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// RequiredString returns the string argument under key, erroring when the
// argument is absent, empty, or not a string.
func RequiredString(args map[string]any, key string) (string, error) {
	value, ok := args[key]
	if !ok {
		return "", apierror.InvalidArgument("%s is required", key)
	}
	s, ok := value.(string)
	if !ok {
		return "", apierror.InvalidArgument("%s must be a string, got %T", key, value)
	}
	if s == "" {
		return "", apierror.InvalidArgument("%s must not be empty", key)
	}
	return s, nil
}

// Bool returns the boolean argument under key, or false when absent.
func Bool(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

// Int64 returns the numeric argument under key, or def when absent. JSON
// numbers decode as float64; integers, int64s, and numeric strings are
// accepted as well. Fractional values are rejected.
func Int64(args map[string]any, key string, def int64) (int64, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return def, nil
	}
	switch v := value.(type) {
	case float64:
		if v != float64(int64(v)) {
			return 0, apierror.InvalidArgument("%s must be an integer, got %v", key, v)
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, apierror.InvalidArgument("%s must be an integer, got %q", key, v)
		}
		return n, nil
	default:
		return 0, apierror.InvalidArgument("%s must be an integer, got %T", key, value)
	}
}

// StringSlice returns the argument under key as a list of strings. It
// accepts a JSON array of strings or a single bare string; absent arguments
// yield nil.
func StringSlice(args map[string]any, key string) ([]string, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, apierror.InvalidArgument("%s[%d] must be a string, got %T", key, i, item)
			}
			out = append(out, s)
		}
		return out, nil
	case []string:
		return v, nil
	default:
		return nil, apierror.InvalidArgument("%s must be a string or array of strings, got %T", key, value)
	}
}

// Map returns the JSON object argument under key, or nil when absent.
func Map(args map[string]any, key string) (map[string]any, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return nil, nil
	}
	m, ok := value.(map[string]any)
	if !ok {
		return nil, apierror.InvalidArgument("%s must be an object, got %T", key, value)
	}
	return m, nil
}

// MapSlice returns the argument under key as a list of JSON objects, or nil
// when absent.
func MapSlice(args map[string]any, key string) ([]map[string]any, error) {
	value, ok := args[key]
	if !ok || value == nil {
		return nil, nil
	}
	list, ok := value.([]any)
	if !ok {
		return nil, apierror.InvalidArgument("%s must be an array of objects, got %T", key, value)
	}
	out := make([]map[string]any, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, apierror.InvalidArgument("%s[%d] must be an object, got %T", key, i, item)
		}
		out = append(out, m)
	}
	return out, nil
}
