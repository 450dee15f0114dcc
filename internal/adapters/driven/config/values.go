// Package config holds the configuration store adapters and the value
// coercions they share. Stores keep values as decoded from TOML, where
// integers arrive as int64.
package config

// AsString returns val as a string, or "" when it is not one.
func AsString(val any) string {
	s, _ := val.(string)
	return s
}

// AsInt returns val as an int, or 0 when it is not numeric.
func AsInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// AsFloat returns val as a float64. Whole numbers written without a
// decimal point decode as integers, so those are accepted too.
func AsFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
