package util

import "strconv"

// MustParseUint converts a path/query parameter to uint, returning 0 when
// the value does not parse. A zero id never matches a row, so lookups on
// garbage input fall through to the not-found path.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParseIntDefault converts a query parameter to int with a fallback.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
