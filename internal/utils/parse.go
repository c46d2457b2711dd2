// Package utils provides small helpers shared across layers, mainly for
// reading request parameters. They carry no domain logic.
package utils

import "strconv"

// AtoiDefault parses s as a base-10 integer, returning def when s is empty
// or not a number. Handlers use it for path and query parameters where a
// zero or negative result is then rejected by their own range checks.
func AtoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
