package common

import (
	"math"
	"strings"
)

// HasAny reports whether s contains any of the substrings, ignoring case.
func HasAny(s string, subs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

// RoundHalfUp rounds x to the nearest integer, with halves rounded towards
// positive infinity (-1.5 becomes -1, 2.5 becomes 3).
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
