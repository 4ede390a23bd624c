package payments

import "strings"

// Mask replaces every rune of s except the last keep runes with '*'.
// The length of s is preserved.
func Mask(s string, keep int) string {
	r := []rune(s)
	if keep < 0 {
		keep = 0
	}
	if keep >= len(r) {
		return s
	}
	return strings.Repeat("*", len(r)-keep) + string(r[len(r)-keep:])
}
