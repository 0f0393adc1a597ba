// Package collation normalizes strings compared case-insensitively, so uniqueness
// can be enforced by plain equality on the normalized key in any storage engine.
package collation

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Key returns the comparison key of s: NFC normalized and Unicode case folded.
// Accents stay significant, letter case does not.
func Key(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Equal reports whether a and b are equal ignoring letter case
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}
