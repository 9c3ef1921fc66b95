package pan

import "strings"

// minBINLength is the shortest PAN that may keep its first six digits
// when masked.
const minBINLength = 13

var separators = strings.NewReplacer(" ", "", "\t", "", "-", "")

// Normalize drops spaces, tabs and dashes from a PAN.
func Normalize(s string) string {
	return separators.Replace(strings.TrimSpace(s))
}

// Mask hides a PAN for logging. PANs of at least 13 digits keep the first 6
// and last 4; shorter values keep at most the last 4, and values of 4 or
// fewer are hidden entirely. At least one digit is always hidden.
func Mask(pan string) string {
	p := Normalize(pan)
	n := len(p)

	var head, tail int
	switch {
	case n >= minBINLength:
		head, tail = 6, 4
	case n > 4:
		tail = 4
	}

	return p[:head] + strings.Repeat("*", n-head-tail) + p[n-tail:]
}
