// Package rangecompile turns an inclusive integer range, given as digit
// strings in an arbitrary base, into a regex fragment that matches exactly
// the decimal (or base-N) representations of the integers in that range —
// no leading zeros, no partial matches. It is the one piece of pomsky's
// pipeline that is an algorithm in its own right rather than a tree walk.
package rangecompile

import (
	"fmt"
	"strings"
)

// DefaultMaxDigits is used by Compile when the caller passes 0.
const DefaultMaxDigits = 6

// TooLargeError reports that hi's digit-length exceeds the configured
// max-digits bound.
type TooLargeError struct {
	Hi        string
	MaxDigits uint16
	Got       int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("range upper bound %q has %d digits, exceeding the max-digits limit of %d", e.Hi, e.Got, e.MaxDigits)
}

// Compile produces a regex fragment matching exactly the integers in
// [lo, hi], both given as most-significant-digit-first strings in base
// (2..=36, digits 0-9 then a-z). maxDigits of 0 uses DefaultMaxDigits.
// The returned fragment is safe to splice directly into a concatenation:
// it never leaves a bare top-level `|` unparenthesized... except when the
// overall range spans more than one digit-length, in which case the
// result CAN contain a top-level alternation, matching Range's treatment
// as an alternation-shaped atom by the emitter's context package.
func Compile(lo, hi string, base uint8, maxDigits uint16) (string, error) {
	if maxDigits == 0 {
		maxDigits = DefaultMaxDigits
	}
	if base < 2 || base > 36 {
		return "", fmt.Errorf("rangecompile: invalid base %d", base)
	}
	loDigits, err := parseDigits(lo, base)
	if err != nil {
		return "", fmt.Errorf("rangecompile: invalid lower bound %q: %w", lo, err)
	}
	hiDigits, err := parseDigits(hi, base)
	if err != nil {
		return "", fmt.Errorf("rangecompile: invalid upper bound %q: %w", hi, err)
	}
	if len(hiDigits) > int(maxDigits) {
		return "", &TooLargeError{Hi: hi, MaxDigits: maxDigits, Got: len(hiDigits)}
	}
	if compareDigits(loDigits, hiDigits) > 0 {
		return "", fmt.Errorf("rangecompile: lower bound %q exceeds upper bound %q", lo, hi)
	}
	return compileSplit(loDigits, hiDigits, base), nil
}

func parseDigits(s string, base uint8) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty digit string")
	}
	digits := make([]int, 0, len(s))
	for _, c := range s {
		d, ok := digitValue(c)
		if !ok || d >= int(base) {
			return nil, fmt.Errorf("invalid digit %q for base %d", c, base)
		}
		digits = append(digits, d)
	}
	if len(digits) > 1 && digits[0] == 0 {
		return nil, fmt.Errorf("leading zero in %q", s)
	}
	return digits, nil
}

func digitValue(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return 0, false
}

func compareDigits(a, b []int) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}
	return 0
}

// compileSplit handles lo and hi of possibly different digit-lengths by
// splitting on digit-length before delegating each equal-length piece to
// compileEqualLen.
func compileSplit(lo, hi []int, base uint8) string {
	if len(lo) == len(hi) {
		return compileEqualLen(lo, hi, base)
	}

	var branches []string
	branches = append(branches, compileEqualLen(lo, repeatDigit(int(base)-1, len(lo)), base))
	for k := len(lo) + 1; k < len(hi); k++ {
		branches = append(branches, compileEqualLen(minOfLength(k), repeatDigit(int(base)-1, k), base))
	}
	branches = append(branches, compileEqualLen(minOfLength(len(hi)), hi, base))
	return strings.Join(branches, "|")
}

// minOfLength is the smallest k-digit value with no leading zero: 1
// followed by k-1 zeros (k >= 1).
func minOfLength(k int) []int {
	d := make([]int, k)
	d[0] = 1
	return d
}

func repeatDigit(d, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = d
	}
	return out
}

// compileEqualLen trims the longest common prefix, then recursively
// splits the first differing digit into a lower
// boundary leg, an optional full-range middle leg, and an upper boundary
// leg. Every value this returns is safe to use as one concatenation
// operand — any alternation it introduces is confined behind the digit
// literal that precedes it, so the whole thing never exposes a bare
// top-level `|`.
func compileEqualLen(lo, hi []int, base uint8) string {
	n := len(lo)
	p := 0
	for p < n && lo[p] == hi[p] {
		p++
	}
	prefix := renderDigits(lo[:p], base)
	if p == n {
		return prefix
	}

	loD, hiD := lo[p], hi[p]
	remLen := n - p - 1

	if remLen == 0 {
		return prefix + "[" + digitClass(loD, hiD, base) + "]"
	}

	maxRest := repeatDigit(int(base)-1, remLen)
	minRest := repeatDigit(0, remLen)

	var branches []string
	branches = append(branches, renderDigit(loD, base)+compileEqualLen(lo[p+1:], maxRest, base))
	if hiD-loD >= 2 {
		branches = append(branches, "["+digitClass(loD+1, hiD-1, base)+"]"+fullDigitsFragment(remLen, base))
	}
	branches = append(branches, renderDigit(hiD, base)+compileEqualLen(minRest, hi[p+1:], base))

	if len(branches) == 1 {
		return prefix + branches[0]
	}
	return prefix + "(?:" + strings.Join(branches, "|") + ")"
}

func renderDigit(d int, base uint8) string {
	if d < 10 {
		return string(rune('0' + d))
	}
	return string(rune('a' + d - 10))
}

func renderDigits(ds []int, base uint8) string {
	var sb strings.Builder
	for _, d := range ds {
		sb.WriteString(renderDigit(d, base))
	}
	return sb.String()
}

func digitClass(lo, hi int, base uint8) string {
	if lo == hi {
		return renderDigit(lo, base)
	}
	if lo < 10 && hi >= 10 {
		// keep the ASCII characters between '9' and 'a' out of the class
		return digitClass(lo, 9, base) + digitClass(10, hi, base)
	}
	return renderDigit(lo, base) + "-" + renderDigit(hi, base)
}

func fullDigitsFragment(n int, base uint8) string {
	cls := "[" + digitClass(0, int(base)-1, base) + "]"
	if n == 1 {
		return cls
	}
	return fmt.Sprintf("%s{%d}", cls, n)
}
