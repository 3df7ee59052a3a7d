// Package features defines the PomskyFeatures bitset recording which
// optional language constructs a parsed program uses, so the semantic
// pass can reject anything outside a caller-supplied allow-mask.
package features

// Set is a bitset of optional pomsky constructs.
type Set uint32

const (
	Lookaround Set = 1 << iota
	Variables
	Ranges
	GraphemeCluster
	RelativeReferences
	NamedReferences
	NumberedReferences
	NamedCaptureGroups
	AtomicGroups
	Repetitions
	CharacterClasses
	UnicodeProperties
	LazyMode

	// All enables every feature; the zero-value default for
	// ParseOptions.AllowedFeatures is All, matching the rest of the
	// compiler's "permissive unless told otherwise" stance.
	All = Lookaround | Variables | Ranges | GraphemeCluster | RelativeReferences |
		NamedReferences | NumberedReferences | NamedCaptureGroups | AtomicGroups |
		Repetitions | CharacterClasses | UnicodeProperties | LazyMode
)

// names lists every individually-reported bit in a stable order, used for
// both String() and diagnostics that need a human-readable feature name.
var names = []struct {
	bit  Set
	name string
}{
	{Lookaround, "lookaround"},
	{Variables, "variables"},
	{Ranges, "ranges"},
	{GraphemeCluster, "grapheme cluster"},
	{RelativeReferences, "relative references"},
	{NamedReferences, "named references"},
	{NumberedReferences, "numbered references"},
	{NamedCaptureGroups, "named capture groups"},
	{AtomicGroups, "atomic groups"},
	{Repetitions, "repetitions"},
	{CharacterClasses, "character classes"},
	{UnicodeProperties, "unicode properties"},
	{LazyMode, "lazy mode"},
}

// Has reports whether every bit in want is present in s.
func (s Set) Has(want Set) bool {
	return s&want == want
}

// With returns s with every bit in add also set.
func (s Set) With(add Set) Set {
	return s | add
}

// Name returns the human-readable name of a single feature bit, or "" if
// bit isn't a single recognized flag.
func Name(bit Set) string {
	for _, n := range names {
		if n.bit == bit {
			return n.name
		}
	}
	return ""
}

// Missing returns the names of every bit present in used but absent from
// allowed, in a stable order, for building a "feature X is disabled"
// diagnostic.
func Missing(used, allowed Set) []string {
	var out []string
	for _, n := range names {
		if used.Has(n.bit) && !allowed.Has(n.bit) {
			out = append(out, n.name)
		}
	}
	return out
}
