// Package unicodeprops is the name table shared by every flavor's
// UnicodeProperty/KnownUnicodeProperties implementation: the set of
// general categories, scripts, and blocks pomsky programs may reference
// is the same regardless of target; only the concrete \p{...} syntax (or
// its absence) differs per flavor.
package unicodeprops

import "fmt"

// Categories are the two-letter (and one-letter group) Unicode general
// category abbreviations every \p{}-capable flavor in this set accepts
// unchanged.
var Categories = []string{
	"L", "Lu", "Ll", "Lt", "Lm", "Lo",
	"M", "Mn", "Mc", "Me",
	"N", "Nd", "Nl", "No",
	"P", "Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po",
	"S", "Sm", "Sc", "Sk", "So",
	"Z", "Zs", "Zl", "Zp",
	"C", "Cc", "Cf", "Cs", "Co", "Cn",
}

// Scripts are the Unicode script names pomsky recognizes.
var Scripts = []string{
	"Latin", "Greek", "Cyrillic", "Armenian", "Hebrew", "Arabic", "Syriac",
	"Thaana", "Devanagari", "Bengali", "Gurmukhi", "Gujarati", "Oriya",
	"Tamil", "Telugu", "Kannada", "Malayalam", "Sinhala", "Thai", "Lao",
	"Tibetan", "Myanmar", "Georgian", "Hangul", "Ethiopic", "Cherokee",
	"Ogham", "Runic", "Khmer", "Mongolian", "Hiragana", "Katakana", "Bopomofo",
	"Han", "Yi", "Common",
}

// Blocks are the Unicode block names pomsky recognizes.
var Blocks = []string{
	"Basic_Latin", "Latin-1_Supplement", "Latin_Extended-A", "Latin_Extended-B",
	"Greek_and_Coptic", "Cyrillic", "Hebrew", "Arabic", "Devanagari",
	"Hiragana", "Katakana", "CJK_Unified_Ideographs", "Hangul_Syllables",
	"General_Punctuation", "Currency_Symbols", "Arrows", "Box_Drawing",
	"Emoticons", "Miscellaneous_Symbols_and_Pictographs",
}

// All concatenates every recognized name, in the order the semantic pass
// should search them for a "did you mean" suggestion.
func All() []string {
	out := make([]string, 0, len(Categories)+len(Scripts)+len(Blocks))
	out = append(out, Categories...)
	out = append(out, Scripts...)
	out = append(out, Blocks...)
	return out
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

// IsCategory, IsScript, and IsBlock classify a recognized name; at least
// one is true for any name in All(). Some names (e.g. Cyrillic, Hebrew)
// are both a script and a block; Lookup treats those as scripts.
func IsCategory(name string) bool { return contains(Categories, name) }
func IsScript(name string) bool   { return contains(Scripts, name) }
func IsBlock(name string) bool    { return contains(Blocks, name) }

// Template gives the fmt-style (one %s) syntax a flavor uses for each
// kind of property reference. An empty template means the flavor has no
// way to express that kind at all.
type Template struct {
	Category string
	Script   string
	Block    string
}

// Lookup classifies name and renders it using whichever of t's templates
// applies, reporting ok=false if name is unrecognized or the flavor has
// no syntax for that particular kind (e.g. PCRE has no block syntax).
func Lookup(name string, t Template) (string, bool) {
	switch {
	case IsCategory(name):
		if t.Category == "" {
			return "", false
		}
		return fmt.Sprintf(t.Category, name), true
	case IsScript(name):
		if t.Script == "" {
			return "", false
		}
		return fmt.Sprintf(t.Script, name), true
	case IsBlock(name):
		if t.Block == "" {
			return "", false
		}
		return fmt.Sprintf(t.Block, name), true
	}
	return "", false
}
