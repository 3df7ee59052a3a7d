// Package flavor defines the interface every regex target implements and
// a registry for discovering them by name.
package flavor

import (
	"sort"
	"sync"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
)

// Flavor lowers a resolved pomsky AST into one target regex dialect's
// concrete syntax.
type Flavor interface {
	// Name is the flavor identifier used for the CLI's -f/--flavor flag
	// and in diagnostics (e.g. "pcre", "javascript").
	Name() string

	// Description is a human-readable one-liner shown in --help output.
	Description() string

	// Emit lowers e to this flavor's regex string. e must already have
	// passed through the semantic pass (group numbers assigned, variables
	// expanded, references resolved to Number).
	Emit(e ast.Expr, opts EmitOptions) (string, error)

	// SupportedFeatures describes this flavor's capabilities, consulted by
	// the semantic pass's flavor-compatibility checks.
	SupportedFeatures() FeatureSet

	// UnicodeProperty reports whether name is a recognized Unicode
	// general-category, script, or block name for this flavor, and if so
	// the concrete syntax fragment used to express it (e.g. "Greek" ->
	// `\p{Greek}` under PCRE). ok is false for unrecognized names, letting
	// the semantic pass build a "did you mean" suggestion against
	// KnownUnicodeProperties.
	UnicodeProperty(name string) (syntax string, ok bool)

	// KnownUnicodeProperties lists every name UnicodeProperty recognizes,
	// for suggestion-matching and for tests.
	KnownUnicodeProperties() []string

	// ExtraMetachars lists characters, beyond the shared baseline escape
	// set `. ^ $ | ? * + ( ) [ ] { } \`, that this flavor also treats
	// specially in a literal and so must be backslash-escaped.
	ExtraMetachars() []rune

	// HexEscape renders a non-printable code point in this flavor's hex
	// escape syntax, e.g. `\x{1F600}` for PCRE/Java/Ruby, `\u{1F600}` for
	// JavaScript/Rust, a UTF-16 surrogate pair written as two `\uXXXX` for
	// .NET outside the BMP, `\u0001`/`\U0001F600` for Python depending on
	// whether r fits in 16 bits.
	HexEscape(r rune) string
}

// EmitOptions carries per-call emitter configuration. MaxRangeDigits
// bounds the width the range compiler will expand to; zero means the
// emitter's default of 6 digits, the same for every flavor.
type EmitOptions struct {
	MaxRangeDigits uint16
}

// FeatureSet records the handful of flavor-compatibility facts the
// semantic pass needs to check. It is deliberately narrower than
// "everything this regex engine can do" — pomsky has no
// surface syntax for most classical-regex flags, so there is nothing to
// query for them.
type FeatureSet struct {
	// Grapheme reports whether the flavor has a native extended-grapheme
	// construct (\X). Grapheme atoms are only allowed under flavors where
	// this is true (PCRE, Java, Ruby).
	Grapheme bool

	// VariableLengthLookbehind reports whether the flavor's lookbehind
	// accepts a variable-width pattern. Where false, a Variable-length
	// child inside a Lookbehind/NegBehind is a LookbehindNotFixedWidth
	// error.
	VariableLengthLookbehind bool

	// UnicodeWordBoundary reports whether the flavor's native word
	// boundary (\b equivalent) is Unicode-aware. JavaScript is the one
	// flavor in this set where it is not; using `%`/`!%` there is a
	// NonUnicodeWordBoundary warning, not an error.
	UnicodeWordBoundary bool

	// AtomicGroups reports whether the flavor can express atomic groups
	// natively. Most flavors here can (PCRE (?>...), Java (?>...), .NET
	// (?>...), Python via its `regex` module, Ruby (?>...)); JavaScript and
	// Rust cannot, and emitting an atomic group for either is an
	// UnsupportedFeature error.
	AtomicGroups bool

	// NamedGroupTemplate is a fmt-style template with one %s (the group
	// name) producing this flavor's named-capturing-group syntax:
	// "(?P<%s>" for Python and Rust, "(?<%s>" for everything else in this
	// set.
	// Consumed by the emitter, not the semantic pass.
	NamedGroupTemplate string

	// StartAnchor and EndAnchor are the concrete regex snippets for
	// start-of-string and end-of-string (not start/end-of-line; pomsky
	// never exposes a multiline flag). JavaScript has no \A/\z, so it uses
	// bare ^/$; every other flavor here starts with \A, and ends with \z
	// except Python, which has no \z and uses \Z.
	StartAnchor string
	EndAnchor   string
}

var (
	registry     = make(map[string]Flavor)
	registryLock sync.RWMutex
)

// Register adds a flavor to the registry, replacing any previous flavor of
// the same name. Flavor packages call this from an init function.
func Register(f Flavor) {
	registryLock.Lock()
	defer registryLock.Unlock()
	registry[f.Name()] = f
}

// Get retrieves a flavor by name.
func Get(name string) (Flavor, bool) {
	registryLock.RLock()
	defer registryLock.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// List returns every registered flavor name in sorted order.
func List() []string {
	registryLock.RLock()
	defer registryLock.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns a copy of the registry.
func All() map[string]Flavor {
	registryLock.RLock()
	defer registryLock.RUnlock()
	result := make(map[string]Flavor, len(registry))
	for name, f := range registry {
		result[name] = f
	}
	return result
}

// Count returns the number of registered flavors.
func Count() int {
	registryLock.RLock()
	defer registryLock.RUnlock()
	return len(registry)
}
