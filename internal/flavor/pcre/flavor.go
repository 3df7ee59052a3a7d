// Package pcre implements the PCRE2 regex flavor: Perl-compatible syntax
// as used by PHP, the `pcre2` C library, and most "classic" regex
// engines. It is the flavor with the fewest restrictions, so most
// flavor-compatibility checks end up being no-ops for it.
package pcre

import (
	"fmt"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/emitter"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
)

func init() {
	flavor.Register(&PCRE{})
}

// PCRE implements flavor.Flavor.
type PCRE struct{}

func (f *PCRE) Name() string { return "pcre" }

func (f *PCRE) Description() string {
	return "PCRE2 syntax, as used by PHP, Perl, and the pcre2 C library"
}

func (f *PCRE) Emit(e ast.Expr, opts flavor.EmitOptions) (string, error) {
	return emitter.Emit(e, f, opts)
}

func (f *PCRE) SupportedFeatures() flavor.FeatureSet {
	return flavor.FeatureSet{
		Grapheme:                 true,
		VariableLengthLookbehind: true,
		UnicodeWordBoundary:      true,
		AtomicGroups:             true,
		NamedGroupTemplate:       "(?<%s>",
		StartAnchor:              `\A`,
		EndAnchor:                `\z`,
	}
}

func (f *PCRE) UnicodeProperty(name string) (string, bool) {
	return lookupProperty(name)
}

func (f *PCRE) KnownUnicodeProperties() []string {
	return knownProperties()
}

func (f *PCRE) ExtraMetachars() []rune {
	return nil
}

func (f *PCRE) HexEscape(r rune) string {
	return fmt.Sprintf(`\x{%X}`, r)
}
