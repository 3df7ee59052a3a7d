// Package ruby implements the Ruby (Onigmo engine) regex flavor: one of
// the three flavors with a native \X grapheme escape, PCRE-style named
// groups and atomic groups, but \A/\z anchors paired with a \b word
// boundary that Onigmo already treats as Unicode-aware by default.
package ruby

import (
	"fmt"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/emitter"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
)

func init() {
	flavor.Register(&Ruby{})
}

// Ruby implements flavor.Flavor.
type Ruby struct{}

var _ flavor.Flavor = (*Ruby)(nil)

func (r *Ruby) Name() string { return "ruby" }

func (r *Ruby) Description() string {
	return "Ruby regular expressions, as matched by the Onigmo engine"
}

func (r *Ruby) Emit(e ast.Expr, opts flavor.EmitOptions) (string, error) {
	return emitter.Emit(e, r, opts)
}

func (r *Ruby) SupportedFeatures() flavor.FeatureSet {
	return flavor.FeatureSet{
		Grapheme:                 true,
		VariableLengthLookbehind: false, // Onigmo requires a bounded lookbehind width
		UnicodeWordBoundary:      true,
		AtomicGroups:             true,
		NamedGroupTemplate:       "(?<%s>",
		StartAnchor:              `\A`,
		EndAnchor:                `\z`,
	}
}

func (r *Ruby) UnicodeProperty(name string) (string, bool) {
	return lookupProperty(name)
}

func (r *Ruby) KnownUnicodeProperties() []string {
	return knownProperties()
}

func (r *Ruby) ExtraMetachars() []rune {
	return nil
}

func (r *Ruby) HexEscape(ru rune) string {
	return fmt.Sprintf(`\x{%X}`, ru)
}
