// Package rust implements the Rust flavor, targeting the `regex` crate:
// a linear-time engine with no backtracking, hence no atomic groups, no
// lookaround at all beyond what this compiler already restricts to
// fixed-width contexts, and no \X grapheme escape (the crate leaves
// grapheme segmentation to a separate `unicode-segmentation` crate).
package rust

import (
	"fmt"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/emitter"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
)

func init() {
	flavor.Register(&Rust{})
}

// Rust implements flavor.Flavor.
type Rust struct{}

var _ flavor.Flavor = (*Rust)(nil)

func (r *Rust) Name() string { return "rust" }

func (r *Rust) Description() string {
	return "Rust regular expressions, as matched by the regex crate"
}

func (r *Rust) Emit(e ast.Expr, opts flavor.EmitOptions) (string, error) {
	return emitter.Emit(e, r, opts)
}

func (r *Rust) SupportedFeatures() flavor.FeatureSet {
	return flavor.FeatureSet{
		Grapheme:                 false,
		VariableLengthLookbehind: false,
		UnicodeWordBoundary:      true,
		AtomicGroups:             false, // no backtracking engine, nothing to make atomic
		NamedGroupTemplate:       "(?P<%s>",
		StartAnchor:              `\A`,
		EndAnchor:                `\z`,
	}
}

func (r *Rust) UnicodeProperty(name string) (string, bool) {
	return lookupProperty(name)
}

func (r *Rust) KnownUnicodeProperties() []string {
	return knownProperties()
}

func (r *Rust) ExtraMetachars() []rune {
	return nil
}

func (r *Rust) HexEscape(ru rune) string {
	return fmt.Sprintf(`\u{%X}`, ru)
}
