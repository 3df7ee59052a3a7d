// Package javascript implements the JavaScript (ECMAScript 2018+) regex
// flavor: `u`-flag Unicode property escapes, named groups, but no
// \A/\z anchors, no atomic groups, and lookbehind restricted to
// fixed-width by this compiler's conservative choice.
package javascript

import (
	"fmt"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/emitter"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
)

func init() {
	flavor.Register(&JavaScript{})
}

// JavaScript implements flavor.Flavor.
type JavaScript struct{}

var _ flavor.Flavor = (*JavaScript)(nil)

func (j *JavaScript) Name() string { return "javascript" }

func (j *JavaScript) Description() string {
	return "JavaScript (ECMAScript 2018+) regular expressions, compiled with the u flag in mind"
}

func (j *JavaScript) Emit(e ast.Expr, opts flavor.EmitOptions) (string, error) {
	return emitter.Emit(e, j, opts)
}

func (j *JavaScript) SupportedFeatures() flavor.FeatureSet {
	return flavor.FeatureSet{
		Grapheme:                 false, // no native \X
		VariableLengthLookbehind: false, // lookbehind bodies are checked for fixed width
		UnicodeWordBoundary:      false, // \b is always ASCII-only in JS
		AtomicGroups:             false,
		NamedGroupTemplate:       "(?<%s>",
		StartAnchor:              "^",
		EndAnchor:                "$",
	}
}

func (j *JavaScript) UnicodeProperty(name string) (string, bool) {
	return lookupProperty(name)
}

func (j *JavaScript) KnownUnicodeProperties() []string {
	return knownProperties()
}

func (j *JavaScript) ExtraMetachars() []rune {
	return nil
}

func (j *JavaScript) HexEscape(r rune) string {
	return fmt.Sprintf(`\u{%X}`, r)
}
