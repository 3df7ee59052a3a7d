// Package java implements the Java regex flavor (java.util.regex.Pattern):
// Perl-style named groups and atomic groups, a native \X grapheme escape, and
// (unlike most classical engines) lookbehind that accepts a bounded but
// variable-width body rather than requiring fixed width.
package java

import (
	"fmt"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/emitter"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
)

func init() {
	flavor.Register(&Java{})
}

// Java implements flavor.Flavor.
type Java struct{}

var _ flavor.Flavor = (*Java)(nil)

func (j *Java) Name() string { return "java" }

func (j *Java) Description() string {
	return "Java regular expressions, as matched by java.util.regex.Pattern"
}

func (j *Java) Emit(e ast.Expr, opts flavor.EmitOptions) (string, error) {
	return emitter.Emit(e, j, opts)
}

func (j *Java) SupportedFeatures() flavor.FeatureSet {
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

func (j *Java) UnicodeProperty(name string) (string, bool) {
	return lookupProperty(name)
}

func (j *Java) KnownUnicodeProperties() []string {
	return knownProperties()
}

func (j *Java) ExtraMetachars() []rune {
	return nil
}

func (j *Java) HexEscape(r rune) string {
	return fmt.Sprintf(`\x{%X}`, r)
}
