// Package dotnet implements the .NET regex flavor
// (System.Text.RegularExpressions): Perl-style named groups and atomic
// groups, no \X grapheme escape, and -- like Java -- lookbehind that
// allows a variable-width body rather than enforcing fixed width.
package dotnet

import (
	"fmt"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/emitter"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
)

func init() {
	flavor.Register(&DotNet{})
}

// DotNet implements flavor.Flavor.
type DotNet struct{}

var _ flavor.Flavor = (*DotNet)(nil)

func (d *DotNet) Name() string { return "dotnet" }

func (d *DotNet) Description() string {
	return ".NET regular expressions, as matched by System.Text.RegularExpressions"
}

func (d *DotNet) Emit(e ast.Expr, opts flavor.EmitOptions) (string, error) {
	return emitter.Emit(e, d, opts)
}

func (d *DotNet) SupportedFeatures() flavor.FeatureSet {
	return flavor.FeatureSet{
		Grapheme:                 false,
		VariableLengthLookbehind: true,
		UnicodeWordBoundary:      true,
		AtomicGroups:             true,
		NamedGroupTemplate:       "(?<%s>",
		StartAnchor:              `\A`,
		EndAnchor:                `\z`,
	}
}

func (d *DotNet) UnicodeProperty(name string) (string, bool) {
	return lookupProperty(name)
}

func (d *DotNet) KnownUnicodeProperties() []string {
	return knownProperties()
}

func (d *DotNet) ExtraMetachars() []rune {
	return nil
}

func (d *DotNet) HexEscape(r rune) string {
	if r <= 0xFFFF {
		return fmt.Sprintf(`\u%04X`, r)
	}
	// .NET regex has no \x{...} arbitrary-codepoint escape; above the BMP
	// it must be split into a UTF-16 surrogate pair.
	hi, lo := utf16SurrogatePair(r)
	return fmt.Sprintf(`\u%04X\u%04X`, hi, lo)
}

func utf16SurrogatePair(r rune) (hi, lo rune) {
	v := r - 0x10000
	return 0xD800 + (v >> 10), 0xDC00 + (v & 0x3FF)
}
