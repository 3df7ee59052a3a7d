// Package python implements the Python regex flavor, targeting the
// third-party `regex` module rather than the stdlib `re` module, for the
// atomic groups `regex` adds behind a drop-in-compatible API. Lookbehind
// bodies are still held to a fixed width under this flavor. Named groups use `(?P<name>...)`, the one syntax `re` and
// `regex` share with no Perl-style `(?<name>...)` alternative.
package python

import (
	"fmt"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/emitter"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
)

func init() {
	flavor.Register(&Python{})
}

// Python implements flavor.Flavor.
type Python struct{}

var _ flavor.Flavor = (*Python)(nil)

func (p *Python) Name() string { return "python" }

func (p *Python) Description() string {
	return "Python regular expressions, targeting the third-party regex module"
}

func (p *Python) Emit(e ast.Expr, opts flavor.EmitOptions) (string, error) {
	return emitter.Emit(e, p, opts)
}

func (p *Python) SupportedFeatures() flavor.FeatureSet {
	return flavor.FeatureSet{
		Grapheme:                 false, // neither re nor regex has \X
		VariableLengthLookbehind: false, // regex still requires a bounded width
		UnicodeWordBoundary:      true,
		AtomicGroups:             true, // regex module's (?>...)
		NamedGroupTemplate:       "(?P<%s>",
		StartAnchor:              `\A`,
		EndAnchor:                `\Z`, // Python has no \z; \Z allows a trailing newline
	}
}

func (p *Python) UnicodeProperty(name string) (string, bool) {
	return lookupProperty(name)
}

func (p *Python) KnownUnicodeProperties() []string {
	return knownProperties()
}

func (p *Python) ExtraMetachars() []rune {
	return nil
}

func (p *Python) HexEscape(r rune) string {
	if r <= 0xFFFF {
		return fmt.Sprintf(`\u%04X`, r)
	}
	return fmt.Sprintf(`\U%08X`, r)
}
