// Package pomsky is the public entry point for the pomsky-to-regex
// compiler: Parse produces a resolved AST and diagnostics, Compile lowers
// a resolved AST to a target flavor's regex syntax, and ParseAndCompile
// composes the two for the common case.
package pomsky

import (
	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/diag"
	"github.com/pomsky-lang/pomsky-go/internal/emitter"
	"github.com/pomsky-lang/pomsky-go/internal/features"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
	"github.com/pomsky-lang/pomsky-go/internal/parser"
	"github.com/pomsky-lang/pomsky-go/internal/sema"
)

// ParseOptions configures parsing and the semantic pass that follows it.
type ParseOptions struct {
	// AllowedFeatures restricts which optional constructs the source may
	// use. The zero value means features.All.
	AllowedFeatures features.Set
}

// CompileOptions configures lowering a resolved AST to regex syntax.
type CompileOptions struct {
	// Flavor is the regex dialect to target. It must not be nil.
	Flavor flavor.Flavor

	// MaxRangeDigits bounds how many decimal digits the range compiler
	// will expand a `range` expression to before erroring. Zero means
	// the default of 6 digits (see flavor.EmitOptions).
	MaxRangeDigits uint16
}

// Parse lexes, parses, and semantically resolves source against fl and
// opts, returning a fully-resolved AST (capture groups numbered,
// variables expanded, references resolved, flavor-compatibility checked)
// ready for Compile against that same fl. A non-nil bag may still hold
// warnings even when the returned Expr is non-nil; the Expr is nil only
// once the bag holds at least one error.
func Parse(source string, opts ParseOptions, fl flavor.Flavor) (ast.Expr, *diag.Bag) {
	root, bag := parser.Parse(source)
	if bag.HasErrors() {
		return nil, bag
	}
	resolved, semaBag := sema.Analyze(root, fl, sema.Options{AllowedFeatures: opts.AllowedFeatures})
	bag.Extend(semaBag)
	if semaBag.HasErrors() {
		return nil, bag
	}
	return resolved, bag
}

// Compile lowers a resolved AST (as returned by Parse) to opts.Flavor's
// regex syntax. e must already have passed the semantic pass; passing a
// raw, unresolved AST produces undefined output.
func Compile(e ast.Expr, opts CompileOptions) (string, error) {
	return emitter.Emit(e, opts.Flavor, flavor.EmitOptions{MaxRangeDigits: opts.MaxRangeDigits})
}

// ParseAndCompile parses source and, if it resolves without error, lowers
// it directly to opts.Flavor's regex syntax. The diagnostic bag is always
// returned (even on a compile-stage failure) so a caller can still surface
// any warnings the semantic pass accumulated.
func ParseAndCompile(source string, parseOpts ParseOptions, opts CompileOptions) (string, *diag.Bag, error) {
	resolved, bag := Parse(source, parseOpts, opts.Flavor)
	if resolved == nil {
		return "", bag, nil
	}
	out, err := Compile(resolved, opts)
	if err != nil {
		return "", bag, err
	}
	return out, bag, nil
}
