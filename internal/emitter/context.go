package emitter

import "github.com/pomsky-lang/pomsky-go/internal/ast"

// context is the precedence position a child expression is being emitted
// into, controlling whether it needs a non-capturing-group wrapper to
// avoid its outer operator binding incorrectly.
type context int

const (
	ctxTop                context = iota // top level, inside a group, or inside a lookaround
	ctxAlternationBranch                 // one side of a `|`
	ctxConcatElement                     // one element of a juxtaposed sequence
	ctxRepetitionOperand                 // the operand of `* + ? {n,m}`
	ctxLookaroundBody                    // alias of ctxTop, kept distinct for readability at call sites
)

// needsWrap reports whether e must be parenthesized (as a non-capturing
// group) to be emitted safely in ctx.
func needsWrap(ctx context, e ast.Expr) bool {
	switch ctx {
	case ctxAlternationBranch:
		switch e.(type) {
		case *ast.Alternation, *ast.Range:
			return true
		}
		return false
	case ctxConcatElement:
		switch e.(type) {
		case *ast.Alternation, *ast.Range:
			return true
		}
		return false
	case ctxRepetitionOperand:
		switch e.(type) {
		case *ast.Alternation, *ast.Concat, *ast.Repetition, *ast.Range:
			return true
		case *ast.Literal:
			// a quantifier after "ab" would bind to the last character only
			return len([]rune(e.(*ast.Literal).Text)) != 1
		}
		return false
	default:
		return false
	}
}
