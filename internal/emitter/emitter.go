// Package emitter lowers a semantically-resolved pomsky AST into a target
// flavor's regex string. It is a precedence-aware recursive descent over
// internal/ast that threads an explicit parenthesization context
// (internal/emitter/context.go) through each call instead of recomputing
// it at every node.
package emitter

import (
	"fmt"
	"strings"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
	"github.com/pomsky-lang/pomsky-go/internal/rangecompile"
)

// Emit lowers e, which must already have passed the semantic pass (group
// numbers assigned, variables expanded, references resolved to Number),
// to fl's regex syntax.
func Emit(e ast.Expr, fl flavor.Flavor, opts flavor.EmitOptions) (string, error) {
	maxDigits := opts.MaxRangeDigits
	if maxDigits == 0 {
		maxDigits = 6
	}
	em := &emitter{fl: fl, opts: opts, maxDigits: maxDigits}
	var sb strings.Builder
	if err := em.write(&sb, e, ctxTop); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type emitter struct {
	fl        flavor.Flavor
	opts      flavor.EmitOptions
	maxDigits uint16
}

func (em *emitter) write(sb *strings.Builder, e ast.Expr, ctx context) error {
	if needsWrap(ctx, e) {
		sb.WriteString("(?:")
		if err := em.writeBare(sb, e); err != nil {
			return err
		}
		sb.WriteByte(')')
		return nil
	}
	return em.writeBare(sb, e)
}

func (em *emitter) writeBare(sb *strings.Builder, e ast.Expr) error {
	switch n := e.(type) {
	case *ast.Literal:
		em.writeLiteral(sb, n)
	case *ast.CharClass:
		return em.writeCharClass(sb, n)
	case *ast.Group:
		return em.writeGroup(sb, n)
	case *ast.Alternation:
		return em.writeAlternation(sb, n)
	case *ast.Concat:
		return em.writeConcat(sb, n)
	case *ast.Repetition:
		return em.writeRepetition(sb, n)
	case *ast.Lookaround:
		return em.writeLookaround(sb, n)
	case *ast.Boundary:
		em.writeBoundary(sb, n)
	case *ast.Reference:
		em.writeReference(sb, n)
	case *ast.Range:
		return em.writeRange(sb, n)
	case *ast.Grapheme:
		sb.WriteString(`\X`)
	default:
		return fmt.Errorf("emitter: %s node reached emission unresolved (sema bug)", e.Type())
	}
	return nil
}

func (em *emitter) writeAlternation(sb *strings.Builder, n *ast.Alternation) error {
	for i, branch := range n.Branches {
		if i > 0 {
			sb.WriteByte('|')
		}
		if err := em.write(sb, branch, ctxAlternationBranch); err != nil {
			return err
		}
	}
	return nil
}

func (em *emitter) writeConcat(sb *strings.Builder, n *ast.Concat) error {
	for _, item := range n.Items {
		if err := em.write(sb, item, ctxConcatElement); err != nil {
			return err
		}
	}
	return nil
}

func (em *emitter) writeGroup(sb *strings.Builder, g *ast.Group) error {
	switch g.Kind {
	case ast.GroupNonCapturing:
		sb.WriteString("(?:")
	case ast.GroupAtomic:
		if !em.fl.SupportedFeatures().AtomicGroups {
			return fmt.Errorf("emitter: flavor %q does not support atomic groups", em.fl.Name())
		}
		sb.WriteString("(?>")
	case ast.GroupCapturing:
		if g.Name != "" {
			sb.WriteString(fmt.Sprintf(em.fl.SupportedFeatures().NamedGroupTemplate, g.Name))
		} else {
			sb.WriteByte('(')
		}
	}
	if err := em.write(sb, g.Content, ctxTop); err != nil {
		return err
	}
	sb.WriteByte(')')
	return nil
}

func (em *emitter) writeRepetition(sb *strings.Builder, r *ast.Repetition) error {
	if err := em.write(sb, r.Inner, ctxRepetitionOperand); err != nil {
		return err
	}
	switch {
	case r.Upper == nil && r.Lower == 0:
		sb.WriteByte('*')
	case r.Upper == nil && r.Lower == 1:
		sb.WriteByte('+')
	case r.Upper != nil && *r.Upper == 1 && r.Lower == 0:
		sb.WriteByte('?')
	case r.Upper == nil:
		fmt.Fprintf(sb, "{%d,}", r.Lower)
	case *r.Upper == r.Lower:
		fmt.Fprintf(sb, "{%d}", r.Lower)
	default:
		fmt.Fprintf(sb, "{%d,%d}", r.Lower, *r.Upper)
	}
	if r.Mode == ast.RepeatLazy {
		sb.WriteByte('?')
	}
	return nil
}

func (em *emitter) writeLookaround(sb *strings.Builder, l *ast.Lookaround) error {
	switch l.Kind {
	case ast.LookAhead:
		sb.WriteString("(?=")
	case ast.LookBehind:
		sb.WriteString("(?<=")
	case ast.LookNegAhead:
		sb.WriteString("(?!")
	case ast.LookNegBehind:
		sb.WriteString("(?<!")
	}
	if err := em.write(sb, l.Inner, ctxLookaroundBody); err != nil {
		return err
	}
	sb.WriteByte(')')
	return nil
}

func (em *emitter) writeBoundary(sb *strings.Builder, b *ast.Boundary) {
	feat := em.fl.SupportedFeatures()
	switch b.Kind {
	case ast.BoundaryStartOfString:
		sb.WriteString(feat.StartAnchor)
	case ast.BoundaryEndOfString:
		sb.WriteString(feat.EndAnchor)
	case ast.BoundaryWord:
		sb.WriteString(`\b`)
	case ast.BoundaryNotWord:
		sb.WriteString(`\B`)
	}
}

func (em *emitter) writeReference(sb *strings.Builder, r *ast.Reference) {
	fmt.Fprintf(sb, `\%d`, r.Target.Number)
}

func (em *emitter) writeRange(sb *strings.Builder, r *ast.Range) error {
	frag, err := rangecompile.Compile(r.Start, r.End, r.Base, em.maxDigits)
	if err != nil {
		return err
	}
	sb.WriteString(frag)
	return nil
}
