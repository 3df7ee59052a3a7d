// Package sema implements pomsky's semantic pass: variable resolution,
// capture numbering, reference resolution, feature-use accounting against
// a caller-supplied allow-mask, and flavor-compatibility checks. It runs
// as a single top-down traversal with an explicit scope stack, in the
// same "small mutable struct walking the tree" shape as
// internal/parser.Parser, rather than mutating the AST with environment
// back-pointers.
package sema

import (
	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/diag"
	"github.com/pomsky-lang/pomsky-go/internal/features"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
	"github.com/pomsky-lang/pomsky-go/internal/span"
)

// Options configures the semantic pass. The zero value is the permissive
// default: every feature allowed.
type Options struct {
	// AllowedFeatures restricts which optional constructs a program may
	// use; a used feature outside this mask is a DisabledFeature error.
	// Zero means features.All, matching the "permissive unless told
	// otherwise" stance the rest of the compiler takes (see
	// internal/features.Set's own doc comment on the All constant).
	AllowedFeatures features.Set
}

func (o Options) allowed() features.Set {
	if o.AllowedFeatures == 0 {
		return features.All
	}
	return o.AllowedFeatures
}

// pendingRef is a Reference seen during numbering, deferred until the
// total capture count (and name table) are known.
type pendingRef struct {
	ref        *ast.Reference
	countAtPos int
}

type analyzer struct {
	bag          *diag.Bag
	fl           flavor.Flavor
	allowed      features.Set
	used         features.Set
	featureSpans map[features.Set]span.Span

	capCount     int
	names        map[string]int
	pending      []pendingRef
}

// Analyze resolves every Variable/LetIn/Modifier node in root against fl
// and opts, numbers capturing groups in source order, resolves every
// Reference to a concrete group number, and checks the program's feature
// use against both opts.AllowedFeatures and fl's flavor-compatibility
// rules. It always runs to completion when root is well-formed, so a
// caller gets every diagnostic a single pass can produce rather than just
// the first: a non-nil Expr can still come paired with warnings, and a
// nil Expr is returned only once the bag holds an error.
func Analyze(root ast.Expr, fl flavor.Flavor, opts Options) (ast.Expr, *diag.Bag) {
	a := &analyzer{
		bag:          &diag.Bag{},
		fl:           fl,
		allowed:      opts.allowed(),
		featureSpans: make(map[features.Set]span.Span),
		names:        make(map[string]int),
	}

	resolved := a.resolveVars(root, map[string]ast.Expr{}, map[string]bool{})
	lowered := a.applyModifiers(resolved, false)

	a.numberAndResolve(lowered)
	a.resolvePending()

	a.checkAllowedFeatures()
	a.checkFlavor(lowered)

	if a.bag.HasErrors() {
		return nil, a.bag
	}
	return lowered, a.bag
}

func (a *analyzer) mark(bit features.Set, sp span.Span) {
	a.used |= bit
	if _, ok := a.featureSpans[bit]; !ok {
		a.featureSpans[bit] = sp
	}
}

// --- pass 1: variable resolution -------------------------------------------------

// resolveVars expands every Variable node to a deep copy of its bound
// value, rejecting unknown and self-referential ("cyclic") names.
// Modifier and the core recursive node kinds are rebuilt, so the
// resulting tree shares no Group node with the parser's output; leaf nodes
// (including Reference, whose Target a later pass sets in place) are
// returned as they are.
func (a *analyzer) resolveVars(e ast.Expr, scope map[string]ast.Expr, inProgress map[string]bool) ast.Expr {
	switch n := e.(type) {
	case *ast.Variable:
		val, ok := scope[n.Name]
		if !ok {
			a.bag.Errorf(diag.UnknownVariable, n.Sp, "", "unknown variable `%s`", n.Name)
			return &ast.Literal{Sp: n.Sp}
		}
		if inProgress[n.Name] {
			a.bag.Errorf(diag.CyclicVariable, n.Sp, "", "variable `%s` is defined in terms of itself", n.Name)
			return &ast.Literal{Sp: n.Sp}
		}
		a.mark(features.Variables, n.Sp)
		return cloneExpr(val)

	case *ast.LetIn:
		a.mark(features.Variables, n.Sp)
		nested := make(map[string]bool, len(inProgress)+1)
		for k, v := range inProgress {
			nested[k] = v
		}
		nested[n.Name] = true
		value := a.resolveVars(n.Value, scope, nested)

		childScope := make(map[string]ast.Expr, len(scope)+1)
		for k, v := range scope {
			childScope[k] = v
		}
		childScope[n.Name] = value
		return a.resolveVars(n.Body, childScope, inProgress)

	case *ast.Group:
		return &ast.Group{Kind: n.Kind, Name: n.Name, Content: a.resolveVars(n.Content, scope, inProgress), Sp: n.Sp}

	case *ast.Alternation:
		branches := make([]ast.Expr, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = a.resolveVars(b, scope, inProgress)
		}
		return &ast.Alternation{Branches: branches, Sp: n.Sp}

	case *ast.Concat:
		items := make([]ast.Expr, len(n.Items))
		for i, it := range n.Items {
			items[i] = a.resolveVars(it, scope, inProgress)
		}
		return &ast.Concat{Items: items, Sp: n.Sp}

	case *ast.Repetition:
		return &ast.Repetition{Inner: a.resolveVars(n.Inner, scope, inProgress), Lower: n.Lower, Upper: n.Upper, Mode: n.Mode, Sp: n.Sp}

	case *ast.Lookaround:
		return &ast.Lookaround{Kind: n.Kind, Inner: a.resolveVars(n.Inner, scope, inProgress), Sp: n.Sp}

	case *ast.Modifier:
		return &ast.Modifier{Flag: n.Flag, On: n.On, Body: a.resolveVars(n.Body, scope, inProgress), Sp: n.Sp}

	default:
		// Literal, CharClass, Boundary, Reference, Range, Grapheme: no
		// sub-expressions, nothing to resolve.
		return e
	}
}

// cloneExpr deep-copies e so that expanding the same variable at two use
// sites never lets later passes (capture numbering, reference
// resolution) mutate one copy's fields through the other's pointer.
func cloneExpr(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.Literal:
		return &ast.Literal{Text: n.Text, Sp: n.Sp}
	case *ast.CharClass:
		items := make([]ast.ClassItem, len(n.Items))
		copy(items, n.Items)
		return &ast.CharClass{Items: items, Negated: n.Negated, Sp: n.Sp}
	case *ast.Group:
		return &ast.Group{Kind: n.Kind, Name: n.Name, Content: cloneExpr(n.Content), Sp: n.Sp}
	case *ast.Alternation:
		branches := make([]ast.Expr, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = cloneExpr(b)
		}
		return &ast.Alternation{Branches: branches, Sp: n.Sp}
	case *ast.Concat:
		items := make([]ast.Expr, len(n.Items))
		for i, it := range n.Items {
			items[i] = cloneExpr(it)
		}
		return &ast.Concat{Items: items, Sp: n.Sp}
	case *ast.Repetition:
		return &ast.Repetition{Inner: cloneExpr(n.Inner), Lower: n.Lower, Upper: n.Upper, Mode: n.Mode, Sp: n.Sp}
	case *ast.Lookaround:
		return &ast.Lookaround{Kind: n.Kind, Inner: cloneExpr(n.Inner), Sp: n.Sp}
	case *ast.Boundary:
		return &ast.Boundary{Kind: n.Kind, Sp: n.Sp}
	case *ast.Reference:
		target := n.Target
		return &ast.Reference{Target: target, Sp: n.Sp}
	case *ast.Range:
		return &ast.Range{Start: n.Start, End: n.End, Base: n.Base, MaxDigits: n.MaxDigits, Sp: n.Sp}
	case *ast.Grapheme:
		return &ast.Grapheme{Sp: n.Sp}
	case *ast.Modifier:
		return &ast.Modifier{Flag: n.Flag, On: n.On, Body: cloneExpr(n.Body), Sp: n.Sp}
	default:
		return e
	}
}

// --- pass 2: modifier lowering ----------------------------------------------------

// applyModifiers implements "the most local modifier wins": it threads
// the current `enable/disable lazy;`
// default down the tree, rewrites every Repetition whose Mode is still
// RepeatDefault to the effective default, and strips Modifier nodes
// entirely (the emitter has no notion of them).
func (a *analyzer) applyModifiers(e ast.Expr, lazyDefault bool) ast.Expr {
	switch n := e.(type) {
	case *ast.Modifier:
		a.mark(features.LazyMode, n.Sp)
		return a.applyModifiers(n.Body, n.On)

	case *ast.Group:
		return &ast.Group{Kind: n.Kind, Name: n.Name, Content: a.applyModifiers(n.Content, lazyDefault), Sp: n.Sp}

	case *ast.Alternation:
		branches := make([]ast.Expr, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = a.applyModifiers(b, lazyDefault)
		}
		return &ast.Alternation{Branches: branches, Sp: n.Sp}

	case *ast.Concat:
		items := make([]ast.Expr, len(n.Items))
		for i, it := range n.Items {
			items[i] = a.applyModifiers(it, lazyDefault)
		}
		return &ast.Concat{Items: items, Sp: n.Sp}

	case *ast.Repetition:
		inner := a.applyModifiers(n.Inner, lazyDefault)
		mode := n.Mode
		switch mode {
		case ast.RepeatGreedy, ast.RepeatLazy:
			a.mark(features.LazyMode, n.Sp)
		case ast.RepeatDefault:
			if lazyDefault {
				mode = ast.RepeatLazy
			} else {
				mode = ast.RepeatGreedy
			}
		}
		return &ast.Repetition{Inner: inner, Lower: n.Lower, Upper: n.Upper, Mode: mode, Sp: n.Sp}

	case *ast.Lookaround:
		return &ast.Lookaround{Kind: n.Kind, Inner: a.applyModifiers(n.Inner, lazyDefault), Sp: n.Sp}

	default:
		return e
	}
}

// --- pass 3: capture numbering + reference collection ------------------------------

// numberAndResolve assigns Group.Number in source order and records every
// Reference for deferred resolution once the total count is known.
func (a *analyzer) numberAndResolve(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Group:
		if n.Kind == ast.GroupCapturing {
			a.capCount++
			n.Number = a.capCount
			if n.Name != "" {
				a.names[n.Name] = a.capCount
				a.mark(features.NamedCaptureGroups, n.Sp)
			}
		}
		if n.Kind == ast.GroupAtomic {
			a.mark(features.AtomicGroups, n.Sp)
		}
		a.numberAndResolve(n.Content)

	case *ast.Alternation:
		for _, b := range n.Branches {
			a.numberAndResolve(b)
		}

	case *ast.Concat:
		for _, it := range n.Items {
			a.numberAndResolve(it)
		}

	case *ast.Repetition:
		a.mark(features.Repetitions, n.Sp)
		a.numberAndResolve(n.Inner)

	case *ast.Lookaround:
		a.mark(features.Lookaround, n.Sp)
		a.numberAndResolve(n.Inner)

	case *ast.CharClass:
		a.mark(features.CharacterClasses, n.Sp)
		for _, item := range n.Items {
			if _, ok := item.(*ast.ClassUnicodeProperty); ok {
				a.mark(features.UnicodeProperties, n.Sp)
			}
		}

	case *ast.Range:
		a.mark(features.Ranges, n.Sp)

	case *ast.Grapheme:
		a.mark(features.GraphemeCluster, n.Sp)

	case *ast.Reference:
		switch n.Target.Kind {
		case ast.RefRelative:
			a.mark(features.RelativeReferences, n.Sp)
		case ast.RefNamed:
			a.mark(features.NamedReferences, n.Sp)
		case ast.RefNumber:
			a.mark(features.NumberedReferences, n.Sp)
		}
		a.pending = append(a.pending, pendingRef{ref: n, countAtPos: a.capCount})
	}
}

// resolvePending resolves every deferred Reference against the final
// capture count and name table, rewriting Named and Relative targets into
// Number.
func (a *analyzer) resolvePending() {
	for _, p := range a.pending {
		r := p.ref
		switch r.Target.Kind {
		case ast.RefNumber:
			if int(r.Target.Number) < 1 || int(r.Target.Number) > a.capCount {
				a.bag.Errorf(diag.UnknownReference, r.Sp, "",
					"no capturing group numbered %d (this pattern has %d)", r.Target.Number, a.capCount)
			}

		case ast.RefNamed:
			num, ok := a.names[r.Target.Name]
			if !ok {
				a.bag.Errorf(diag.UnknownReference, r.Sp, "", "no capturing group named %q", r.Target.Name)
				continue
			}
			r.Target = ast.RefTarget{Kind: ast.RefNumber, Number: uint32(num)}

		case ast.RefRelative:
			target := p.countAtPos + int(r.Target.Relative)
			if r.Target.Relative < 0 {
				target++
			}
			if target < 1 || target > a.capCount {
				a.bag.Errorf(diag.UnknownReference, r.Sp, "",
					"relative reference resolves to group %d, which does not exist (this pattern has %d)", target, a.capCount)
				continue
			}
			r.Target = ast.RefTarget{Kind: ast.RefNumber, Number: uint32(target)}
		}
	}
}

// --- feature allow-mask check -------------------------------------------------------

func (a *analyzer) checkAllowedFeatures() {
	for _, name := range features.Missing(a.used, a.allowed) {
		bit := bitForName(name)
		sp := a.featureSpans[bit]
		a.bag.Errorf(diag.DisabledFeature, sp, "", "the %q feature is disabled for this compilation", name)
	}
}

func bitForName(name string) features.Set {
	for _, bit := range []features.Set{
		features.Lookaround, features.Variables, features.Ranges, features.GraphemeCluster,
		features.RelativeReferences, features.NamedReferences, features.NumberedReferences,
		features.NamedCaptureGroups, features.AtomicGroups, features.Repetitions,
		features.CharacterClasses, features.UnicodeProperties, features.LazyMode,
	} {
		if features.Name(bit) == name {
			return bit
		}
	}
	return 0
}
