package sema

import (
	"fmt"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/diag"
)

// checkFlavor walks the fully-resolved tree looking for constructs fl
// cannot express: Grapheme atoms outside PCRE/Java/Ruby, variable-width
// lookbehind bodies on flavors that require fixed width, atomic groups on
// flavors without them, unknown Unicode property names, and
// non-Unicode-aware word boundaries (a warning, not an error).
func (a *analyzer) checkFlavor(e ast.Expr) {
	feat := a.fl.SupportedFeatures()

	switch n := e.(type) {
	case *ast.Grapheme:
		if !feat.Grapheme {
			a.bag.Errorf(diag.UnsupportedFeature, n.Sp, "",
				"grapheme clusters are not supported by the %q flavor", a.fl.Name())
		}

	case *ast.Group:
		if n.Kind == ast.GroupAtomic && !feat.AtomicGroups {
			a.bag.Errorf(diag.UnsupportedFeature, n.Sp, "",
				"atomic groups are not supported by the %q flavor", a.fl.Name())
		}
		a.checkFlavor(n.Content)

	case *ast.Alternation:
		for _, b := range n.Branches {
			a.checkFlavor(b)
		}

	case *ast.Concat:
		for _, it := range n.Items {
			a.checkFlavor(it)
		}

	case *ast.Repetition:
		a.checkFlavor(n.Inner)

	case *ast.Lookaround:
		if n.Kind == ast.LookBehind || n.Kind == ast.LookNegBehind {
			if !feat.VariableLengthLookbehind && computeLength(n.Inner).kind == lenVariable {
				a.bag.Errorf(diag.LookbehindNotFixedWidth, n.Sp, "",
					"lookbehind body is not fixed-width, which the %q flavor requires", a.fl.Name())
			}
		}
		a.checkFlavor(n.Inner)

	case *ast.Boundary:
		if (n.Kind == ast.BoundaryWord || n.Kind == ast.BoundaryNotWord) && !feat.UnicodeWordBoundary {
			a.bag.Warnf(diag.NonUnicodeWordBoundary, n.Sp,
				"the word boundary will only consider ASCII word characters under this flavor",
				"%q's word boundary is not Unicode-aware", a.fl.Name())
		}

	case *ast.CharClass:
		for _, item := range n.Items {
			prop, ok := item.(*ast.ClassUnicodeProperty)
			if !ok {
				continue
			}
			if _, ok := a.fl.UnicodeProperty(prop.Name); !ok {
				help := ""
				if guess := suggestClosest(prop.Name, a.fl.KnownUnicodeProperties()); guess != "" {
					help = "did you mean " + guess + "?"
				} else if kind, desc, ok := suggestAsciiShorthand(prop.Name); ok {
					help = fmt.Sprintf("did you mean `%s` (%s)?", kind, desc)
				}
				a.bag.Errorf(diag.UnicodePropertyUnknown, prop.Sp, help,
					"%q is not a Unicode property, category, script, or block known to the %q flavor",
					prop.Name, a.fl.Name())
			}
		}
	}
}

type lengthKind int

const (
	lenFixed lengthKind = iota
	lenVariable
	lenUnknown
)

type length struct {
	kind lengthKind
	n    int
}

// computeLength summarizes e's match-width as Fixed(n), Variable, or
// Unknown, used only to decide whether a lookbehind body is fixed-width.
// Backreferences are Unknown: their
// matched width depends on what the referenced group captured at
// runtime, which this static pass cannot know.
func computeLength(e ast.Expr) length {
	switch n := e.(type) {
	case *ast.Literal:
		return length{kind: lenFixed, n: runeLen(n.Text)}

	case *ast.CharClass:
		return length{kind: lenFixed, n: 1}

	case *ast.Grapheme:
		return length{kind: lenVariable}

	case *ast.Group:
		return computeLength(n.Content)

	case *ast.Alternation:
		var acc length
		for i, b := range n.Branches {
			l := computeLength(b)
			if i == 0 {
				acc = l
				continue
			}
			acc = combineAlt(acc, l)
		}
		return acc

	case *ast.Concat:
		acc := length{kind: lenFixed, n: 0}
		for _, it := range n.Items {
			acc = combineSeq(acc, computeLength(it))
		}
		return acc

	case *ast.Repetition:
		inner := computeLength(n.Inner)
		if n.Upper != nil && *n.Upper == n.Lower {
			switch inner.kind {
			case lenFixed:
				return length{kind: lenFixed, n: inner.n * int(n.Lower)}
			case lenUnknown:
				return length{kind: lenUnknown}
			}
		}
		return length{kind: lenVariable}

	case *ast.Lookaround, *ast.Boundary:
		return length{kind: lenFixed, n: 0}

	case *ast.Reference:
		return length{kind: lenUnknown}

	case *ast.Range:
		return length{kind: lenVariable}

	default:
		return length{kind: lenUnknown}
	}
}

func combineSeq(a, b length) length {
	if a.kind == lenFixed && b.kind == lenFixed {
		return length{kind: lenFixed, n: a.n + b.n}
	}
	if a.kind == lenUnknown || b.kind == lenUnknown {
		return length{kind: lenUnknown}
	}
	return length{kind: lenVariable}
}

func combineAlt(a, b length) length {
	if a.kind == lenFixed && b.kind == lenFixed && a.n == b.n {
		return a
	}
	if a.kind == lenUnknown || b.kind == lenUnknown {
		return length{kind: lenUnknown}
	}
	return length{kind: lenVariable}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
