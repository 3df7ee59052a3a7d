package parser

import (
	"strconv"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/diag"
	"github.com/pomsky-lang/pomsky-go/internal/span"
	"github.com/pomsky-lang/pomsky-go/internal/token"
)

// builtinBoundary maps a bare built-in identifier to the boundary it
// denotes outside a character class.
var builtinBoundary = map[string]ast.BoundaryKind{
	"Start": ast.BoundaryStartOfString,
	"End":   ast.BoundaryEndOfString,
}

func (p *Parser) parseRepeat() ast.Expr {
	atom := p.parseAtom()

	var lower uint32
	var upper *uint32
	suffixSp := p.peek().Span

	switch p.peek().Kind {
	case token.Star:
		p.next()
		lower, upper = 0, nil
	case token.Plus:
		p.next()
		lower, upper = 1, nil
	case token.Question:
		p.next()
		one := uint32(1)
		lower, upper = 0, &one
	case token.LBrace:
		p.next()
		lower = p.parseRepeatBound()
		switch p.peek().Kind {
		case token.Comma:
			p.next()
			if p.at(token.RBrace) {
				upper = nil
			} else {
				u := p.parseRepeatBound()
				upper = &u
			}
		default:
			u := lower
			upper = &u
		}
		p.expect(token.RBrace)
	default:
		return atom
	}

	mode := ast.RepeatDefault
	if p.atIdent("greedy") {
		p.next()
		mode = ast.RepeatGreedy
	} else if p.atIdent("lazy") {
		p.next()
		mode = ast.RepeatLazy
	}

	rep := &ast.Repetition{
		Inner: atom,
		Lower: lower,
		Upper: upper,
		Mode:  mode,
		Sp:    atom.Span().Join(suffixSp),
	}

	if p.at(token.Question) {
		stray := p.next()
		p.errorf(stray.Span, "wrap the repeated expression in parentheses to repeat it again",
			"a `?` directly following a repetition is ambiguous")
	}

	return rep
}

func (p *Parser) parseRepeatBound() uint32 {
	t, ok := p.expect(token.Number)
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(t.Text, 10, 32)
	if err != nil {
		p.errorf(t.Span, "", "repetition count %q is too large", t.Text)
		return 0
	}
	return uint32(n)
}

func (p *Parser) parseAtom() ast.Expr {
	t := p.peek()

	switch t.Kind {
	case token.StringLit:
		p.next()
		return &ast.Literal{Text: t.Text, Sp: t.Span}

	case token.CodePoint:
		p.next()
		r, ok := parseCodePoint(t.Text)
		if !ok {
			p.errorf(t.Span, "", "code point %q is out of range", t.Text)
			return &ast.Literal{Text: "", Sp: t.Span}
		}
		return &ast.Literal{Text: string(r), Sp: t.Span}

	case token.LBracket:
		return p.parseClass()

	case token.LParen:
		return p.parseParenGroup()

	case token.Colon:
		return p.parseCapturingGroup()

	case token.DoubleColon:
		return p.parseReference()

	case token.WordBoundary:
		p.next()
		return &ast.Boundary{Kind: ast.BoundaryWord, Sp: t.Span}

	case token.Bang:
		if p.peekAt(1).Kind == token.WordBoundary {
			p.next()
			w := p.next()
			return &ast.Boundary{Kind: ast.BoundaryNotWord, Sp: t.Span.Join(w.Span)}
		}
		p.errorf(t.Span, "", "unexpected '!'")
		p.next()
		return &ast.Literal{Text: "", Sp: t.Span}

	case token.StartBoundary:
		p.next()
		p.warnf(diag.DeprecatedSyntax, t.Span, "use `Start` instead of `<%`", "`<%` is a deprecated alias for `Start`")
		return &ast.Boundary{Kind: ast.BoundaryStartOfString, Sp: t.Span}

	case token.EndBoundary:
		p.next()
		p.warnf(diag.DeprecatedSyntax, t.Span, "use `End` instead of `%>`", "`%>` is a deprecated alias for `End`")
		return &ast.Boundary{Kind: ast.BoundaryEndOfString, Sp: t.Span}

	case token.Caret:
		p.next()
		p.errorf(t.Span, "use `Start` instead of `^`", "`^` is not pomsky syntax")
		return &ast.Boundary{Kind: ast.BoundaryStartOfString, Sp: t.Span}

	case token.Dollar:
		p.next()
		p.errorf(t.Span, "use `End` instead of `$`", "`$` is not pomsky syntax")
		return &ast.Boundary{Kind: ast.BoundaryEndOfString, Sp: t.Span}

	case token.Ident:
		return p.parseIdentAtom()
	}

	p.errorf(t.Span, "", "expected an expression, found %s", t.Kind)
	p.next()
	return &ast.Literal{Text: "", Sp: t.Span}
}

func (p *Parser) parseIdentAtom() ast.Expr {
	t := p.next()
	switch t.Text {
	case "Start", "End":
		return &ast.Boundary{Kind: builtinBoundary[t.Text], Sp: t.Span}
	case "Codepoint", "C":
		return &ast.CharClass{Items: []ast.ClassItem{&ast.ClassShorthand{Kind: ast.ShorthandCodepoint, Sp: t.Span}}, Sp: t.Span}
	case "Grapheme", "G":
		return &ast.Grapheme{Sp: t.Span}
	case "atomic":
		return p.parseAtomicGroup(t.Span)
	case "range":
		return p.parseRange(t.Span)
	case "greedy", "lazy", "base", "if", "else", "recursion":
		p.errorf(t.Span, "", "%q is a reserved keyword and cannot be used here", t.Text)
		return &ast.Variable{Name: t.Text, Sp: t.Span}
	default:
		return &ast.Variable{Name: t.Text, Sp: t.Span}
	}
}

func (p *Parser) enterGroup(sp span.Span) bool {
	p.depth++
	if p.depth > maxGroupDepth {
		p.bag.Errorf(diag.RecursionLimit, sp, "", "group nesting exceeds the limit of %d", maxGroupDepth)
		return false
	}
	return true
}

func (p *Parser) leaveGroup() { p.depth-- }

func (p *Parser) parseParenGroup() ast.Expr {
	open := p.next() // '('
	ok := p.enterGroup(open.Span)
	defer func() {
		if ok {
			p.leaveGroup()
		}
	}()

	var kind ast.LookaroundKind
	isLookaround := true
	switch p.peek().Kind {
	case token.LookaheadOpen:
		kind = ast.LookAhead
	case token.LookbehindOpen:
		kind = ast.LookBehind
	case token.NegLookaheadOpen:
		kind = ast.LookNegAhead
	case token.NegLookbehindOpen:
		kind = ast.LookNegBehind
	default:
		isLookaround = false
	}

	if isLookaround {
		p.next()
		inner := p.parseScope()
		close, _ := p.expect(token.RParen)
		return &ast.Lookaround{Kind: kind, Inner: inner, Sp: open.Span.Join(close.Span)}
	}

	if p.at(token.Question) {
		p.suggestRegexGroupSyntax(open)
	}

	content := p.parseScope()
	close, _ := p.expect(token.RParen)
	return &ast.Group{Kind: ast.GroupNonCapturing, Content: content, Sp: open.Span.Join(close.Span)}
}

// suggestRegexGroupSyntax reports a `(?` group opener, common in classical
// regex, with one fixed help text pointing at pomsky's named groups and
// lookbehinds instead of just reporting "unexpected '?'". It does not
// inspect which `(?...)` shape follows.
func (p *Parser) suggestRegexGroupSyntax(open token.Token) {
	q := p.peek()
	p.errorf(q.Span, "use `:name(...)` for a named group, or `<< expr` / `!<< expr` for a lookbehind",
		"`(?...)` is classical regex syntax, not pomsky")
}

func (p *Parser) parseAtomicGroup(kwSpan span.Span) ast.Expr {
	open, ok := p.expect(token.LParen)
	if !ok {
		return &ast.Literal{Text: "", Sp: kwSpan}
	}
	if !p.enterGroup(open.Span) {
		return &ast.Literal{Text: "", Sp: kwSpan}
	}
	defer p.leaveGroup()
	content := p.parseScope()
	close, _ := p.expect(token.RParen)
	return &ast.Group{Kind: ast.GroupAtomic, Content: content, Sp: kwSpan.Join(close.Span)}
}

func (p *Parser) parseCapturingGroup() ast.Expr {
	colon := p.next() // ':'
	name := ""
	if p.at(token.Ident) {
		name = p.next().Text
	}
	open, ok := p.expect(token.LParen)
	if !ok {
		return &ast.Literal{Text: "", Sp: colon.Span}
	}
	if !p.enterGroup(open.Span) {
		return &ast.Literal{Text: "", Sp: colon.Span}
	}
	defer p.leaveGroup()
	content := p.parseScope()
	close, _ := p.expect(token.RParen)
	return &ast.Group{Kind: ast.GroupCapturing, Name: name, Content: content, Sp: colon.Span.Join(close.Span)}
}

func (p *Parser) parseReference() ast.Expr {
	start := p.next() // '::'
	switch p.peek().Kind {
	case token.Number:
		n := p.next()
		val, err := strconv.ParseUint(n.Text, 10, 32)
		if err != nil {
			p.errorf(n.Span, "", "reference number %q is too large", n.Text)
		}
		return &ast.Reference{Target: ast.RefTarget{Kind: ast.RefNumber, Number: uint32(val)}, Sp: start.Span.Join(n.Span)}
	case token.Plus, token.Dash:
		sign := p.next()
		n, ok := p.expect(token.Number)
		if !ok {
			return &ast.Reference{Target: ast.RefTarget{Kind: ast.RefRelative, Relative: 1}, Sp: start.Span}
		}
		val, err := strconv.ParseInt(n.Text, 10, 32)
		if err != nil {
			p.errorf(n.Span, "", "relative reference offset %q is too large", n.Text)
		}
		if sign.Kind == token.Dash {
			val = -val
		}
		return &ast.Reference{Target: ast.RefTarget{Kind: ast.RefRelative, Relative: int32(val)}, Sp: start.Span.Join(n.Span)}
	case token.Ident:
		n := p.next()
		return &ast.Reference{Target: ast.RefTarget{Kind: ast.RefNamed, Name: n.Text}, Sp: start.Span.Join(n.Span)}
	default:
		t := p.peek()
		p.errorf(t.Span, "write a group number, name, or signed relative offset after `::`", "expected a reference target")
		return &ast.Reference{Target: ast.RefTarget{Kind: ast.RefNumber}, Sp: start.Span}
	}
}

func (p *Parser) parseRange(kwSpan span.Span) ast.Expr {
	loTok, ok := p.expect(token.StringLit)
	if !ok {
		return &ast.Literal{Text: "", Sp: kwSpan}
	}
	p.expect(token.Dash)
	hiTok, ok := p.expect(token.StringLit)
	if !ok {
		return &ast.Literal{Text: "", Sp: kwSpan}
	}

	base := uint8(10)
	end := hiTok.Span
	if p.atIdent("base") {
		p.next()
		n, ok := p.expect(token.Number)
		if ok {
			val, err := strconv.ParseUint(n.Text, 10, 8)
			if err != nil || val < 2 || val > 36 {
				p.errorf(n.Span, "base must be between 2 and 36", "invalid range base %q", n.Text)
			} else {
				base = uint8(val)
			}
			end = n.Span
		}
	}

	return &ast.Range{Start: loTok.Text, End: hiTok.Text, Base: base, MaxDigits: 0, Sp: kwSpan.Join(end)}
}

func parseCodePoint(hex string) (rune, bool) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || v > 0x10FFFF {
		return 0, false
	}
	return rune(v), true
}
