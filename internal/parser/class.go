package parser

import (
	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/diag"
	"github.com/pomsky-lang/pomsky-go/internal/span"
	"github.com/pomsky-lang/pomsky-go/internal/token"
)

// classShorthands maps a bare identifier used inside a class to the
// built-in shorthand it names.
var classShorthands = map[string]ast.ShorthandKind{
	"word":        ast.ShorthandWord,
	"digit":       ast.ShorthandDigit,
	"space":       ast.ShorthandSpace,
	"horiz_space": ast.ShorthandHorizSpace,
	"vert_space":  ast.ShorthandVertSpace,
}

// classCodepointAliases are spellings of the "any code point" shorthand
// accepted inside a class; only "codepoint" is current, "cp" is deprecated.
var classCodepointAliases = map[string]bool{"codepoint": true, "cp": true}

// asciiShorthands lists the ASCII-restricted class shorthands. Membership
// here, not the value, is what matters during parsing; the emitter owns
// their regex translation.
var asciiShorthands = map[string]bool{
	"ascii": true, "ascii_alpha": true, "ascii_alnum": true, "ascii_blank": true,
	"ascii_cntrl": true, "ascii_digit": true, "ascii_graph": true, "ascii_lower": true,
	"ascii_print": true, "ascii_punct": true, "ascii_space": true, "ascii_upper": true,
	"ascii_word": true, "ascii_xdigit": true,
}

func (p *Parser) parseClass() ast.Expr {
	open := p.next() // '['
	negated := false
	if p.at(token.Bang) {
		p.next()
		negated = true
	}

	var items []ast.ClassItem
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		items = append(items, p.parseClassItem()...)
	}
	closeTok, _ := p.expect(token.RBracket)
	sp := open.Span.Join(closeTok.Span)

	if len(items) == 0 {
		p.errorf(sp, "", "a character class cannot be empty")
	}

	return &ast.CharClass{Items: items, Negated: negated, Sp: sp}
}

// parseClassItem parses one element of a character class. It returns a
// slice because a multi-rune string literal such as "abc" stands for three
// single-character items, not one.
func (p *Parser) parseClassItem() []ast.ClassItem {
	t := p.peek()

	switch t.Kind {
	case token.Dot:
		p.next()
		p.warnf(diag.DeprecatedSyntax, t.Span, "use `![n]` instead of `[.]`",
			"`[.]` is a deprecated shorthand for \"any character except newline\"")
		return []ast.ClassItem{&ast.ClassShorthand{Kind: ast.ShorthandCodepoint, Sp: t.Span}}

	case token.StringLit:
		return p.parseClassStringOrRange()

	case token.CodePoint:
		return p.parseClassCodePointOrRange()

	case token.Bang:
		p.next()
		return []ast.ClassItem{p.parseClassNamedItem(true, p.peek())}

	case token.Ident:
		return []ast.ClassItem{p.parseClassNamedItem(false, t)}

	default:
		p.errorf(t.Span, "", "unexpected %s in character class", t.Kind)
		p.next()
		return nil
	}
}

// parseClassStringOrRange consumes a string literal. A single-rune literal
// followed by `-` and another single-rune bound forms a ClassRange;
// otherwise every rune in the literal becomes its own ClassChar.
func (p *Parser) parseClassStringOrRange() []ast.ClassItem {
	t := p.next()
	runes := []rune(t.Text)

	if len(runes) == 1 && p.at(token.Dash) {
		lo := runes[0]
		p.next() // '-'
		hi, hiSp, ok := p.expectClassBoundCodePoint()
		sp := t.Span.Join(hiSp)
		if !ok {
			return []ast.ClassItem{&ast.ClassChar{Rune: lo, Sp: t.Span}}
		}
		if hi < lo {
			p.errorf(sp, "", "character range is out of order: start must not be greater than end")
		}
		return []ast.ClassItem{&ast.ClassRange{Lo: lo, Hi: hi, Sp: sp}}
	}

	items := make([]ast.ClassItem, 0, len(runes))
	for _, r := range runes {
		items = append(items, &ast.ClassChar{Rune: r, Sp: t.Span})
	}
	return items
}

func (p *Parser) parseClassCodePointOrRange() []ast.ClassItem {
	t := p.next()
	lo, ok := parseCodePoint(t.Text)
	if !ok {
		p.errorf(t.Span, "", "code point %q is out of range", t.Text)
		return nil
	}
	if p.at(token.Dash) {
		p.next()
		hi, hiSp, ok2 := p.expectClassBoundCodePoint()
		sp := t.Span.Join(hiSp)
		if !ok2 {
			return []ast.ClassItem{&ast.ClassChar{Rune: lo, Sp: t.Span}}
		}
		if hi < lo {
			p.errorf(sp, "", "character range is out of order: start must not be greater than end")
		}
		return []ast.ClassItem{&ast.ClassRange{Lo: lo, Hi: hi, Sp: sp}}
	}
	return []ast.ClassItem{&ast.ClassChar{Rune: lo, Sp: t.Span}}
}

// expectClassBoundCodePoint consumes the upper bound of a class range: a
// single-rune string literal or a U+XXXX escape.
func (p *Parser) expectClassBoundCodePoint() (rune, span.Span, bool) {
	t := p.peek()
	switch t.Kind {
	case token.StringLit:
		p.next()
		runes := []rune(t.Text)
		if len(runes) != 1 {
			p.errorf(t.Span, "", "a range bound must be a single code point")
			return 0, t.Span, false
		}
		return runes[0], t.Span, true
	case token.CodePoint:
		p.next()
		r, ok := parseCodePoint(t.Text)
		if !ok {
			p.errorf(t.Span, "", "code point %q is out of range", t.Text)
			return 0, t.Span, false
		}
		return r, t.Span, true
	default:
		p.errorf(t.Span, "", "expected a code point after '-', found %s", t.Kind)
		return 0, t.Span, false
	}
}

// parseClassNamedItem parses a shorthand, ASCII shorthand, or Unicode
// property/category/script/block reference inside a class. name has
// already been peeked but not consumed.
func (p *Parser) parseClassNamedItem(negated bool, name token.Token) ast.ClassItem {
	p.next() // the identifier
	sp := name.Span

	if kind, ok := classShorthands[name.Text]; ok {
		return &ast.ClassShorthand{Kind: kind, Negated: negated, Sp: sp}
	}
	if classCodepointAliases[name.Text] {
		if name.Text == "cp" {
			p.warnf(diag.DeprecatedSyntax, sp, "use `codepoint` or `C` instead of `cp`", "`cp` is a deprecated alias for `codepoint`")
		}
		return &ast.ClassShorthand{Kind: ast.ShorthandCodepoint, Negated: negated, Sp: sp}
	}
	if asciiShorthands[name.Text] {
		return &ast.ClassAsciiShorthand{Kind: ast.AsciiShorthandKind(name.Text), Negated: negated, Sp: sp}
	}
	if name.Text == "script" || name.Text == "block" {
		kind := ast.PropScript
		if name.Text == "block" {
			kind = ast.PropBlock
		}
		if _, ok := p.expect(token.Colon); !ok {
			return &ast.ClassUnicodeProperty{Kind: kind, Negated: negated, Sp: sp}
		}
		valTok, ok := p.expect(token.Ident)
		if !ok {
			return &ast.ClassUnicodeProperty{Kind: kind, Negated: negated, Sp: sp}
		}
		return &ast.ClassUnicodeProperty{Kind: kind, Name: valTok.Text, Negated: negated, Sp: sp.Join(valTok.Span)}
	}

	// Anything else is treated as a bare Unicode general-category or
	// property name (e.g. [Greek], [L], [Letter]); the semantic pass
	// validates it against the flavor's supported set.
	return &ast.ClassUnicodeProperty{Kind: ast.PropGeneric, Name: name.Text, Negated: negated, Sp: sp}
}
