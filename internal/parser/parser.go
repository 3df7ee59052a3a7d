// Package parser implements pomsky's recursive-descent parser: token
// stream -> AST. The grammar's precedence, weakest to tightest, is
// Alternation -> Concatenation -> Repetition suffix -> Atom. Parser is a
// small mutable struct walking a pre-lexed token slice, with no
// generated-grammar step in between.
package parser

import (
	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/diag"
	"github.com/pomsky-lang/pomsky-go/internal/lexer"
	"github.com/pomsky-lang/pomsky-go/internal/span"
	"github.com/pomsky-lang/pomsky-go/internal/token"
)

// maxGroupDepth bounds parenthesized-group nesting to avoid stack
// exhaustion.
const maxGroupDepth = 127

// Parse tokenizes and parses source, returning the AST root and every
// diagnostic (lex and parse errors, deprecation warnings) produced along
// the way. A nil Expr is returned only when the bag contains at least one
// Error-severity diagnostic.
func Parse(source string) (ast.Expr, *diag.Bag) {
	toks, bag := lexer.Lex(source)
	p := &Parser{toks: toks, bag: bag}
	e := p.parseProgram()
	if bag.HasErrors() {
		return nil, bag
	}
	return e, bag
}

// Parser walks a pre-lexed token slice. It never panics on malformed
// input: every error path records a diagnostic and returns a best-effort
// placeholder node so the caller can keep recovering.
type Parser struct {
	toks  []token.Token
	pos   int
	bag   *diag.Bag
	depth int
}

func (p *Parser) peek() token.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return token.Token{Kind: token.EOF}
}

func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n < len(p.toks) {
		return p.toks[p.pos+n]
	}
	return token.Token{Kind: token.EOF}
}

func (p *Parser) next() token.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) at(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) atIdent(name string) bool {
	t := p.peek()
	return t.Kind == token.Ident && t.Text == name
}

func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.next(), true
	}
	t := p.peek()
	p.errorf(t.Span, "", "expected %s, found %s", k, t.Kind)
	return t, false
}

func (p *Parser) errorf(sp span.Span, help, format string, args ...any) {
	p.bag.Errorf(diag.ParseError, sp, help, format, args...)
}

func (p *Parser) warnf(kind diag.Kind, sp span.Span, help, format string, args ...any) {
	p.bag.Warnf(kind, sp, help, format, args...)
}

// parseProgram parses the whole source as one scope and requires every
// token to be consumed.
func (p *Parser) parseProgram() ast.Expr {
	e := p.parseScope()
	if !p.at(token.EOF) {
		t := p.peek()
		p.errorf(t.Span, "", "unexpected trailing %s", t.Kind)
	}
	return e
}

// parseScope parses an alternation, the unit of content inside a group or
// at the program's top level.
func (p *Parser) parseScope() ast.Expr {
	return p.parseAlternation()
}

func (p *Parser) parseAlternation() ast.Expr {
	start := p.peek().Span
	branches := []ast.Expr{p.parseConcatOrStmt()}
	for p.at(token.Pipe) {
		p.next()
		branches = append(branches, p.parseConcatOrStmt())
	}
	if len(branches) == 1 {
		return branches[0]
	}
	return &ast.Alternation{Branches: branches, Sp: joinSpans(start, branches)}
}

// parseConcatOrStmt parses a juxtaposed sequence of repetitions, with a
// `let`/`enable`/`disable` statement (if one starts the sequence, or
// appears partway through it) consuming the remainder of the sequence as
// its body.
func (p *Parser) parseConcatOrStmt() ast.Expr {
	if p.atStmtStart() {
		return p.parseStmt()
	}

	start := p.peek().Span
	items := []ast.Expr{p.parseRepeat()}
	for {
		if p.atStmtStart() {
			items = append(items, p.parseStmt())
			break
		}
		if !p.startsAtom() {
			break
		}
		items = append(items, p.parseRepeat())
	}
	if len(items) == 1 {
		return items[0]
	}
	return &ast.Concat{Items: items, Sp: joinSpans(start, items)}
}

func (p *Parser) atStmtStart() bool {
	return p.atIdent("let") || p.atIdent("enable") || p.atIdent("disable")
}

func (p *Parser) parseStmt() ast.Expr {
	switch {
	case p.atIdent("let"):
		return p.parseLet()
	default:
		return p.parseModifier()
	}
}

func (p *Parser) parseLet() ast.Expr {
	kw := p.next() // 'let'
	nameTok, ok := p.expect(token.Ident)
	if !ok {
		return &ast.Literal{Text: "", Sp: kw.Span}
	}
	if _, ok := p.expect(token.Eq); !ok {
		return &ast.Literal{Text: "", Sp: kw.Span}
	}
	value := p.parseAlternation()
	p.expect(token.Semi)
	body := p.parseConcatOrStmt()
	return &ast.LetIn{Name: nameTok.Text, Value: value, Body: body, Sp: kw.Span.Join(body.Span())}
}

func (p *Parser) parseModifier() ast.Expr {
	kw := p.next() // 'enable' or 'disable'
	on := kw.Text == "enable"
	flagTok, ok := p.expect(token.Ident)
	if !ok || flagTok.Text != "lazy" {
		if ok {
			p.errorf(flagTok.Span, "the only modifier flag is `lazy`", "unknown modifier flag %q", flagTok.Text)
		}
	}
	p.expect(token.Semi)
	body := p.parseConcatOrStmt()
	return &ast.Modifier{Flag: ast.ModifierLazy, On: on, Body: body, Sp: kw.Span.Join(body.Span())}
}

// startsAtom reports whether the current token can begin an atom, used to
// decide whether concatenation continues.
func (p *Parser) startsAtom() bool {
	switch p.peek().Kind {
	case token.StringLit, token.LBracket, token.LParen, token.Colon,
		token.CodePoint, token.DoubleColon, token.StartBoundary, token.EndBoundary,
		token.WordBoundary, token.Bang:
		return true
	case token.Ident:
		t := p.peek().Text
		return t != "let" && t != "enable" && t != "disable"
	}
	return false
}

func joinSpans(start span.Span, items []ast.Expr) span.Span {
	sp := start
	for _, it := range items {
		sp = sp.Join(it.Span())
	}
	return sp
}
