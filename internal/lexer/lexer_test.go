package lexer

import (
	"strings"
	"testing"

	"github.com/pomsky-lang/pomsky-go/internal/token"
)

func kinds(toks []token.Token) string {
	var sb strings.Builder
	for i, t := range toks {
		if t.Kind == token.EOF {
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Kind.String())
	}
	return sb.String()
}

func TestLexPunctuation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{``, ``},
		{`(`, `'('`},
		{`()`, `'(' ')'`},
		{`[a-z]`, `'[' identifier '-' identifier ']'`},
		{`'a'-'b'`, `string literal '-' string literal`},
		{`a|b`, `identifier '|' identifier`},
		{`a{1,3}`, `identifier '{' number ',' number '}'`},
		{`::1`, `'::' number`},
		{`::+1`, `'::' '+' number`},
		{`::-1`, `'::' '-' number`},
		{`<%`, `'<%'`},
		{`%>`, `'%>'`},
		{`%`, `'%'`},
		{`!%`, `'!' '%'`},
		{`<<`, `'<<'`},
		{`>>`, `'>>'`},
		{`!<<`, `'!<<'`},
		{`!>>`, `'!>>'`},
		{`U+41`, `code point literal`},
		{`# a comment\nlet x`, `identifier identifier`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, bag := Lex(strings.ReplaceAll(tt.input, `\n`, "\n"))
			if bag.HasErrors() {
				t.Fatalf("unexpected lex errors: %v", bag.Errors())
			}
			if got := kinds(toks); got != tt.want {
				t.Errorf("kinds = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLexStringLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`"a\"b"`, `a"b`},
		{`"a\\b"`, `a\b`},
		{`'a\"b'`, `a\"b`}, // single quotes have no escapes: backslash is literal
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, bag := Lex(tt.input)
			if bag.HasErrors() {
				t.Fatalf("unexpected lex errors: %v", bag.Errors())
			}
			if len(toks) < 1 || toks[0].Kind != token.StringLit {
				t.Fatalf("expected a string literal token, got %v", toks)
			}
			if toks[0].Text != tt.want {
				t.Errorf("text = %q, want %q", toks[0].Text, tt.want)
			}
		})
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, bag := Lex(`"abc`)
	if !bag.HasErrors() {
		t.Fatal("expected a lex error for an unterminated string")
	}
}

func TestLexCodePoint(t *testing.T) {
	toks, bag := Lex("U+1F600")
	if bag.HasErrors() {
		t.Fatalf("unexpected lex errors: %v", bag.Errors())
	}
	if toks[0].Kind != token.CodePoint || toks[0].Text != "1F600" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLexKeywordIsPlainIdent(t *testing.T) {
	toks, bag := Lex("let")
	if bag.HasErrors() {
		t.Fatalf("unexpected lex errors: %v", bag.Errors())
	}
	if toks[0].Kind != token.Ident || toks[0].Text != "let" {
		t.Fatalf("got %+v", toks[0])
	}
	if !token.IsKeyword(toks[0].Text) {
		t.Fatal("expected \"let\" to be recognized as a keyword downstream")
	}
}

func TestLexUTF8Safety(t *testing.T) {
	// malformed UTF-8 must never panic or slice mid-codepoint
	inputs := []string{
		string([]byte{0xff, 0xfe}),
		string([]byte{'"', 0xc0}),
		"valid é text",
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Lex(%q) panicked: %v", in, r)
				}
			}()
			Lex(in)
		}()
	}
}
