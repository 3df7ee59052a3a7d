package ruby

import (
	"testing"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
)

func emit(t *testing.T, e ast.Expr) string {
	t.Helper()
	out, err := (&Ruby{}).Emit(e, flavor.EmitOptions{})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	return out
}

func TestEmitLiteral(t *testing.T) {
	got := emit(t, &ast.Literal{Text: "a.b"})
	if want := `a\.b`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitNamedGroup(t *testing.T) {
	g := &ast.Group{Kind: ast.GroupCapturing, Name: "year", Content: &ast.Literal{Text: "x"}}
	if got, want := emit(t, g), `(?<year>x)`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitAtomicGroup(t *testing.T) {
	g := &ast.Group{Kind: ast.GroupAtomic, Content: &ast.Literal{Text: "x"}}
	if got, want := emit(t, g), `(?>x)`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitGrapheme(t *testing.T) {
	if got, want := emit(t, &ast.Grapheme{}), `\X`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitBoundaries(t *testing.T) {
	if got, want := emit(t, &ast.Boundary{Kind: ast.BoundaryStartOfString}), `\A`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := emit(t, &ast.Boundary{Kind: ast.BoundaryEndOfString}), `\z`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitHexEscape(t *testing.T) {
	got := emit(t, &ast.Literal{Text: "\x01"})
	if want := `\x{1}`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnicodeProperty(t *testing.T) {
	f := &Ruby{}
	if syntax, ok := f.UnicodeProperty("Greek"); !ok || syntax != `\p{Greek}` {
		t.Errorf("UnicodeProperty(Greek) = %q, %v", syntax, ok)
	}
	if _, ok := f.UnicodeProperty("Basic_Latin"); ok {
		t.Errorf("UnicodeProperty(Basic_Latin) unexpectedly ok: Ruby has no block syntax")
	}
}

func TestEmitAlternationInConcatWraps(t *testing.T) {
	alt := &ast.Alternation{Branches: []ast.Expr{&ast.Literal{Text: "a"}, &ast.Literal{Text: "b"}}}
	c := &ast.Concat{Items: []ast.Expr{&ast.Literal{Text: "x"}, alt, &ast.Literal{Text: "y"}}}
	if got, want := emit(t, c), `x(?:a|b)y`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
