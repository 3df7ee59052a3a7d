package dotnet

import (
	"testing"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
)

func emit(t *testing.T, e ast.Expr) string {
	t.Helper()
	out, err := (&DotNet{}).Emit(e, flavor.EmitOptions{})
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

func TestEmitBoundaries(t *testing.T) {
	if got, want := emit(t, &ast.Boundary{Kind: ast.BoundaryStartOfString}), `\A`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := emit(t, &ast.Boundary{Kind: ast.BoundaryEndOfString}), `\z`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitHexEscapeBMP(t *testing.T) {
	got := emit(t, &ast.Literal{Text: "\x01"})
	if want := "\\u0001"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmitHexEscapeAboveBMP(t *testing.T) {
	got := emit(t, &ast.Literal{Text: string(rune(0xE0001))})
	if want := "\\uDB40\\uDC01"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnicodeProperty(t *testing.T) {
	f := &DotNet{}
	if syntax, ok := f.UnicodeProperty("Greek"); !ok || syntax != `\p{IsGreek}` {
		t.Errorf("UnicodeProperty(Greek) = %q, %v", syntax, ok)
	}
	if _, ok := f.UnicodeProperty("Basic_Latin"); ok {
		t.Errorf("UnicodeProperty(Basic_Latin) unexpectedly ok: .NET has no block syntax")
	}
}

func TestEmitAlternationInConcatWraps(t *testing.T) {
	alt := &ast.Alternation{Branches: []ast.Expr{&ast.Literal{Text: "a"}, &ast.Literal{Text: "b"}}}
	c := &ast.Concat{Items: []ast.Expr{&ast.Literal{Text: "x"}, alt, &ast.Literal{Text: "y"}}}
	if got, want := emit(t, c), `x(?:a|b)y`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDotNetFlavorRegistered(t *testing.T) {
	f, ok := flavor.Get("dotnet")
	if !ok {
		t.Fatal("DotNet flavor not registered")
	}
	if f.Name() != "dotnet" {
		t.Errorf("expected name 'dotnet', got '%s'", f.Name())
	}
}
