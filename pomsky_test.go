package pomsky

import (
	"strings"
	"testing"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
	"github.com/pomsky-lang/pomsky-go/internal/features"
	"github.com/pomsky-lang/pomsky-go/internal/flavor"
	"github.com/pomsky-lang/pomsky-go/internal/flavor/javascript"
	"github.com/pomsky-lang/pomsky-go/internal/flavor/pcre"
)

func TestParseAndCompileSimple(t *testing.T) {
	out, bag, err := ParseAndCompile(`'a' | 'b'+`, ParseOptions{}, CompileOptions{Flavor: &pcre.PCRE{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", bag.Errors())
	}
	if want := `a|b+`; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestParseAndCompileSyntaxError(t *testing.T) {
	out, bag, err := ParseAndCompile(`(`, ParseOptions{}, CompileOptions{Flavor: &pcre.PCRE{}})
	if err != nil {
		t.Fatalf("unexpected compile-stage error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty output on parse failure, got %q", out)
	}
	if !bag.HasErrors() {
		t.Fatal("expected a parse diagnostic")
	}
}

func TestParseAndCompileDisabledFeature(t *testing.T) {
	opts := ParseOptions{AllowedFeatures: features.All &^ features.Ranges}
	_, bag, err := ParseAndCompile(`range '0'-'255'`, opts, CompileOptions{Flavor: &pcre.PCRE{}})
	if err != nil {
		t.Fatalf("unexpected compile-stage error: %v", err)
	}
	if !bag.HasErrors() {
		t.Fatal("expected a disabled-feature diagnostic")
	}
}

func TestCompileFlavorMismatch(t *testing.T) {
	src := `Grapheme`
	resolved, bag := Parse(src, ParseOptions{}, &pcre.PCRE{})
	if bag.HasErrors() || resolved == nil {
		t.Fatalf("expected pcre to accept Grapheme, got errors: %v", bag.Errors())
	}

	_, badBag := Parse(src, ParseOptions{}, &javascript.JavaScript{})
	if !badBag.HasErrors() {
		t.Fatal("expected javascript to reject Grapheme")
	}
}

func TestParseReturnsWarningsAlongsideResult(t *testing.T) {
	resolved, bag := Parse(`<% 'a'`, ParseOptions{}, &pcre.PCRE{})
	if bag == nil {
		t.Fatal("expected a non-nil diagnostic bag")
	}
	if resolved == nil {
		t.Fatalf("expected a resolved AST, got errors: %v", bag.Errors())
	}
	if len(bag.Warnings()) == 0 {
		t.Fatal("expected the deprecated `<%` warning alongside the result")
	}
}

func TestCompileUnresolvedNode(t *testing.T) {
	out, err := Compile(&ast.Variable{Name: "x"}, CompileOptions{Flavor: &pcre.PCRE{}})
	if err == nil {
		t.Fatalf("expected an error for an unresolved variable node, got %q", out)
	}
}

func TestFlavorRegistryIsPopulated(t *testing.T) {
	if _, ok := flavor.Get("pcre"); !ok {
		t.Fatal("pcre flavor should be registered by its package init")
	}
	if !strings.Contains(strings.Join(flavor.List(), ","), "pcre") {
		t.Fatal("pcre missing from flavor.List()")
	}
}
