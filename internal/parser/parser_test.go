package parser

import (
	"testing"

	"github.com/pomsky-lang/pomsky-go/internal/ast"
)

func mustParse(t *testing.T, src string) ast.Expr {
	t.Helper()
	e, bag := Parse(src)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %v", src, bag.Errors())
	}
	return e
}

func TestParseLiteralConcat(t *testing.T) {
	e := mustParse(t, `"a" "b"`)
	c, ok := e.(*ast.Concat)
	if !ok || len(c.Items) != 2 {
		t.Fatalf("got %#v", e)
	}
}

func TestParseAlternation(t *testing.T) {
	e := mustParse(t, `"a" | "b" | "c"`)
	a, ok := e.(*ast.Alternation)
	if !ok || len(a.Branches) != 3 {
		t.Fatalf("got %#v", e)
	}
}

func TestParseRepetition(t *testing.T) {
	tests := []struct {
		src   string
		lower uint32
		upper *uint32
	}{
		{`"a"*`, 0, nil},
		{`"a"+`, 1, nil},
		{`"a"?`, 0, uptr(1)},
		{`"a"{2}`, 2, uptr(2)},
		{`"a"{2,}`, 2, nil},
		{`"a"{2,5}`, 2, uptr(5)},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e := mustParse(t, tt.src)
			r, ok := e.(*ast.Repetition)
			if !ok {
				t.Fatalf("got %#v", e)
			}
			if r.Lower != tt.lower {
				t.Errorf("lower = %d, want %d", r.Lower, tt.lower)
			}
			if (r.Upper == nil) != (tt.upper == nil) {
				t.Fatalf("upper nilness mismatch: got %v want %v", r.Upper, tt.upper)
			}
			if r.Upper != nil && *r.Upper != *tt.upper {
				t.Errorf("upper = %d, want %d", *r.Upper, *tt.upper)
			}
		})
	}
}

func TestParseRepetitionModeSuffix(t *testing.T) {
	e := mustParse(t, `"a"* lazy`)
	r := e.(*ast.Repetition)
	if r.Mode != ast.RepeatLazy {
		t.Fatalf("mode = %v, want lazy", r.Mode)
	}
}

func TestParseStrayQuestionAfterRepetitionErrors(t *testing.T) {
	_, bag := Parse(`"a"+?`)
	if !bag.HasErrors() {
		t.Fatal("expected a parse error for `+?` without parentheses")
	}
}

func TestParseGroups(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.GroupKind
		name string
	}{
		{`("a")`, ast.GroupNonCapturing, ""},
		{`:("a")`, ast.GroupCapturing, ""},
		{`:foo("a")`, ast.GroupCapturing, "foo"},
		{`atomic("a")`, ast.GroupAtomic, ""},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e := mustParse(t, tt.src)
			g, ok := e.(*ast.Group)
			if !ok {
				t.Fatalf("got %#v", e)
			}
			if g.Kind != tt.kind || g.Name != tt.name {
				t.Errorf("got kind=%v name=%q, want kind=%v name=%q", g.Kind, g.Name, tt.kind, tt.name)
			}
		})
	}
}

func TestParseLookaround(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.LookaroundKind
	}{
		{`(>> "a")`, ast.LookAhead},
		{`(<< "a")`, ast.LookBehind},
		{`(!>> "a")`, ast.LookNegAhead},
		{`(!<< "a")`, ast.LookNegBehind},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e := mustParse(t, tt.src)
			l, ok := e.(*ast.Lookaround)
			if !ok || l.Kind != tt.kind {
				t.Fatalf("got %#v", e)
			}
		})
	}
}

func TestParseBoundaries(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.BoundaryKind
	}{
		{`Start`, ast.BoundaryStartOfString},
		{`End`, ast.BoundaryEndOfString},
		{`%`, ast.BoundaryWord},
		{`!%`, ast.BoundaryNotWord},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e := mustParse(t, tt.src)
			b, ok := e.(*ast.Boundary)
			if !ok || b.Kind != tt.kind {
				t.Fatalf("got %#v", e)
			}
		})
	}
}

func TestParseDeprecatedBoundaryAliasesWarn(t *testing.T) {
	_, bag := Parse(`<% "a" %>`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Errors())
	}
	if len(bag.Warnings()) != 2 {
		t.Fatalf("expected 2 deprecation warnings, got %d", len(bag.Warnings()))
	}
}

func TestParseCaretDollarSuggestCorrection(t *testing.T) {
	_, bag := Parse(`^`)
	if !bag.HasErrors() {
		t.Fatal("expected an error for bare ^")
	}
	if bag.Errors()[0].Help == "" {
		t.Fatal("expected a suggested correction")
	}
}

func TestParseReferences(t *testing.T) {
	tests := []struct {
		src    string
		kind   ast.RefTargetKind
		number uint32
		rel    int32
		name   string
	}{
		{`::1`, ast.RefNumber, 1, 0, ""},
		{`::+2`, ast.RefRelative, 0, 2, ""},
		{`::-1`, ast.RefRelative, 0, -1, ""},
		{`::foo`, ast.RefNamed, 0, 0, "foo"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e := mustParse(t, tt.src)
			r, ok := e.(*ast.Reference)
			if !ok {
				t.Fatalf("got %#v", e)
			}
			if r.Target.Kind != tt.kind || r.Target.Number != tt.number || r.Target.Relative != tt.rel || r.Target.Name != tt.name {
				t.Errorf("got %+v", r.Target)
			}
		})
	}
}

func TestParseRange(t *testing.T) {
	e := mustParse(t, `range '0'-'255'`)
	r, ok := e.(*ast.Range)
	if !ok {
		t.Fatalf("got %#v", e)
	}
	if r.Start != "0" || r.End != "255" || r.Base != 10 {
		t.Errorf("got %+v", r)
	}
}

func TestParseRangeWithBase(t *testing.T) {
	e := mustParse(t, `range '0'-'ff' base 16`)
	r := e.(*ast.Range)
	if r.Base != 16 {
		t.Errorf("base = %d, want 16", r.Base)
	}
}

func TestParseLetIn(t *testing.T) {
	e := mustParse(t, `let x = "a"; x x`)
	l, ok := e.(*ast.LetIn)
	if !ok || l.Name != "x" {
		t.Fatalf("got %#v", e)
	}
	if _, ok := l.Value.(*ast.Literal); !ok {
		t.Fatalf("value = %#v", l.Value)
	}
	if _, ok := l.Body.(*ast.Concat); !ok {
		t.Fatalf("body = %#v", l.Body)
	}
}

func TestParseModifier(t *testing.T) {
	e := mustParse(t, `enable lazy; "a"*`)
	m, ok := e.(*ast.Modifier)
	if !ok || !m.On || m.Flag != ast.ModifierLazy {
		t.Fatalf("got %#v", e)
	}
}

func TestParseCharClass(t *testing.T) {
	e := mustParse(t, `['a'-'z' digit "_"]`)
	c, ok := e.(*ast.CharClass)
	if !ok || len(c.Items) != 3 {
		t.Fatalf("got %#v", e)
	}
	if _, ok := c.Items[0].(*ast.ClassRange); !ok {
		t.Errorf("item 0 = %#v", c.Items[0])
	}
	if _, ok := c.Items[1].(*ast.ClassShorthand); !ok {
		t.Errorf("item 1 = %#v", c.Items[1])
	}
	if _, ok := c.Items[2].(*ast.ClassChar); !ok {
		t.Errorf("item 2 = %#v", c.Items[2])
	}
}

func TestParseCharClassNegated(t *testing.T) {
	e := mustParse(t, `[!digit]`)
	c := e.(*ast.CharClass)
	if c.Negated {
		t.Fatal("class-level negation should not be set by an item-level `!`")
	}
	sh := c.Items[0].(*ast.ClassShorthand)
	if !sh.Negated {
		t.Fatal("expected the digit shorthand itself to be negated")
	}
}

func TestParseCharClassMultiRuneString(t *testing.T) {
	e := mustParse(t, `["abc"]`)
	c := e.(*ast.CharClass)
	if len(c.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(c.Items))
	}
}

func TestParseGroupDepthLimit(t *testing.T) {
	src := ""
	for i := 0; i < maxGroupDepth+5; i++ {
		src += "("
	}
	src += `"a"`
	for i := 0; i < maxGroupDepth+5; i++ {
		src += ")"
	}
	_, bag := Parse(src)
	if !bag.HasErrors() {
		t.Fatal("expected a recursion-limit error")
	}
}

func uptr(n uint32) *uint32 { return &n }
