// Package ast defines the Abstract Syntax Tree nodes produced by
// internal/parser and consumed by internal/sema and internal/emitter.
package ast

import "github.com/pomsky-lang/pomsky-go/internal/span"

// Node is the interface every AST node implements.
type Node interface {
	Type() string
	Span() span.Span
}

// Expr is any pomsky expression node. It is an alias for Node narrowed to
// the set of types that can appear as a sub-expression; every concrete
// type below satisfies it.
type Expr = Node

// Literal matches a UTF-8 string verbatim.
type Literal struct {
	Text string
	Sp   span.Span
}

func (l *Literal) Type() string    { return "literal" }
func (l *Literal) Span() span.Span { return l.Sp }

// CharClass is a union or negation of class items: [a-z "_" digit].
type CharClass struct {
	Items   []ClassItem
	Negated bool
	Sp      span.Span
}

func (c *CharClass) Type() string    { return "char_class" }
func (c *CharClass) Span() span.Span { return c.Sp }

// ClassItem is one member of a CharClass: a single code point, a
// code-point range, a shorthand, or a Unicode property/category/script/
// block reference.
type ClassItem interface {
	Node
	isClassItem()
}

// ClassChar is a single code point inside a character class.
type ClassChar struct {
	Rune rune
	Sp   span.Span
}

func (c *ClassChar) Type() string    { return "class_char" }
func (c *ClassChar) Span() span.Span { return c.Sp }
func (c *ClassChar) isClassItem()    {}

// ClassRange is an inclusive code-point range 'a'-'b' inside a class. Both
// ends are single code points with Lo <= Hi.
type ClassRange struct {
	Lo, Hi rune
	Sp     span.Span
}

func (c *ClassRange) Type() string    { return "class_range" }
func (c *ClassRange) Span() span.Span { return c.Sp }
func (c *ClassRange) isClassItem()    {}

// ShorthandKind names one of the built-in class shorthands.
type ShorthandKind string

const (
	ShorthandWord       ShorthandKind = "word"
	ShorthandDigit      ShorthandKind = "digit"
	ShorthandSpace      ShorthandKind = "space"
	ShorthandHorizSpace ShorthandKind = "horiz_space"
	ShorthandVertSpace  ShorthandKind = "vert_space"
	ShorthandCodepoint  ShorthandKind = "codepoint" // [codepoint] / [C] / "any code point"
)

// ClassShorthand is a built-in class shorthand such as [word] or [digit].
// Negated marks the `![...]` form inside a class (e.g. [!digit]).
type ClassShorthand struct {
	Kind    ShorthandKind
	Negated bool
	Sp      span.Span
}

func (c *ClassShorthand) Type() string    { return "class_shorthand" }
func (c *ClassShorthand) Span() span.Span { return c.Sp }
func (c *ClassShorthand) isClassItem()    {}

// AsciiShorthandKind names one of the ASCII-only class shorthands
// (ascii, ascii_alpha, ascii_alnum, ...).
type AsciiShorthandKind string

// ClassAsciiShorthand is an ASCII-restricted shorthand, e.g. [ascii_alpha].
type ClassAsciiShorthand struct {
	Kind    AsciiShorthandKind
	Negated bool
	Sp      span.Span
}

func (c *ClassAsciiShorthand) Type() string    { return "class_ascii_shorthand" }
func (c *ClassAsciiShorthand) Span() span.Span { return c.Sp }
func (c *ClassAsciiShorthand) isClassItem()    {}

// AsciiShorthandDescriptions gives a one- or two-word human-readable gloss
// for each ASCII shorthand name, surfaced in doc comments and in sema's
// "did you mean" suggestion help text. The wording mirrors the POSIX
// bracket-expression class names these shorthands stand in for
// (alnum/alpha/blank/cntrl/digit/graph/lower/print/punct/space/upper/xdigit).
var AsciiShorthandDescriptions = map[AsciiShorthandKind]string{
	"ascii":        "any ASCII character",
	"ascii_alpha":  "alphabetic",
	"ascii_alnum":  "alphanumeric",
	"ascii_blank":  "blank (space/tab)",
	"ascii_cntrl":  "control character",
	"ascii_digit":  "digit",
	"ascii_graph":  "visible character",
	"ascii_lower":  "lowercase",
	"ascii_print":  "printable",
	"ascii_punct":  "punctuation",
	"ascii_space":  "whitespace",
	"ascii_upper":  "uppercase",
	"ascii_word":   "word character (alnum + underscore)",
	"ascii_xdigit": "hex digit",
}

// UnicodePropertyKind distinguishes a bare property from a named
// category/script/block reference.
type UnicodePropertyKind string

const (
	PropGeneric  UnicodePropertyKind = "property"
	PropCategory UnicodePropertyKind = "category"
	PropScript   UnicodePropertyKind = "script"
	PropBlock    UnicodePropertyKind = "block"
)

// ClassUnicodeProperty is a \p{...}-shaped reference inside a class, e.g.
// [Greek], [script: Greek], [block: Basic_Latin].
type ClassUnicodeProperty struct {
	Kind    UnicodePropertyKind
	Name    string
	Negated bool
	Sp      span.Span
}

func (c *ClassUnicodeProperty) Type() string    { return "class_unicode_property" }
func (c *ClassUnicodeProperty) Span() span.Span { return c.Sp }
func (c *ClassUnicodeProperty) isClassItem()    {}

// GroupKind distinguishes the three kinds of parenthesized group.
type GroupKind string

const (
	GroupNonCapturing GroupKind = "non_capturing"
	GroupCapturing    GroupKind = "capturing" // Name is empty for an anonymous :(...) group
	GroupAtomic       GroupKind = "atomic"
)

// Group is a parenthesized sub-expression: (...), :(...), :name(...), or
// atomic(...).
type Group struct {
	Kind    GroupKind
	Name    string // non-empty only for a named capturing group
	Content Expr
	// Number is resolved by the semantic pass (0 until then) for capturing
	// groups; always 0 for non-capturing and atomic groups.
	Number int
	Sp     span.Span
}

func (g *Group) Type() string    { return "group" }
func (g *Group) Span() span.Span { return g.Sp }

// Alternation is a set of branches joined by `|`; always has at least 2
// children (a single-branch alternation collapses to its element during
// parsing).
type Alternation struct {
	Branches []Expr
	Sp       span.Span
}

func (a *Alternation) Type() string    { return "alternation" }
func (a *Alternation) Span() span.Span { return a.Sp }

// Concat is a sequence of juxtaposed expressions; always has at least 2
// children.
type Concat struct {
	Items []Expr
	Sp    span.Span
}

func (c *Concat) Type() string    { return "concat" }
func (c *Concat) Span() span.Span { return c.Sp }

// RepeatMode selects how a Repetition backtracks.
type RepeatMode string

const (
	RepeatDefault RepeatMode = "default" // greedy unless changed by an enclosing `enable lazy;`
	RepeatGreedy  RepeatMode = "greedy"
	RepeatLazy    RepeatMode = "lazy"
)

// Repetition is a quantified sub-expression: inner{lower,upper}. Upper is
// nil for an unbounded repetition (`{n,}`, `*`, `+`).
type Repetition struct {
	Inner Expr
	Lower uint32
	Upper *uint32
	Mode  RepeatMode
	Sp    span.Span
}

func (r *Repetition) Type() string    { return "repetition" }
func (r *Repetition) Span() span.Span { return r.Sp }

// LookaroundKind distinguishes the four lookaround directions.
type LookaroundKind string

const (
	LookAhead     LookaroundKind = "ahead"
	LookBehind    LookaroundKind = "behind"
	LookNegAhead  LookaroundKind = "neg_ahead"
	LookNegBehind LookaroundKind = "neg_behind"
)

// Lookaround is a zero-width assertion: (>> e), (<< e), (!>> e), (!<< e).
type Lookaround struct {
	Kind  LookaroundKind
	Inner Expr
	Sp    span.Span
}

func (l *Lookaround) Type() string    { return "lookaround" }
func (l *Lookaround) Span() span.Span { return l.Sp }

// BoundaryKind names one of the zero-width anchors.
type BoundaryKind string

const (
	BoundaryStartOfString BoundaryKind = "start_of_string"
	BoundaryEndOfString   BoundaryKind = "end_of_string"
	BoundaryWord          BoundaryKind = "word_boundary"
	BoundaryNotWord       BoundaryKind = "not_word_boundary"
)

// Boundary is a zero-width anchor: Start, End, %, or !%.
type Boundary struct {
	Kind BoundaryKind
	Sp   span.Span
}

func (b *Boundary) Type() string    { return "boundary" }
func (b *Boundary) Span() span.Span { return b.Sp }

// RefTargetKind distinguishes the three ways a backreference can name its
// target.
type RefTargetKind string

const (
	RefNumber   RefTargetKind = "number"
	RefNamed    RefTargetKind = "named"
	RefRelative RefTargetKind = "relative"
)

// RefTarget names the capturing group a Reference points at. Exactly one
// of Number/Name/Relative is meaningful, selected by Kind. The semantic
// pass rewrites Named and Relative targets into Number once group
// numbering is known.
type RefTarget struct {
	Kind     RefTargetKind
	Number   uint32
	Name     string
	Relative int32 // signed offset from the reference site, e.g. ::+2 => +2
}

// Reference is a backreference: ::3, ::name, ::+1, ::-1.
type Reference struct {
	Target RefTarget
	Sp     span.Span
}

func (r *Reference) Type() string    { return "reference" }
func (r *Reference) Span() span.Span { return r.Sp }

// Range matches the set of integers in [Start,End] inclusive, expressed in
// the given Base (2..=36) with digit strings rather than machine integers
// so arbitrarily large bounds are representable.
type Range struct {
	Start, End string // digit strings in Base, most-significant digit first
	Base       uint8
	MaxDigits  uint16
	Sp         span.Span
}

func (r *Range) Type() string    { return "range" }
func (r *Range) Span() span.Span { return r.Sp }

// Grapheme matches a single extended grapheme cluster (\X where
// supported).
type Grapheme struct {
	Sp span.Span
}

func (g *Grapheme) Type() string    { return "grapheme" }
func (g *Grapheme) Span() span.Span { return g.Sp }

// Variable is an unresolved reference to a `let`-bound name. The semantic
// pass replaces every Variable node with (a pointer to) the bound
// expression; a Variable surviving past that pass is a bug, not a user
// error.
type Variable struct {
	Name string
	Sp   span.Span
}

func (v *Variable) Type() string    { return "variable" }
func (v *Variable) Span() span.Span { return v.Sp }

// LetIn is `let Name = Value; Body`, lexically scoping Name to Body.
type LetIn struct {
	Name  string
	Value Expr
	Body  Expr
	Sp    span.Span
}

func (l *LetIn) Type() string    { return "let_in" }
func (l *LetIn) Span() span.Span { return l.Sp }

// ModifierFlag names a toggleable compiler behavior. Lazy is the only flag
// the grammar currently exposes.
type ModifierFlag string

const ModifierLazy ModifierFlag = "lazy"

// Modifier is `enable flag; body` or `disable flag; body`.
type Modifier struct {
	Flag ModifierFlag
	On   bool
	Body Expr
	Sp   span.Span
}

func (m *Modifier) Type() string    { return "modifier" }
func (m *Modifier) Span() span.Span { return m.Sp }
