// Package diag accumulates structured diagnostics (errors and warnings)
// produced by any pipeline stage. Rendering to a human-readable string is
// a separate concern (see render.go); this file only holds the data model.
package diag

import (
	"fmt"

	"github.com/pomsky-lang/pomsky-go/internal/span"
)

// Severity classifies a diagnostic as blocking compilation or merely
// informational.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Kind identifies the category of a diagnostic. Kinds are used by callers
// that want to react to specific failure classes (e.g. the test suite
// asserting a particular flavor-compatibility check fired) without string
// matching on the message.
type Kind string

const (
	LexError                 Kind = "lex_error"
	ParseError               Kind = "parse_error"
	RecursionLimit           Kind = "recursion_limit"
	UnknownVariable          Kind = "unknown_variable"
	CyclicVariable           Kind = "cyclic_variable"
	UnknownReference         Kind = "unknown_reference"
	DisabledFeature          Kind = "disabled_feature"
	UnsupportedFeature       Kind = "unsupported_feature"
	LookbehindNotFixedWidth  Kind = "lookbehind_not_fixed_width"
	RangeTooLarge            Kind = "range_too_large"
	DeprecatedSyntax         Kind = "deprecated_syntax"
	UnicodePropertyUnknown   Kind = "unicode_property_unknown"
	NonUnicodeWordBoundary   Kind = "non_unicode_word_boundary"
)

// Diagnostic is one accumulated error or warning with an optional
// suggestion attached.
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Span     span.Span
	Message  string
	Help     string // suggested fix, empty if none
}

func (d Diagnostic) Error() string {
	return d.Message
}

// Bag accumulates diagnostics across a single compilation. It never
// discards anything it's given: the semantic pass keeps running after an
// error is recorded, so a caller gets every diagnostic a single pass can
// produce rather than just the first one.
type Bag struct {
	items []Diagnostic
}

// Add appends a diagnostic to the bag.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// Errorf records an Error-severity diagnostic.
func (b *Bag) Errorf(kind Kind, sp span.Span, help string, format string, args ...any) {
	b.Add(Diagnostic{Severity: Error, Kind: kind, Span: sp, Message: fmt.Sprintf(format, args...), Help: help})
}

// Warnf records a Warning-severity diagnostic.
func (b *Bag) Warnf(kind Kind, sp span.Span, help string, format string, args ...any) {
	b.Add(Diagnostic{Severity: Warning, Kind: kind, Span: sp, Message: fmt.Sprintf(format, args...), Help: help})
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// All returns every diagnostic recorded, in emission order.
func (b *Bag) All() []Diagnostic {
	return b.items
}

// Errors returns only the Error-severity diagnostics, in emission order.
func (b *Bag) Errors() []Diagnostic {
	var out []Diagnostic
	for _, d := range b.items {
		if d.Severity == Error {
			out = append(out, d)
		}
	}
	return out
}

// Warnings returns only the Warning-severity diagnostics, in emission
// order.
func (b *Bag) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range b.items {
		if d.Severity == Warning {
			out = append(out, d)
		}
	}
	return out
}

// Extend appends every diagnostic from other into b, preserving order.
func (b *Bag) Extend(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}
