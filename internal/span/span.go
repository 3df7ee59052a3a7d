// Package span defines byte-range source locations shared by every stage
// of the compiler pipeline.
package span

import "fmt"

// Span is a half-open byte range [Start, End) into the original UTF-8
// source. Nodes rebuilt by the semantic pass keep the span of the node
// they come from.
type Span struct {
	Start int
	End   int
}

// Empty returns the sentinel span used for synthetic nodes that have no
// corresponding source text.
func Empty() Span {
	return Span{Start: -1, End: -1}
}

// IsEmpty reports whether s is the synthetic sentinel span.
func (s Span) IsEmpty() bool {
	return s.Start < 0 || s.End < 0
}

// Join returns the smallest span enclosing both s and other. Joining with
// an empty span returns the other, non-empty span unchanged.
func (s Span) Join(other Span) Span {
	if s.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return s
	}
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Len returns the byte length of the span, or 0 for an empty span.
func (s Span) Len() int {
	if s.IsEmpty() {
		return 0
	}
	return s.End - s.Start
}

func (s Span) String() string {
	if s.IsEmpty() {
		return "<empty>"
	}
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
