package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"
)

// Renderer formats diagnostics as source snippets with an underline caret
// under the offending span, walking typed Diagnostic values and coloring
// the output when the destination is a terminal.
type Renderer struct {
	out    *termenv.Output
	color  bool
	source string
}

// NewRenderer builds a Renderer for source, writing to w. Color is
// enabled only when w is a TTY.
func NewRenderer(w io.Writer, source string) *Renderer {
	color := false
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Renderer{
		out:    termenv.NewOutput(w),
		color:  color,
		source: source,
	}
}

// Render writes every diagnostic in b to the renderer's destination.
func (r *Renderer) Render(w io.Writer, b *Bag) {
	for _, d := range b.All() {
		fmt.Fprint(w, r.one(d))
	}
}

func (r *Renderer) one(d Diagnostic) string {
	var sb strings.Builder

	label := d.Severity.String()
	styled := label
	if r.color {
		s := termenv.String(label)
		if d.Severity == Error {
			s = s.Foreground(r.out.Color("9")).Bold() // red
		} else {
			s = s.Foreground(r.out.Color("11")).Bold() // yellow
		}
		styled = s.String()
	}
	fmt.Fprintf(&sb, "%s: %s\n", styled, d.Message)

	if !d.Span.IsEmpty() && d.Span.End <= len(r.source) {
		line, col, lineText := locate(r.source, d.Span.Start)
		fmt.Fprintf(&sb, "  --> line %d, column %d\n", line, col)
		fmt.Fprintf(&sb, "  | %s\n", lineText)
		caretOffset := col - 1
		spanText := r.source[d.Span.Start:min(d.Span.End, len(r.source))]
		caretWidth := graphemeColumns(spanText)
		caret := strings.Repeat(" ", caretOffset) + strings.Repeat("^", max(1, caretWidth))
		if r.color {
			caret = termenv.String(caret).Foreground(r.out.Color("9")).String()
		}
		fmt.Fprintf(&sb, "  | %s\n", caret)
	}

	if d.Help != "" {
		help := "help: " + d.Help
		if r.color {
			help = termenv.String(help).Faint().String()
		}
		fmt.Fprintf(&sb, "  %s\n", help)
	}

	return sb.String()
}

// locate finds the 1-based line/column of byte offset pos in source, and
// returns the full text of that line (without its terminating newline).
func locate(source string, pos int) (line, col int, lineText string) {
	line = 1
	lineStart := 0
	for i := 0; i < pos && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := len(source)
	if idx := strings.IndexByte(source[lineStart:], '\n'); idx >= 0 {
		lineEnd = lineStart + idx
	}
	lineText = source[lineStart:lineEnd]
	col = graphemeColumns(source[lineStart:pos]) + 1
	return line, col, lineText
}

// graphemeColumns counts extended grapheme clusters rather than bytes or
// runes, so a caret lines up under source text with combining marks. Each
// cluster counts as one column; a double-width character still counts as
// one.
func graphemeColumns(s string) int {
	n := 0
	state := -1
	for len(s) > 0 {
		_, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		n++
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
