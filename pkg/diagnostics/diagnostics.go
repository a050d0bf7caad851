// Package diagnostics implements the error-accumulation model shared by the
// tokenizer, parser, and analyzer, and the stderr wire format from spec.md
// §6. It generalizes the teacher's pkg/compiler/errors.go ErrorSet — a flat
// accumulator with Add/Defer/Unwrap — from a single aggregated error into a
// slice of position-carrying Diagnostics so the source preview can be
// rendered per diagnostic.
package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/xc-lang/xc/pkg/source"
	"github.com/xc-lang/xc/pkg/token"
)

// Diagnostic is one reported error: a position, a human-readable message,
// and the span (in runes, relative to the start of the line) to underline.
type Diagnostic struct {
	Position  token.Position
	Message   string
	SpanStart int // 1-based column where the caret span begins
	SpanWidth int // number of carets to draw; always at least 1
}

// Sink accumulates diagnostics across a pipeline stage. A stage "has an
// error" (spec.md §2: "A stage fails iff it recorded at least one error")
// the moment any diagnostic is added — mirrored here as the teacher's
// Compiler.has_error analogue, HasErrors().
type Sink struct {
	diags []Diagnostic
}

// NewSink returns an empty accumulator.
func NewSink() *Sink {
	return &Sink{}
}

// Add records a diagnostic at pos with the given message, underlining
// spanWidth characters (at least one).
func (s *Sink) Add(pos token.Position, spanWidth int, format string, args ...any) {
	s.diags = append(s.diags, Diagnostic{
		Position:  pos,
		Message:   fmt.Sprintf(format, args...),
		SpanStart: pos.Column,
		SpanWidth: max(spanWidth, 1),
	})
}

// AddRange records a diagnostic whose caret span covers the gap between two
// tokens (spec.md §6: "multi-token spans underline the gap between the two
// tokens").
func (s *Sink) AddRange(from, to token.Position, format string, args ...any) {
	width := to.Column - from.Column
	if width < 1 {
		width = 1
	}
	s.diags = append(s.diags, Diagnostic{
		Position:  from,
		Message:   fmt.Sprintf(format, args...),
		SpanStart: from.Column,
		SpanWidth: width,
	})
}

// Extend appends every diagnostic from other, the way ErrorSet.Add flattens
// a nested ErrorSet into the parent's slice rather than nesting it.
func (s *Sink) Extend(other *Sink) {
	if other == nil {
		return
	}
	s.diags = append(s.diags, other.diags...)
}

// HasErrors reports whether any diagnostic was recorded.
func (s *Sink) HasErrors() bool {
	return len(s.diags) > 0
}

// Diagnostics returns the accumulated diagnostics in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diags
}

// Len reports how many diagnostics have been recorded.
func (s *Sink) Len() int {
	return len(s.diags)
}

// WriteAll writes every diagnostic in s to w using the four-line format from
// spec.md §6:
//
//	xc: error: <message>
//	 --> <filename>:<line>:<column>
//	    :
//	 <line> | <line-content>
//	    :     ^^^^
func WriteAll(w io.Writer, sf *source.SourceFile, s *Sink) {
	for _, d := range s.diags {
		writeOne(w, sf, d)
	}
}

func writeOne(w io.Writer, sf *source.SourceFile, d Diagnostic) {
	fmt.Fprintf(w, "xc: error: %s\n", d.Message)
	fmt.Fprintf(w, " --> %s:%d:%d\n", d.Position.Filename, d.Position.Line, d.Position.Column)
	fmt.Fprintf(w, "    :\n")

	lineNo := fmt.Sprintf("%d", d.Position.Line)
	var content string
	if sf != nil {
		content = sf.Line(d.Position.Line).Text()
	}
	fmt.Fprintf(w, " %s | %s\n", lineNo, content)

	gutter := strings.Repeat(" ", len(lineNo)+1)
	pad := strings.Repeat(" ", max(d.SpanStart-1, 0))
	carets := strings.Repeat("^", max(d.SpanWidth, 1))
	fmt.Fprintf(w, "%s:     %s%s\n", gutter, pad, carets)
}
