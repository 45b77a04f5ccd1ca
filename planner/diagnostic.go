package planner

import (
	"errors"
	"strings"

	"github.com/quilldb/quill/compiler"
)

// Diagnostic is a primary error message with an optional source span and an
// ordered list of secondary notes. A presentation layer renders it against
// the original query text to highlight the offending clauses.
type Diagnostic struct {
	Msg  string
	Span *compiler.Span
	// Notes annotate the primary message in the order they were added.
	Notes []Note
}

// Note is a secondary message with an optional span.
type Note struct {
	Msg  string
	Span *compiler.Span
}

func newDiagnostic(msg string, span *compiler.Span) *Diagnostic {
	return &Diagnostic{Msg: msg, Span: span}
}

func (d *Diagnostic) addNote(msg string, span *compiler.Span) {
	d.Notes = append(d.Notes, Note{Msg: msg, Span: span})
}

// Render prints the diagnostic against the original sql text with caret
// markers under each spanned clause. Messages with missing spans degrade to
// plain text.
func (d *Diagnostic) Render(src string) string {
	var b strings.Builder
	b.WriteString("error: " + d.Msg + "\n")
	writeMarker(&b, src, d.Span)
	for _, n := range d.Notes {
		b.WriteString("note: " + n.Msg + "\n")
		writeMarker(&b, src, n.Span)
	}
	return b.String()
}

func writeMarker(b *strings.Builder, src string, s *compiler.Span) {
	if s == nil || s.Start < 0 || s.End > len(src) || s.End <= s.Start {
		return
	}
	// Newlines flatten to spaces so the marker row lines up with the echoed
	// source row.
	line := strings.ReplaceAll(src, "\n", " ")
	b.WriteString("  " + line + "\n")
	b.WriteString("  " + strings.Repeat(" ", s.Start) + strings.Repeat("^", s.End-s.Start) + "\n")
}

// Diagnostics collects every diagnostic attached to err. A collection of
// errors contributes the diagnostics of each member in order.
func Diagnostics(err error) []*Diagnostic {
	var coll *CollectionError
	if errors.As(err, &coll) {
		ret := []*Diagnostic{}
		for _, e := range coll.Errs {
			ret = append(ret, Diagnostics(e)...)
		}
		return ret
	}
	var pe *PlanError
	if errors.As(err, &pe) && pe.Diagnostic != nil {
		return []*Diagnostic{pe.Diagnostic}
	}
	return nil
}
