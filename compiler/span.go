package compiler

// Span is a half open [Start, End) byte offset range into the original sql
// text. Spans attach to AST nodes and survive planning so a diagnostic can
// highlight the exact clause a defect came from. A nil *Span means no
// location is available.
type Span struct {
	Start int
	End   int
}

func newSpan(start, end int) *Span {
	return &Span{Start: start, End: end}
}

// coverSpans returns the smallest span containing both inputs. Either input
// may be nil.
func coverSpans(a, b *Span) *Span {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return &Span{Start: min(a.Start, b.Start), End: max(a.End, b.End)}
}
