package planner

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errTableNotExist   = errors.New("table does not exist")
	errColumnNotExist  = errors.New("column does not exist")
	errValuesNotMatch  = errors.New("values lists must all be the same length")
	errStarWithoutFrom = errors.New("select * requires a from clause")
)

// NotImplementedError reports sql the planner does not support. The message
// surfaces to the caller verbatim.
type NotImplementedError struct {
	Msg string
}

func (e *NotImplementedError) Error() string {
	return e.Msg
}

func notImplementedf(format string, args ...any) error {
	return &NotImplementedError{Msg: fmt.Sprintf(format, args...)}
}

// PlanError is a structural planning defect such as a set operation over
// mismatched schemas. It may carry a Diagnostic for source accurate display.
type PlanError struct {
	Msg        string
	Diagnostic *Diagnostic
}

func (e *PlanError) Error() string {
	return e.Msg
}

func planErr(d *Diagnostic) error {
	return &PlanError{Msg: d.Msg, Diagnostic: d}
}

// CollectionError merges the failures of both sides of a binary set
// operation. Order is the left error then the right error. A nested
// collection stays opaque rather than being flattened, so each operation
// node aggregates at most one level.
type CollectionError struct {
	Errs []error
}

func (e *CollectionError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (e *CollectionError) Unwrap() []error {
	return e.Errs
}

// RecursionLimitError reports a set expression nested deeper than the
// configured ceiling.
type RecursionLimitError struct {
	Limit int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("set expression exceeds maximum nesting depth of %d", e.Limit)
}
