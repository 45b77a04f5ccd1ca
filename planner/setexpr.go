package planner

import (
	"fmt"

	"github.com/quilldb/quill/coltype"
	"github.com/quilldb/quill/compiler"
)

// setExprCatalog defines the catalog methods needed to plan a query.
type setExprCatalog interface {
	GetColumns(tableName string) ([]string, error)
	GetColumnType(tableName string, columnName string) (coltype.CT, error)
	TableExists(tableName string) bool
}

// queryPlanner converts a query statement to a logical query plan by folding
// its set expression tree bottom up. Leaves delegate to the select and values
// planners. Binary set operations validate the two sub plan schemas before
// combining them.
type queryPlanner struct {
	catalog setExprCatalog
	stmt    *compiler.QueryStmt
	ctx     *Context
}

// NewQuery returns an instance of a query planner for the given AST. ctx may
// be nil in which case nesting depth is unlimited.
func NewQuery(catalog setExprCatalog, stmt *compiler.QueryStmt, ctx *Context) *queryPlanner {
	if ctx == nil {
		ctx = NewContext(Config{})
	}
	return &queryPlanner{
		catalog: catalog,
		stmt:    stmt,
		ctx:     ctx,
	}
}

// QueryPlan generates the query plan tree for the statement.
func (p *queryPlanner) QueryPlan() (*QueryPlan, error) {
	root, err := p.setExprToPlan(p.stmt.Body)
	if err != nil {
		return nil, err
	}
	return newQueryPlan(root, p.stmt.ExplainQueryPlan), nil
}

func (p *queryPlanner) setExprToPlan(expr compiler.SetExpr) (logicalNode, error) {
	switch e := expr.(type) {
	case *compiler.SelectExpr:
		return newSelectPlanner(p.catalog, e.Select).plan("")
	case *compiler.ValuesExpr:
		return newValuesPlanner(e).plan()
	case *compiler.QueryExpr:
		if err := p.ctx.enter(); err != nil {
			return nil, err
		}
		defer p.ctx.exit()
		return p.setExprToPlan(e.Inner)
	case *compiler.SetOperationExpr:
		// Both sides translate unconditionally so a query malformed on both
		// sides reports both defects.
		leftPlan, leftErr := p.setExprToPlan(e.Left)
		rightPlan, rightErr := p.setExprToPlan(e.Right)
		switch {
		case leftErr != nil && rightErr != nil:
			return nil, &CollectionError{Errs: []error{leftErr, rightErr}}
		case leftErr != nil:
			return nil, leftErr
		case rightErr != nil:
			return nil, rightErr
		}
		if !isByName(e.Quantifier) {
			err := validateSetExprNumOfColumns(
				e.Op,
				e.Left.SetSpan(),
				e.Right.SetSpan(),
				leftPlan,
				rightPlan,
				e.SetSpan(),
			)
			if err != nil {
				return nil, err
			}
		}
		return setOperationToPlan(e.Op, leftPlan, rightPlan, e.Quantifier)
	case *compiler.UnsupportedExpr:
		return nil, notImplementedf("Query %s not implemented yet", e.Description)
	}
	return nil, notImplementedf("set expression not implemented yet")
}

// IsUnionAll reports whether the quantifier keeps duplicate rows. Duplicate
// elimination decisions downstream key off of this.
func IsUnionAll(q compiler.SetQuantifier) bool {
	return q == compiler.All || q == compiler.AllByName
}

// isByName reports whether the quantifier matches columns by name instead of
// ordinal position. By name combination tolerates differing arities so the
// column count validation is skipped for it.
func isByName(q compiler.SetQuantifier) bool {
	return q == compiler.ByName ||
		q == compiler.AllByName ||
		q == compiler.DistinctByName
}

func validateSetExprNumOfColumns(
	op compiler.SetOperator,
	leftSpan *compiler.Span,
	rightSpan *compiler.Span,
	leftPlan logicalNode,
	rightPlan logicalNode,
	setExprSpan *compiler.Span,
) error {
	leftLen := len(leftPlan.schema().Fields)
	rightLen := len(rightPlan.schema().Fields)
	if leftLen == rightLen {
		return nil
	}
	d := newDiagnostic(
		fmt.Sprintf("%s queries have different number of columns", op),
		setExprSpan,
	)
	d.addNote(fmt.Sprintf("this side has %d fields", leftLen), leftSpan)
	d.addNote(fmt.Sprintf("this side has %d fields", rightLen), rightSpan)
	return planErr(d)
}

// setOperationToPlan dispatches an operator and quantifier pair to the plan
// builder operation implementing it. Pairs outside the table fail as not
// implemented.
func setOperationToPlan(
	op compiler.SetOperator,
	leftPlan logicalNode,
	rightPlan logicalNode,
	quantifier compiler.SetQuantifier,
) (logicalNode, error) {
	switch op {
	case compiler.Union:
		switch quantifier {
		case compiler.All:
			return union(leftPlan, rightPlan)
		case compiler.AllByName:
			return unionByName(leftPlan, rightPlan)
		case compiler.Distinct, compiler.None:
			return unionDistinct(leftPlan, rightPlan)
		case compiler.ByName, compiler.DistinctByName:
			return unionByNameDistinct(leftPlan, rightPlan)
		}
	case compiler.Intersect:
		switch quantifier {
		case compiler.All:
			return intersect(leftPlan, rightPlan, true)
		case compiler.Distinct, compiler.None:
			return intersect(leftPlan, rightPlan, false)
		}
	case compiler.Except:
		switch quantifier {
		case compiler.All:
			return except(leftPlan, rightPlan, true)
		case compiler.Distinct, compiler.None:
			return except(leftPlan, rightPlan, false)
		}
	}
	return nil, notImplementedf("%s %s not implemented", op, quantifier)
}
