package planner

import "github.com/quilldb/quill/compiler"

// This file defines the relational nodes in a logical query plan.

// logicalNode defines the interface for a node in the query plan tree.
type logicalNode interface {
	children() []logicalNode
	print() string
	schema() *Schema
}

// scanNode reads every row of a table.
type scanNode struct {
	tableName  string
	scanSchema *Schema
}

func (s *scanNode) schema() *Schema {
	return s.scanSchema
}

// filterNode removes rows its predicate evaluates false for.
type filterNode struct {
	child     logicalNode
	predicate compiler.Expr
}

func (f *filterNode) schema() *Schema {
	return f.child.schema()
}

// projectNode computes the output columns of a select.
type projectNode struct {
	child       logicalNode
	projections []projection
	projSchema  *Schema
}

// projection pairs a result column expression with the output field it
// produces.
type projection struct {
	expr  compiler.Expr
	field Field
}

func (p *projectNode) schema() *Schema {
	return p.projSchema
}

// valuesNode produces literal rows without reading a table.
type valuesNode struct {
	rows      [][]compiler.Expr
	valSchema *Schema
}

func (v *valuesNode) schema() *Schema {
	return v.valSchema
}

// unionNode concatenates the rows of two plans. Column matching is positional
// unless byName is set, in which case the right plan's columns map onto the
// left plan's columns by name.
type unionNode struct {
	left        logicalNode
	right       logicalNode
	byName      bool
	unionSchema *Schema
}

func (u *unionNode) schema() *Schema {
	return u.unionSchema
}

// distinctNode removes duplicate rows from its child.
type distinctNode struct {
	child logicalNode
}

func (d *distinctNode) schema() *Schema {
	return d.child.schema()
}

// intersectNode keeps rows present in both plans. all preserves
// multiplicities, otherwise duplicates are removed.
type intersectNode struct {
	left  logicalNode
	right logicalNode
	all   bool
}

func (i *intersectNode) schema() *Schema {
	return i.left.schema()
}

// exceptNode keeps rows of the left plan that are absent from the right
// plan. all preserves multiplicities, otherwise duplicates are removed.
type exceptNode struct {
	left  logicalNode
	right logicalNode
	all   bool
}

func (e *exceptNode) schema() *Schema {
	return e.left.schema()
}

// aliasNode renames the relation produced by its child.
type aliasNode struct {
	child       logicalNode
	alias       string
	aliasSchema *Schema
}

func (a *aliasNode) schema() *Schema {
	return a.aliasSchema
}

// emptyNode produces a single row with no columns. It backs a select with no
// from clause.
type emptyNode struct{}

func (*emptyNode) schema() *Schema {
	return &Schema{}
}
