package compiler

import (
	"strconv"

	"github.com/quilldb/quill/coltype"
)

// ast (Abstract Syntax Tree) defines a data structure representing a SQL
// program. This data structure is generated from the parser. This data
// structure is intended to be translated into a logical query plan.

type Stmt interface{}

type StmtBase struct {
	Explain          bool
	ExplainQueryPlan bool
}

// QueryStmt is a query statement. Its body is a set expression tree whose
// leaves are select or values clauses.
type QueryStmt struct {
	*StmtBase
	Body SetExpr
}

// SetOperator combines the results of two set expressions.
type SetOperator int

const (
	// Union concatenates the rows of both inputs.
	Union SetOperator = iota + 1
	// Intersect keeps rows present in both inputs.
	Intersect
	// Except keeps rows of the left input absent from the right input.
	Except
)

func (o SetOperator) String() string {
	switch o {
	case Union:
		return "Union"
	case Intersect:
		return "Intersect"
	case Except:
		return "Except"
	}
	return "Unknown"
}

// SetQuantifier controls duplicate row retention and column matching of a set
// operation. None is the default and means the operator's standard duplicate
// elimination. The ByName variants match columns by name instead of position.
type SetQuantifier int

const (
	None SetQuantifier = iota
	All
	Distinct
	ByName
	AllByName
	DistinctByName
)

func (q SetQuantifier) String() string {
	switch q {
	case All:
		return "All"
	case Distinct:
		return "Distinct"
	case ByName:
		return "ByName"
	case AllByName:
		return "AllByName"
	case DistinctByName:
		return "DistinctByName"
	}
	return "None"
}

// SetExpr is a node in a set expression tree. The set of implementations is
// closed. Each node carries an optional span locating it in the original sql
// text.
type SetExpr interface {
	// SetSpan returns the node's source location. It is nil when no location
	// is available.
	SetSpan() *Span
	setExpr()
}

// SelectExpr is a leaf select clause.
type SelectExpr struct {
	Select  *SelectStmt
	SrcSpan *Span
}

func (e *SelectExpr) SetSpan() *Span { return e.SrcSpan }
func (*SelectExpr) setExpr()         {}

// ValuesExpr is a leaf list of literal rows.
type ValuesExpr struct {
	// Rows is a 2d list where the first dimension represents a row and the
	// second dimension represents a column value.
	Rows    [][]Expr
	SrcSpan *Span
}

func (e *ValuesExpr) SetSpan() *Span { return e.SrcSpan }
func (*ValuesExpr) setExpr()         {}

// SetOperationExpr combines two set expressions with an operator and a
// quantifier.
type SetOperationExpr struct {
	Op         SetOperator
	Quantifier SetQuantifier
	Left       SetExpr
	Right      SetExpr
	SrcSpan    *Span
}

func (e *SetOperationExpr) SetSpan() *Span { return e.SrcSpan }
func (*SetOperationExpr) setExpr()         {}

// QueryExpr is a parenthesized nested query.
type QueryExpr struct {
	Inner   SetExpr
	SrcSpan *Span
}

func (e *QueryExpr) SetSpan() *Span { return e.SrcSpan }
func (*QueryExpr) setExpr()         {}

// UnsupportedExpr is sql the parser recognizes but the planner cannot
// translate, such as a TABLE clause.
type UnsupportedExpr struct {
	Description string
	SrcSpan     *Span
}

func (e *UnsupportedExpr) SetSpan() *Span { return e.SrcSpan }
func (*UnsupportedExpr) setExpr()         {}

// SelectStmt is the body of a single select clause.
type SelectStmt struct {
	// From may be nil for a select over literals such as SELECT 1.
	From          *From
	ResultColumns []ResultColumn
	// Where may be nil when there is no where clause.
	Where Expr
}

// ResultColumn is the column definitions in a select statement.
type ResultColumn struct {
	// All is * in a select statement for example SELECT * FROM foo
	All bool
	// Expression contains the more complicated result column rules
	Expression Expr
	// Alias is the alias for an expression for example SELECT 1 AS "bar"
	Alias string
}

type From struct {
	TableName string
}

// Operator strings appearing in a BinaryExpr.
const (
	OpEq  = "="
	OpNeq = "!="
	OpLt  = "<"
	OpLte = "<="
	OpGt  = ">"
	OpGte = ">="
)

// Expr defines the interface of an expression.
type Expr interface {
	// SQLString returns the expression as it prints in sql text. The planner
	// uses it to name otherwise anonymous result columns.
	SQLString() string
}

// BinaryExpr is for an expression with two operands.
type BinaryExpr struct {
	Left     Expr
	Operator string
	Right    Expr
}

func (be *BinaryExpr) SQLString() string {
	return be.Left.SQLString() + " " + be.Operator + " " + be.Right.SQLString()
}

// ColumnRef is an expression with no operands. It references a column on a
// table.
type ColumnRef struct {
	Table  string
	Column string
	// Type is the type of the column. It is filled out by the query planner
	// during binding.
	Type coltype.CT
}

func (cr *ColumnRef) SQLString() string {
	if cr.Table != "" {
		return cr.Table + "." + cr.Column
	}
	return cr.Column
}

// IntLit is an expression that is a literal integer such as "1".
type IntLit struct {
	Value int
}

func (il *IntLit) SQLString() string {
	return strconv.Itoa(il.Value)
}

// StringLit is an expression that is a literal string such as "'asdf'".
type StringLit struct {
	Value string
}

func (sl *StringLit) SQLString() string {
	return "'" + sl.Value + "'"
}

// NullLit is the literal NULL.
type NullLit struct{}

func (*NullLit) SQLString() string {
	return "NULL"
}
