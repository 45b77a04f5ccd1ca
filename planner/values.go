package planner

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/quilldb/quill/coltype"
	"github.com/quilldb/quill/compiler"
)

// valuesPlanner converts a values list to a literal row source. Every row
// must carry the same number of expressions. Column names are generated as
// column1..columnN and column types are reconciled across rows.
type valuesPlanner struct {
	expr *compiler.ValuesExpr
}

func newValuesPlanner(expr *compiler.ValuesExpr) *valuesPlanner {
	return &valuesPlanner{expr: expr}
}

func (p *valuesPlanner) plan() (logicalNode, error) {
	rows := p.expr.Rows
	if len(rows) == 0 {
		return nil, errors.Wrap(errValuesNotMatch, "values list is empty")
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(
				errValuesNotMatch,
				"row %s has %d values expected %d",
				ordinal(i),
				len(row),
				width,
			)
		}
	}
	fields := make([]Field, width)
	for col := 0; col < width; col += 1 {
		t := coltype.Unknown
		for _, row := range rows {
			lt, err := literalType(row[col])
			if err != nil {
				return nil, err
			}
			rt, err := reconcileType(t, lt)
			if err != nil {
				return nil, err
			}
			t = rt
		}
		fields[col] = Field{
			Name: fmt.Sprintf("column%d", col+1),
			Type: t,
		}
	}
	return &valuesNode{
		rows:      rows,
		valSchema: &Schema{Fields: fields},
	}, nil
}

func literalType(e compiler.Expr) (coltype.CT, error) {
	switch e.(type) {
	case *compiler.IntLit:
		return coltype.Int, nil
	case *compiler.StringLit:
		return coltype.Str, nil
	case *compiler.NullLit:
		return coltype.Unknown, nil
	}
	return coltype.Unknown, notImplementedf("values expression %s not implemented", e.SQLString())
}
