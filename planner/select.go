package planner

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/quilldb/quill/coltype"
	"github.com/quilldb/quill/compiler"
)

// selectPlanner converts a select core to a logical plan fragment. The
// fragment is a scan or empty row source wrapped by an optional filter and a
// projection.
type selectPlanner struct {
	catalog setExprCatalog
	stmt    *compiler.SelectStmt
}

func newSelectPlanner(catalog setExprCatalog, stmt *compiler.SelectStmt) *selectPlanner {
	return &selectPlanner{
		catalog: catalog,
		stmt:    stmt,
	}
}

// plan builds the fragment. alias wraps the fragment in an alias node when non
// empty.
func (p *selectPlanner) plan(alias string) (logicalNode, error) {
	var child logicalNode = &emptyNode{}
	if p.stmt.From != nil {
		scan, err := p.scanFor(p.stmt.From.TableName)
		if err != nil {
			return nil, err
		}
		child = scan
	}
	if p.stmt.Where != nil {
		predicate, err := p.bindExpr(p.stmt.Where, child.schema())
		if err != nil {
			return nil, err
		}
		child = &filterNode{child: child, predicate: predicate}
	}
	project, err := p.projectFor(child)
	if err != nil {
		return nil, err
	}
	if alias != "" {
		return &aliasNode{
			child:       project,
			alias:       alias,
			aliasSchema: aliasedSchema(project.schema(), alias),
		}, nil
	}
	return project, nil
}

func (p *selectPlanner) scanFor(tableName string) (*scanNode, error) {
	if !p.catalog.TableExists(tableName) {
		return nil, errors.Wrapf(errTableNotExist, "table %s", tableName)
	}
	cols, err := p.catalog.GetColumns(tableName)
	if err != nil {
		return nil, err
	}
	fields := make([]Field, 0, len(cols))
	for _, c := range cols {
		ct, err := p.catalog.GetColumnType(tableName, c)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Table: tableName, Name: c, Type: ct})
	}
	return &scanNode{
		tableName:  tableName,
		scanSchema: &Schema{Fields: fields},
	}, nil
}

// projectFor computes the projection over the child fragment. A `*` result
// column expands to every column of the child schema and requires a from
// clause.
func (p *selectPlanner) projectFor(child logicalNode) (*projectNode, error) {
	childSchema := child.schema()
	projections := []projection{}
	for _, rc := range p.stmt.ResultColumns {
		if rc.All {
			if p.stmt.From == nil {
				return nil, errStarWithoutFrom
			}
			for _, f := range childSchema.Fields {
				projections = append(projections, projection{
					expr:  &compiler.ColumnRef{Table: f.Table, Column: f.Name, Type: f.Type},
					field: Field{Name: f.Name, Type: f.Type},
				})
			}
			continue
		}
		proj, err := p.fieldFor(rc, childSchema)
		if err != nil {
			return nil, err
		}
		projections = append(projections, proj)
	}
	fields := make([]Field, 0, len(projections))
	for _, proj := range projections {
		fields = append(fields, proj.field)
	}
	return &projectNode{
		child:       child,
		projections: projections,
		projSchema:  &Schema{Fields: fields},
	}, nil
}

func (p *selectPlanner) fieldFor(rc compiler.ResultColumn, childSchema *Schema) (projection, error) {
	bound, err := p.bindExpr(rc.Expression, childSchema)
	if err != nil {
		return projection{}, err
	}
	name := rc.Alias
	if name == "" {
		name = fieldName(bound)
	}
	t, err := exprType(bound)
	if err != nil {
		return projection{}, err
	}
	return projection{
		expr:  bound,
		field: Field{Name: name, Type: t},
	}, nil
}

// bindExpr resolves column references in the expression against the child
// schema, filling in their types.
func (p *selectPlanner) bindExpr(e compiler.Expr, childSchema *Schema) (compiler.Expr, error) {
	switch te := e.(type) {
	case *compiler.ColumnRef:
		idx := childSchema.fieldIndex(te.Column)
		if idx == -1 {
			return nil, errors.Wrapf(errColumnNotExist, "column %s", te.Column)
		}
		f := childSchema.Fields[idx]
		return &compiler.ColumnRef{Table: f.Table, Column: f.Name, Type: f.Type}, nil
	case *compiler.BinaryExpr:
		left, err := p.bindExpr(te.Left, childSchema)
		if err != nil {
			return nil, err
		}
		right, err := p.bindExpr(te.Right, childSchema)
		if err != nil {
			return nil, err
		}
		return &compiler.BinaryExpr{Left: left, Operator: te.Operator, Right: right}, nil
	default:
		return e, nil
	}
}

func fieldName(e compiler.Expr) string {
	if cr, ok := e.(*compiler.ColumnRef); ok {
		return cr.Column
	}
	return e.SQLString()
}

func exprType(e compiler.Expr) (coltype.CT, error) {
	switch te := e.(type) {
	case *compiler.ColumnRef:
		return te.Type, nil
	case *compiler.IntLit:
		return coltype.Int, nil
	case *compiler.StringLit:
		return coltype.Str, nil
	case *compiler.NullLit:
		return coltype.Unknown, nil
	case *compiler.BinaryExpr:
		return coltype.Int, nil
	}
	return coltype.Unknown, errors.Errorf("unable to type expression %s", e.SQLString())
}

func aliasedSchema(s *Schema, alias string) *Schema {
	fields := make([]Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		fields = append(fields, Field{Table: alias, Name: f.Name, Type: f.Type})
	}
	return &Schema{Fields: fields}
}

// ordinal converts a zero based index to its one based display form for error
// details.
func ordinal(i int) string {
	return strconv.Itoa(i + 1)
}
