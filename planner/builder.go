package planner

import (
	"fmt"

	"github.com/quilldb/quill/coltype"
	"github.com/quilldb/quill/compiler"
)

// This file contains the builder operations assembling set operation nodes
// from two sub plans.

func union(left, right logicalNode) (logicalNode, error) {
	s, err := positionalSchema(compiler.Union.String(), left, right)
	if err != nil {
		return nil, err
	}
	return &unionNode{left: left, right: right, unionSchema: s}, nil
}

func unionDistinct(left, right logicalNode) (logicalNode, error) {
	u, err := union(left, right)
	if err != nil {
		return nil, err
	}
	return &distinctNode{child: u}, nil
}

func unionByName(left, right logicalNode) (logicalNode, error) {
	s := nameMatchedSchema(left.schema(), right.schema())
	return &unionNode{left: left, right: right, byName: true, unionSchema: s}, nil
}

func unionByNameDistinct(left, right logicalNode) (logicalNode, error) {
	u, err := unionByName(left, right)
	if err != nil {
		return nil, err
	}
	return &distinctNode{child: u}, nil
}

func intersect(left, right logicalNode, all bool) (logicalNode, error) {
	if _, err := positionalSchema(compiler.Intersect.String(), left, right); err != nil {
		return nil, err
	}
	return &intersectNode{left: left, right: right, all: all}, nil
}

func except(left, right logicalNode, all bool) (logicalNode, error) {
	if _, err := positionalSchema(compiler.Except.String(), left, right); err != nil {
		return nil, err
	}
	return &exceptNode{left: left, right: right, all: all}, nil
}

// positionalSchema derives the output schema of a positional set operation.
// The field names come from the left plan and each position's type is the
// reconciliation of the two input types.
func positionalSchema(op string, left, right logicalNode) (*Schema, error) {
	ls := left.schema()
	rs := right.schema()
	if len(ls.Fields) != len(rs.Fields) {
		d := newDiagnostic(
			fmt.Sprintf("%s queries have different number of columns", op),
			nil,
		)
		return nil, planErr(d)
	}
	fields := make([]Field, len(ls.Fields))
	for i := range ls.Fields {
		t, err := reconcileType(ls.Fields[i].Type, rs.Fields[i].Type)
		if err != nil {
			d := newDiagnostic(
				fmt.Sprintf(
					"%s queries have incompatible types in column %d",
					op,
					i+1,
				),
				nil,
			)
			return nil, planErr(d)
		}
		fields[i] = Field{Name: ls.Fields[i].Name, Type: t}
	}
	return &Schema{Fields: fields}, nil
}

// nameMatchedSchema derives the output schema of a by name set operation. The
// left plan's fields come first in their order, then any right plan fields
// whose names the left plan lacks are appended.
func nameMatchedSchema(ls, rs *Schema) *Schema {
	fields := make([]Field, 0, len(ls.Fields))
	for _, f := range ls.Fields {
		fields = append(fields, Field{Name: f.Name, Type: f.Type})
	}
	for _, rf := range rs.Fields {
		idx := -1
		for i, f := range fields {
			if f.Name == rf.Name {
				idx = i
				break
			}
		}
		if idx == -1 {
			fields = append(fields, Field{Name: rf.Name, Type: rf.Type})
			continue
		}
		if t, err := reconcileType(fields[idx].Type, rf.Type); err == nil {
			fields[idx].Type = t
		}
	}
	return &Schema{Fields: fields}
}

// reconcileType merges two column types. Unknown coerces to the other type so
// nulls combine with anything.
func reconcileType(a, b coltype.CT) (coltype.CT, error) {
	if a == b {
		return a, nil
	}
	if a == coltype.Unknown {
		return b, nil
	}
	if b == coltype.Unknown {
		return a, nil
	}
	return coltype.Unknown, fmt.Errorf(
		"cannot reconcile types %s and %s",
		coltype.String(a),
		coltype.String(b),
	)
}
