package planner

import "github.com/quilldb/quill/coltype"

// Field is a single named, typed output column of a logical plan.
type Field struct {
	// Table qualifies the field when it maps onto a table column or the
	// enclosing query has an alias.
	Table string
	Name  string
	Type  coltype.CT
}

// Schema is the ordered sequence of output fields of a logical plan. Field
// order is significant because positional set operations match columns by
// ordinal position. Two plans with the same field sequence have the same
// schema regardless of how the plans were built.
type Schema struct {
	Fields []Field
}

func (s *Schema) fieldIndex(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
