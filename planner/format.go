package planner

import "fmt"

// This file contains the print and children receivers backing the string
// representation of a query plan.

func (p *projectNode) print() string {
	list := "("
	for i, proj := range p.projections {
		list += proj.field.Name
		if i+1 < len(p.projections) {
			list += ", "
		}
	}
	list += ")"
	return "project" + list
}

func (s *scanNode) print() string {
	return fmt.Sprintf("scan table %s", s.tableName)
}

func (f *filterNode) print() string {
	return fmt.Sprintf("filter(%s)", f.predicate.SQLString())
}

func (v *valuesNode) print() string {
	return fmt.Sprintf("values (%d rows)", len(v.rows))
}

func (u *unionNode) print() string {
	if u.byName {
		return "union by name"
	}
	return "union"
}

func (*distinctNode) print() string {
	return "distinct"
}

func (i *intersectNode) print() string {
	if i.all {
		return "intersect all"
	}
	return "intersect"
}

func (e *exceptNode) print() string {
	if e.all {
		return "except all"
	}
	return "except"
}

func (a *aliasNode) print() string {
	return fmt.Sprintf("alias %s", a.alias)
}

func (*emptyNode) print() string {
	return "empty row"
}

func (p *projectNode) children() []logicalNode {
	return []logicalNode{p.child}
}

func (s *scanNode) children() []logicalNode {
	return []logicalNode{}
}

func (f *filterNode) children() []logicalNode {
	return []logicalNode{f.child}
}

func (v *valuesNode) children() []logicalNode {
	return []logicalNode{}
}

func (u *unionNode) children() []logicalNode {
	return []logicalNode{u.left, u.right}
}

func (d *distinctNode) children() []logicalNode {
	return []logicalNode{d.child}
}

func (i *intersectNode) children() []logicalNode {
	return []logicalNode{i.left, i.right}
}

func (e *exceptNode) children() []logicalNode {
	return []logicalNode{e.left, e.right}
}

func (a *aliasNode) children() []logicalNode {
	return []logicalNode{a.child}
}

func (*emptyNode) children() []logicalNode {
	return []logicalNode{}
}
