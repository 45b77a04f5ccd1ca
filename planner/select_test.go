package planner

import (
	"testing"

	"github.com/quilldb/quill/coltype"
	"github.com/quilldb/quill/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectStar(t *testing.T) {
	plan, err := planFor(t, "SELECT * FROM t2", Config{})
	require.NoError(t, err)
	project, ok := plan.root.(*projectNode)
	require.True(t, ok)
	_, ok = project.child.(*scanNode)
	require.True(t, ok)
	fields := plan.Schema().Fields
	require.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Name)
	assert.Equal(t, "b", fields[1].Name)
}

func TestSelectStarWithoutFrom(t *testing.T) {
	_, err := planFor(t, "SELECT *", Config{})
	require.ErrorIs(t, err, errStarWithoutFrom)
}

func TestSelectLiteralWithoutFrom(t *testing.T) {
	plan, err := planFor(t, "SELECT 1", Config{})
	require.NoError(t, err)
	project, ok := plan.root.(*projectNode)
	require.True(t, ok)
	_, ok = project.child.(*emptyNode)
	require.True(t, ok)
	fields := plan.Schema().Fields
	require.Len(t, fields, 1)
	assert.Equal(t, "1", fields[0].Name)
	assert.Equal(t, coltype.Int, fields[0].Type)
}

func TestSelectAlias(t *testing.T) {
	plan, err := planFor(t, "SELECT a AS x FROM t2", Config{})
	require.NoError(t, err)
	fields := plan.Schema().Fields
	require.Len(t, fields, 1)
	assert.Equal(t, "x", fields[0].Name)
	assert.Equal(t, coltype.Int, fields[0].Type)
}

func TestSelectMissingColumn(t *testing.T) {
	_, err := planFor(t, "SELECT z FROM t2", Config{})
	require.ErrorIs(t, err, errColumnNotExist)
}

func TestSelectMissingTable(t *testing.T) {
	_, err := planFor(t, "SELECT a FROM nope", Config{})
	require.ErrorIs(t, err, errTableNotExist)
}

func TestSelectWhere(t *testing.T) {
	plan, err := planFor(t, "SELECT a FROM t2 WHERE b = 1", Config{})
	require.NoError(t, err)
	project, ok := plan.root.(*projectNode)
	require.True(t, ok)
	filter, ok := project.child.(*filterNode)
	require.True(t, ok)
	assert.Equal(t, "t2.b = 1", filter.predicate.SQLString())
	_, ok = filter.child.(*scanNode)
	require.True(t, ok)
}

func TestSelectWithAliasWrapsPlan(t *testing.T) {
	stmt := parseQuery(t, "SELECT a, b FROM t2")
	se, ok := stmt.Body.(*compiler.SelectExpr)
	require.True(t, ok)
	node, err := newSelectPlanner(newMockCatalog(), se.Select).plan("sub")
	require.NoError(t, err)
	a, ok := node.(*aliasNode)
	require.True(t, ok)
	assert.Equal(t, "sub", a.alias)
	for _, f := range a.schema().Fields {
		assert.Equal(t, "sub", f.Table)
	}
	_, ok = a.child.(*projectNode)
	require.True(t, ok)
}

func TestSelectStringLiteral(t *testing.T) {
	plan, err := planFor(t, "SELECT 'gud'", Config{})
	require.NoError(t, err)
	fields := plan.Schema().Fields
	require.Len(t, fields, 1)
	assert.Equal(t, "'gud'", fields[0].Name)
	assert.Equal(t, coltype.Str, fields[0].Type)
}
