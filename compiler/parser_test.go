package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, sql string) Stmt {
	t.Helper()
	stmt, err := NewParser(NewLexer(sql).Lex()).Parse()
	require.NoError(t, err)
	return stmt
}

func parseBody(t *testing.T, sql string) SetExpr {
	t.Helper()
	qs, ok := parse(t, sql).(*QueryStmt)
	require.True(t, ok)
	return qs.Body
}

func TestParseSelect(t *testing.T) {
	body := parseBody(t, "SELECT a, b FROM foo WHERE a = 1")
	se, ok := body.(*SelectExpr)
	require.True(t, ok)
	require.NotNil(t, se.Select.From)
	assert.Equal(t, "foo", se.Select.From.TableName)
	require.Len(t, se.Select.ResultColumns, 2)
	assert.Equal(t, "a", se.Select.ResultColumns[0].Expression.SQLString())
	assert.Equal(t, "b", se.Select.ResultColumns[1].Expression.SQLString())
	require.NotNil(t, se.Select.Where)
	assert.Equal(t, "a = 1", se.Select.Where.SQLString())
}

func TestParseSelectStar(t *testing.T) {
	body := parseBody(t, "SELECT * FROM foo")
	se, ok := body.(*SelectExpr)
	require.True(t, ok)
	require.Len(t, se.Select.ResultColumns, 1)
	assert.True(t, se.Select.ResultColumns[0].All)
}

func TestParseSelectAlias(t *testing.T) {
	body := parseBody(t, "SELECT 1 AS x")
	se, ok := body.(*SelectExpr)
	require.True(t, ok)
	require.Len(t, se.Select.ResultColumns, 1)
	assert.Equal(t, "x", se.Select.ResultColumns[0].Alias)
}

func TestParseExplain(t *testing.T) {
	qs, ok := parse(t, "EXPLAIN SELECT 1").(*QueryStmt)
	require.True(t, ok)
	assert.True(t, qs.Explain)
	assert.False(t, qs.ExplainQueryPlan)

	qs, ok = parse(t, "EXPLAIN QUERY PLAN SELECT 1").(*QueryStmt)
	require.True(t, ok)
	assert.False(t, qs.Explain)
	assert.True(t, qs.ExplainQueryPlan)
}

func TestParseSetOperators(t *testing.T) {
	cases := []struct {
		sql string
		op  SetOperator
	}{
		{"SELECT 1 UNION SELECT 2", Union},
		{"SELECT 1 INTERSECT SELECT 2", Intersect},
		{"SELECT 1 EXCEPT SELECT 2", Except},
	}
	for _, c := range cases {
		t.Run(c.sql, func(t *testing.T) {
			so, ok := parseBody(t, c.sql).(*SetOperationExpr)
			require.True(t, ok)
			assert.Equal(t, c.op, so.Op)
		})
	}
}

func TestParseSetQuantifiers(t *testing.T) {
	cases := []struct {
		sql        string
		quantifier SetQuantifier
	}{
		{"SELECT 1 UNION SELECT 2", None},
		{"SELECT 1 UNION ALL SELECT 2", All},
		{"SELECT 1 UNION DISTINCT SELECT 2", Distinct},
		{"SELECT 1 UNION BY NAME SELECT 2", ByName},
		{"SELECT 1 UNION ALL BY NAME SELECT 2", AllByName},
		{"SELECT 1 UNION DISTINCT BY NAME SELECT 2", DistinctByName},
	}
	for _, c := range cases {
		t.Run(c.sql, func(t *testing.T) {
			so, ok := parseBody(t, c.sql).(*SetOperationExpr)
			require.True(t, ok)
			assert.Equal(t, c.quantifier, so.Quantifier)
		})
	}
}

func TestParseSetOperationsLeftAssociative(t *testing.T) {
	so, ok := parseBody(t, "SELECT 1 UNION SELECT 2 EXCEPT SELECT 3").(*SetOperationExpr)
	require.True(t, ok)
	assert.Equal(t, Except, so.Op)
	left, ok := so.Left.(*SetOperationExpr)
	require.True(t, ok)
	assert.Equal(t, Union, left.Op)
}

func TestParseNestedQuery(t *testing.T) {
	qe, ok := parseBody(t, "(SELECT 1 UNION SELECT 2)").(*QueryExpr)
	require.True(t, ok)
	_, ok = qe.Inner.(*SetOperationExpr)
	require.True(t, ok)
}

func TestParseValues(t *testing.T) {
	ve, ok := parseBody(t, "VALUES (1, 'a'), (2, NULL)").(*ValuesExpr)
	require.True(t, ok)
	require.Len(t, ve.Rows, 2)
	require.Len(t, ve.Rows[0], 2)
	assert.Equal(t, "1", ve.Rows[0][0].SQLString())
	assert.Equal(t, "'a'", ve.Rows[0][1].SQLString())
	assert.Equal(t, "NULL", ve.Rows[1][1].SQLString())
}

func TestParseTableClause(t *testing.T) {
	ue, ok := parseBody(t, "TABLE foo").(*UnsupportedExpr)
	require.True(t, ok)
	assert.Equal(t, "TABLE foo", ue.Description)
}

func TestParseSpans(t *testing.T) {
	sql := "SELECT a FROM t UNION SELECT b FROM u"
	so, ok := parseBody(t, sql).(*SetOperationExpr)
	require.True(t, ok)
	require.NotNil(t, so.Left.SetSpan())
	assert.Equal(t, 0, so.Left.SetSpan().Start)
	assert.Equal(t, "SELECT a FROM t", sql[so.Left.SetSpan().Start:so.Left.SetSpan().End])
	require.NotNil(t, so.Right.SetSpan())
	assert.Equal(t, "SELECT b FROM u", sql[so.Right.SetSpan().Start:so.Right.SetSpan().End])
	require.NotNil(t, so.SetSpan())
	assert.Equal(t, sql, sql[so.SetSpan().Start:so.SetSpan().End])
}

func TestParseTrailingGarbage(t *testing.T) {
	_, err := NewParser(NewLexer("SELECT 1 SELECT 2").Lex()).Parse()
	require.Error(t, err)
}

func TestParseDanglingOperator(t *testing.T) {
	_, err := NewParser(NewLexer("SELECT 1 UNION").Lex()).Parse()
	require.Error(t, err)
}
