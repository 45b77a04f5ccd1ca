package engine

import (
	"testing"

	"github.com/quilldb/quill/catalog"
	"github.com/quilldb/quill/planner"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T, cfg planner.Config) *Engine {
	t.Helper()
	c := catalog.NewCatalog()
	require.NoError(t, c.AddTable(catalog.Table{
		Name: "person",
		Columns: []catalog.Column{
			{Name: "id", ColType: "INTEGER", PrimaryKey: true},
			{Name: "name", ColType: "TEXT"},
		},
	}))
	return New(c, cfg, zerolog.Nop())
}

func TestCompile(t *testing.T) {
	e := testEngine(t, planner.Config{})
	result := e.Compile("SELECT * FROM person;")
	require.NoError(t, result.Err)
	require.NotNil(t, result.Plan)
	assert.Empty(t, result.Text)
	assert.Len(t, result.Plan.Schema().Fields, 2)
	assert.NotZero(t, result.Duration)
}

func TestCompileExplainQueryPlan(t *testing.T) {
	e := testEngine(t, planner.Config{})
	result := e.Compile("EXPLAIN QUERY PLAN SELECT id FROM person UNION SELECT id FROM person;")
	require.NoError(t, result.Err)
	assert.Contains(t, result.Text, "distinct")
	assert.Contains(t, result.Text, "union")
	assert.Contains(t, result.Text, "scan table person")
}

func TestCompileParseError(t *testing.T) {
	e := testEngine(t, planner.Config{})
	result := e.Compile("SELECT FROM WHERE")
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "parse")
}

func TestCompilePlanError(t *testing.T) {
	e := testEngine(t, planner.Config{})
	result := e.Compile("SELECT id FROM person UNION SELECT id, name FROM person")
	require.Error(t, result.Err)
	assert.Contains(
		t,
		result.Err.Error(),
		"Union queries have different number of columns",
	)
}

func TestCompileRecursionLimit(t *testing.T) {
	e := testEngine(t, planner.Config{MaxSetDepth: 1})
	result := e.Compile("((SELECT 1))")
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "maximum nesting depth of 1")
}

func TestTokenizeAndIsTerminated(t *testing.T) {
	e := testEngine(t, planner.Config{})
	statements := e.Tokenize("SELECT 1; SELECT 2;")
	require.Len(t, statements, 2)
	assert.True(t, e.IsTerminated(statements))
	assert.False(t, e.IsTerminated(e.Tokenize("SELECT 1")))
}
