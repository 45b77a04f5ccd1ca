package planner

import (
	"testing"

	"github.com/quilldb/quill/coltype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesSchema(t *testing.T) {
	plan, err := planFor(t, "VALUES (1, 'x'), (2, NULL)", Config{})
	require.NoError(t, err)
	v, ok := plan.root.(*valuesNode)
	require.True(t, ok)
	assert.Len(t, v.rows, 2)
	fields := plan.Schema().Fields
	require.Len(t, fields, 2)
	assert.Equal(t, "column1", fields[0].Name)
	assert.Equal(t, coltype.Int, fields[0].Type)
	assert.Equal(t, "column2", fields[1].Name)
	assert.Equal(t, coltype.Str, fields[1].Type)
}

func TestValuesAllNullColumn(t *testing.T) {
	plan, err := planFor(t, "VALUES (NULL), (NULL)", Config{})
	require.NoError(t, err)
	fields := plan.Schema().Fields
	require.Len(t, fields, 1)
	assert.Equal(t, coltype.Unknown, fields[0].Type)
}

func TestValuesMismatchedRowLengths(t *testing.T) {
	_, err := planFor(t, "VALUES (1), (1, 2)", Config{})
	require.ErrorIs(t, err, errValuesNotMatch)
}

func TestValuesMixedColumnTypes(t *testing.T) {
	_, err := planFor(t, "VALUES (1), ('x')", Config{})
	require.Error(t, err)
}
