package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quilldb/quill/coltype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaYaml = `
tables:
  - name: person
    columns:
      - name: id
        type: INTEGER
        primaryKey: true
      - name: name
        type: TEXT
  - name: pet
    columns:
      - name: id
        type: INTEGER
`

func writeSchema(t *testing.T, contents string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(p, []byte(contents), 0644))
	return p
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile(writeSchema(t, schemaYaml))
	require.NoError(t, err)

	require.Len(t, c.Tables(), 2)
	assert.True(t, c.TableExists("person"))
	assert.False(t, c.TableExists("house"))

	cols, err := c.GetColumns("person")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, cols)

	ct, err := c.GetColumnType("person", "name")
	require.NoError(t, err)
	assert.Equal(t, coltype.Str, ct)

	ct, err = c.GetColumnType("pet", "id")
	require.NoError(t, err)
	assert.Equal(t, coltype.Int, ct)
}

func TestLoadFileUnknownType(t *testing.T) {
	bad := `
tables:
  - name: person
    columns:
      - name: id
        type: BLOB
`
	_, err := LoadFile(writeSchema(t, bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no type for BLOB")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestAddTableDuplicate(t *testing.T) {
	c := NewCatalog()
	table := Table{Name: "person", Columns: []Column{{Name: "id", ColType: "INTEGER"}}}
	require.NoError(t, c.AddTable(table))
	err := c.AddTable(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table person exists")
}

func TestGetColumnsMissingTable(t *testing.T) {
	c := NewCatalog()
	_, err := c.GetColumns("person")
	require.Error(t, err)
}
