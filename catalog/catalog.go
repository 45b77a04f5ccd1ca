// catalog holds the database schema the planner binds queries against. The
// schema is provisioned up front, either programmatically or from a yaml
// file, and is read only during planning.
package catalog

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/quilldb/quill/coltype"
)

// Catalog holds information about the database schema.
type Catalog struct {
	tables []Table
}

type Table struct {
	Name    string   `yaml:"name"`
	Columns []Column `yaml:"columns"`
}

type Column struct {
	Name    string `yaml:"name"`
	ColType string `yaml:"type"`
	// PrimaryKey is informational only. The planner does not treat key
	// columns specially.
	PrimaryKey bool `yaml:"primaryKey"`
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// LoadFile reads a yaml schema definition and returns a catalog for it.
func LoadFile(path string) (*Catalog, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read catalog file %s", path)
	}
	var def struct {
		Tables []Table `yaml:"tables"`
	}
	if err := yaml.Unmarshal(contents, &def); err != nil {
		return nil, errors.Wrapf(err, "cannot parse catalog file %s", path)
	}
	c := NewCatalog()
	for _, t := range def.Tables {
		if err := c.AddTable(t); err != nil {
			return nil, errors.Wrapf(err, "cannot load catalog file %s", path)
		}
	}
	return c, nil
}

// AddTable registers a table. The table name must be unique and each column
// type must be a known sql type name.
func (c *Catalog) AddTable(t Table) error {
	if c.TableExists(t.Name) {
		return errors.Errorf("table %s exists", t.Name)
	}
	for _, col := range t.Columns {
		if _, err := typeFor(col.ColType); err != nil {
			return errors.Wrapf(err, "table %s column %s", t.Name, col.Name)
		}
	}
	c.tables = append(c.tables, t)
	return nil
}

// Tables returns the registered tables in registration order.
func (c *Catalog) Tables() []Table {
	return c.tables
}

func (c *Catalog) TableExists(tableName string) bool {
	for _, t := range c.tables {
		if t.Name == tableName {
			return true
		}
	}
	return false
}

func (c *Catalog) GetColumns(tableName string) ([]string, error) {
	for _, t := range c.tables {
		if t.Name == tableName {
			ret := []string{}
			for _, col := range t.Columns {
				ret = append(ret, col.Name)
			}
			return ret, nil
		}
	}
	return nil, errors.Errorf("cannot get columns for table %s", tableName)
}

func (c *Catalog) GetColumnType(tableName string, columnName string) (coltype.CT, error) {
	for _, t := range c.tables {
		if t.Name != tableName {
			continue
		}
		for _, col := range t.Columns {
			if col.Name == columnName {
				return typeFor(col.ColType)
			}
		}
	}
	return coltype.Unknown, errors.Errorf("no type for table %s col %s", tableName, columnName)
}

func typeFor(colType string) (coltype.CT, error) {
	switch colType {
	case "INTEGER":
		return coltype.Int, nil
	case "TEXT":
		return coltype.Str, nil
	}
	return coltype.Unknown, errors.Errorf("no type for %s", colType)
}
