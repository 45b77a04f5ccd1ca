// tables implements the subcommand listing the catalog contents.
package tables

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quilldb/quill/catalog"
	"github.com/quilldb/quill/coltype"
	qconfig "github.com/quilldb/quill/config"
	"github.com/quilldb/quill/logger"
)

var (
	Cmd = &cobra.Command{
		Use:   "tables",
		Short: "list the tables declared in the catalog",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Err(err).Msg("")
			}

			if err := listTables(); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = qconfig.NewConfig()
)

func listTables() error {
	c, err := catalog.LoadFile(Config.Catalog)
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"table", "column", "type", "primary key"})
	for _, t := range c.Tables() {
		for _, col := range t.Columns {
			table.Append([]string{
				t.Name,
				col.Name,
				coltype.String(typeOf(c, t.Name, col.Name)),
				strconv.FormatBool(col.PrimaryKey),
			})
		}
	}
	table.Render()
	return nil
}

func typeOf(c *catalog.Catalog, tableName, columnName string) coltype.CT {
	t, err := c.GetColumnType(tableName, columnName)
	if err != nil {
		return coltype.Unknown
	}
	return t
}
