// plan implements the subcommand compiling statements given as arguments.
package plan

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quilldb/quill/catalog"
	"github.com/quilldb/quill/coltype"
	qconfig "github.com/quilldb/quill/config"
	"github.com/quilldb/quill/engine"
	"github.com/quilldb/quill/logger"
	"github.com/quilldb/quill/planner"
)

var (
	Cmd = &cobra.Command{
		Use:   "plan [sql...]",
		Short: "compile statements and print their plan trees and schemas",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Err(err).Msg("")
			}

			if err := planStatements(args); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = qconfig.NewConfig()
)

func planStatements(statements []string) error {
	c, err := catalog.LoadFile(Config.Catalog)
	if err != nil {
		return err
	}
	e := engine.New(c, Config.Planner, log.Logger)
	failed := false
	for _, statement := range statements {
		result := e.Compile(statement)
		if result.Err != nil {
			failed = true
			printErr(statement, result.Err)
			continue
		}
		fmt.Println(result.Plan.ToString())
		printSchema(result.Plan.Schema())
	}
	if failed {
		return fmt.Errorf("one or more statements failed to compile")
	}
	return nil
}

func printErr(statement string, err error) {
	diagnostics := planner.Diagnostics(err)
	if len(diagnostics) == 0 {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	for _, d := range diagnostics {
		fmt.Fprintln(os.Stderr, d.Render(statement))
	}
}

func printSchema(s *planner.Schema) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"column", "type"})
	for _, f := range s.Fields {
		table.Append([]string{f.Name, coltype.String(f.Type)})
	}
	table.Render()
}
