// repl implements the subcommand starting an interactive session.
package repl

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quilldb/quill/catalog"
	qconfig "github.com/quilldb/quill/config"
	"github.com/quilldb/quill/engine"
	"github.com/quilldb/quill/logger"
	"github.com/quilldb/quill/repl"
)

var (
	Cmd = &cobra.Command{
		Use:   "repl",
		Short: "start an interactive session compiling statements as they are entered",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Err(err).Msg("")
			}

			if err := runRepl(); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = qconfig.NewConfig()
)

func runRepl() error {
	c, err := catalog.LoadFile(Config.Catalog)
	if err != nil {
		return err
	}
	e := engine.New(c, Config.Planner, log.Logger)
	repl.New(e).Run()
	return nil
}
