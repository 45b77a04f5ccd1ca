package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quilldb/quill/cmd/quill/cmd/plan"
	"github.com/quilldb/quill/cmd/quill/cmd/repl"
	"github.com/quilldb/quill/cmd/quill/cmd/tables"
	"github.com/quilldb/quill/config"
)

var (
	RootCmd = &cobra.Command{
		Use:   "quill",
		Short: "Quill is a SQL query compiler producing logical query plans",
		Long: "Quill compiles SQL query statements including UNION, INTERSECT, " +
			"and EXCEPT combinations into logical query plans against a " +
			"declarative yaml catalog. It prints the plan tree and the output " +
			"schema of a query without executing it.",
	}
	cfgFile string
	Config  = config.NewConfig()
)

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	RootCmd.PersistentFlags().StringP("catalog", "", "", "catalog yaml file")
	RootCmd.PersistentFlags().StringP("log-format", "", "text", "logging format [text|json]")
	RootCmd.PersistentFlags().StringP("log-level", "", zerolog.LevelInfoValue,
		fmt.Sprintf(
			"logging level %s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
		),
	)
	RootCmd.PersistentFlags().IntP("max-set-depth", "", 0,
		"maximum nesting depth of parenthesized queries, 0 for unlimited",
	)

	RootCmd.AddCommand(plan.Cmd)
	RootCmd.AddCommand(tables.Cmd)
	RootCmd.AddCommand(repl.Cmd)

	if err := viper.BindPFlag("catalog", RootCmd.PersistentFlags().Lookup("catalog")); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	if err := viper.BindPFlag("log.format", RootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	if err := viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	if err := viper.BindPFlag("planner.max_set_depth", RootCmd.PersistentFlags().Lookup("max-set-depth")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Msg("error reading from config file")
		}
	}

	viper.SetEnvPrefix("quill")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(Config); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	plan.Config = Config
	tables.Config = Config
	repl.Config = Config
}
