// config holds the settings shared by every quill command.
package config

import (
	"github.com/quilldb/quill/planner"
	"github.com/rs/zerolog"
)

type LogConfig struct {
	// Level is one of debug, info, or warn.
	Level string `mapstructure:"level" yaml:"level"`
	// Format is text or json.
	Format string `mapstructure:"format" yaml:"format"`
}

type Config struct {
	Log LogConfig `mapstructure:"log" yaml:"log"`
	// Catalog is the path of the yaml file declaring the tables queries can
	// reference.
	Catalog string         `mapstructure:"catalog" yaml:"catalog"`
	Planner planner.Config `mapstructure:"planner" yaml:"planner"`
}

func NewConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  zerolog.LevelInfoValue,
			Format: "text",
		},
	}
}
