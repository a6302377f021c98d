package root

import (
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/shelf/internal/runenv"
)

const (
	flagData     = "data"
	flagConfig   = "config"
	flagColor    = "color"
	flagNoColor  = "no-color"
	flagLogLevel = "log-level"
	flagVersion  = "version"
)

// Globals are the flags accepted before any subcommand.
type Globals struct {
	DataFile   string
	ConfigFile string
	Color      string
	NoColor    bool
	LogLevel   string
}

// EffectiveColor folds --no-color into --color.
func (g Globals) EffectiveColor() string {
	if g.NoColor {
		return "never"
	}
	return g.Color
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      flagData,
			Aliases:   []string{"d"},
			Usage:     "books file to use",
			Sources:   cli.EnvVars(runenv.DataFileEnv),
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:      flagConfig,
			Aliases:   []string{"c"},
			Usage:     "config file to read",
			Sources:   cli.EnvVars(runenv.ConfigFileEnv),
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:  flagColor,
			Usage: "when to use colors: auto, always or never",
		},
		&cli.BoolFlag{
			Name:  flagNoColor,
			Usage: "disable colors (same as --color never)",
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Usage: "log level: debug, info, warn or error",
		},
		&cli.BoolFlag{
			Name:    flagVersion,
			Aliases: []string{"v"},
			Usage:   "print the version and exit",
		},
	}
}

func globalsFrom(cmd *cli.Command) Globals {
	if cmd == nil {
		return Globals{}
	}
	return Globals{
		DataFile:   strings.TrimSpace(cmd.String(flagData)),
		ConfigFile: strings.TrimSpace(cmd.String(flagConfig)),
		Color:      strings.TrimSpace(cmd.String(flagColor)),
		NoColor:    cmd.Bool(flagNoColor),
		LogLevel:   strings.TrimSpace(cmd.String(flagLogLevel)),
	}
}
