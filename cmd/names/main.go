package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/sirkon/dllist/internal/names"
	"github.com/sirkon/errors"
	"github.com/sirkon/message"
)

type config struct {
	Count    int    `help:"Number of names to read, prompt for it when negative." default:"-1"`
	LogLevel string `help:"Diagnostics level written to stderr." default:"disabled" enum:"debug,info,warn,error,disabled"`
}

var logLevels = map[string]zerolog.Level{
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"disabled": zerolog.Disabled,
}

func main() {
	var cfg config
	kong.Parse(
		&cfg,
		kong.Name("names"),
		kong.Description("Reads a list of names and prints them back."),
	)

	log := zeroLogger{
		log: zerolog.New(os.Stderr).With().Timestamp().Logger().Level(logLevels[cfg.LogLevel]),
	}

	c := names.NewCollector(os.Stdin, os.Stdout, log)
	list, err := c.Collect(cfg.Count)
	if err != nil {
		message.Critical(errors.Wrap(err, "collect names"))
	}
	if err := names.Print(os.Stdout, list); err != nil {
		message.Critical(errors.Wrap(err, "print names"))
	}
}
