package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play hands at the terminal against automated seats"`
	Simulate SimulateCmd      `cmd:"" help:"Run many automated matches in parallel and report results"`
	Classify ClassifyCmd      `cmd:"" help:"Classify a five card hand"`
	Showdown ShowdownCmd      `cmd:"" help:"Evaluate hole cards against a board and pick the winners"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerized"),
		kong.Description("Fixed-limit Texas Hold'em rules engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
