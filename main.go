package main

import (
	"errors"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lvrach/process-data/internal/processor"
)

// Globals holds flags shared across all commands.
type Globals struct {
	JSON bool `help:"Report errors as JSON on stderr." short:"j"`
}

// CLI is the root command structure for process-data.
type CLI struct {
	Globals

	Process ProcessCmd `cmd:"" default:"withargs" help:"Process a data file (default command)."`
	Skill   SkillCmd   `cmd:"" help:"Print the skill instructions for agents."`
}

func main() {
	cli := CLI{}
	parser := kong.Must(&cli,
		kong.Name("process-data"),
		kong.Description("Process data files."),
		kong.Vars{
			"default_format": processor.DefaultFormat,
			"formats":        strings.Join(processor.DocumentedFormats, ", "),
		},
	)
	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		// stdout carries only the result; usage for a bad invocation goes to stderr.
		parser.Stdout = os.Stderr
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) {
			_ = parseErr.Context.PrintUsage(false)
		}
		parser.FatalIfErrorf(err)
	}
	if err := ctx.Run(&cli.Globals); err != nil {
		os.Exit(reportError(os.Stderr, err, cli.JSON))
	}
}
