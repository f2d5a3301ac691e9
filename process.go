package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lvrach/process-data/internal/processor"
)

// ProcessCmd echoes its arguments back as a JSON result record.
type ProcessCmd struct {
	Input  string `required:"" help:"Input file path." placeholder:"PATH"`
	Output string `default:"${default_format}" help:"Output format (${formats})." placeholder:"FORMAT"`
}

func (cmd *ProcessCmd) Run(globals *Globals) error {
	return cmd.write(os.Stdout)
}

func (cmd *ProcessCmd) write(w io.Writer) error {
	result := processor.Process(cmd.Input, cmd.Output)
	if err := processor.Encode(w, result); err != nil {
		return newCLIError(ExitRuntimeError, "write_output",
			fmt.Sprintf("Failed to write result: %s", err))
	}
	return nil
}
