package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitRuntimeError = 1
)

// CLIError is a structured error with an exit code and machine-readable code.
type CLIError struct {
	ExitCode int
	Code     string
	Message  string
}

func (e *CLIError) Error() string { return e.Message }

func newCLIError(exitCode int, code, message string) *CLIError {
	return &CLIError{ExitCode: exitCode, Code: code, Message: message}
}

// reportError prints err to w and returns the exit code the process should use.
// Errors that are not a *CLIError are reported as runtime errors.
func reportError(w io.Writer, err error, asJSON bool) int {
	var cliErr *CLIError
	if !errors.As(err, &cliErr) {
		cliErr = newCLIError(ExitRuntimeError, "runtime_error", err.Error())
	}
	if asJSON {
		printErrorJSON(w, cliErr.Message, cliErr.Code)
	} else {
		printErrorHuman(w, cliErr.Message)
	}
	return cliErr.ExitCode
}

type jsonError struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func printErrorJSON(w io.Writer, message, code string) {
	b, _ := json.Marshal(jsonError{Status: "error", Error: code, Message: message})
	fmt.Fprintln(w, string(b))
}

// errorPrefix styles the "Error:" label for the stream it is written to,
// so color follows whether that stream is a terminal.
func errorPrefix(r *lipgloss.Renderer) string {
	return r.NewStyle().
		Foreground(lipgloss.Color("9")). // bright red
		Bold(true).
		Render("Error:")
}

func printErrorHuman(w io.Writer, message string) {
	fmt.Fprintln(w, errorPrefix(lipgloss.NewRenderer(w))+" "+message)
}
