// Package processor builds the result record for the process-data skill.
//
// This is the placeholder a skill author replaces with real processing.
// The input file is not opened and the output format does not change the
// result; both values are echoed back as given.
package processor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	StatusSuccess    = "success"
	MessageProcessed = "Data processed successfully"

	// DefaultFormat is used when no output format is requested.
	DefaultFormat = "json"
)

// DocumentedFormats lists the output formats advertised in help text.
// They are not enforced.
var DocumentedFormats = []string{"json", "csv", "text"}

// Result is the record printed for every invocation.
// Field order matches the JSON key order.
type Result struct {
	Status  string `json:"status"`
	Input   string `json:"input"`
	Format  string `json:"format"`
	Message string `json:"message"`
}

// Process returns the result for inputFile rendered as outputFormat.
// Replace with your actual implementation.
func Process(inputFile, outputFormat string) Result {
	return Result{
		Status:  StatusSuccess,
		Input:   inputFile,
		Format:  outputFormat,
		Message: MessageProcessed,
	}
}

// Encode writes r to w as two-space indented JSON followed by a newline.
// Non-ASCII characters are written as \uXXXX escapes, so the output is
// plain ASCII whatever the input path contains.
func Encode(w io.Writer, r Result) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if _, err := w.Write(escapeNonASCII(buf.Bytes())); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// escapeNonASCII replaces every non-ASCII rune in the JSON text b with its
// \u escape, using a surrogate pair above U+FFFF. Only string literals can
// hold such runes, so the result is equivalent JSON.
func escapeNonASCII(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for len(b) > 0 {
		if b[0] < utf8.RuneSelf {
			out = append(out, b[0])
			b = b[1:]
			continue
		}
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			out = fmt.Appendf(out, `\u%04x\u%04x`, r1, r2)
			continue
		}
		out = fmt.Appendf(out, `\u%04x`, r)
	}
	return out
}
