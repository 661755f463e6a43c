package cli

import (
	"fmt"
	"io"
)

// ResponseWriter shows command output to the user.
type ResponseWriter interface {
	Write(output string)
}

// ConsoleResponseWriter prints each output on its own line.
type ConsoleResponseWriter struct {
	out io.Writer
}

// NewConsoleResponseWriter creates a writer printing to out
func NewConsoleResponseWriter(out io.Writer) *ConsoleResponseWriter {
	return &ConsoleResponseWriter{out: out}
}

func (w *ConsoleResponseWriter) Write(output string) {
	fmt.Fprintln(w.out, output)
}
