// Package logio provides the diagnostic logger used by the avm command.
package logio

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Logger writes leveled lines to an output stream, remembering whether any
// error was logged so that a command can exit non-zero.
type Logger struct {
	output   io.Writer
	buf      bytes.Buffer
	errors   int
	exitCode int
}

// NewLogger creates a logger writing to out; a nil out means os.Stderr.
func NewLogger(out io.Writer) *Logger {
	log := &Logger{}
	log.SetOutput(out)
	return log
}

// SetOutput sets the logger's output stream.
func (log *Logger) SetOutput(out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	log.output = out
}

// ExitCode returns a code to pass to os.Exit, facilitating "exit non-zero if
// any error log" semantics.
func (log *Logger) ExitCode() int { return log.exitCode }

// Errors returns how many errors have been logged.
func (log *Logger) Errors() int { return log.errors }

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%v", err)
	}
}

// Errorf is like `Printf("ERROR", ...)` but additionally retains state so that
// ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.errors++
	if log.exitCode == 0 {
		log.exitCode = 1
	}
	if err := log.printf("ERROR", mess, args...); err != nil {
		log.exitCode = 2
	}
}

// Printf prints a line to the output stream like "level: message...\n".
// An io error while doing so sets the exit code.
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	if err := log.printf(level, mess, args...); err != nil {
		log.exitCode = 2
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if log.output == nil {
		log.output = os.Stderr
	}
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.output)
	return err
}
