package main

import (
	"errors"
	"io"
	"strings"

	"github.com/jcorbin/avm/internal/fileinput"
	"github.com/jcorbin/avm/internal/logio"
	"github.com/jcorbin/avm/internal/panicerr"
)

// repl runs source one line at a time against a single long-lived VM, so the
// stack carries over from line to line.
type repl struct {
	vm     *VM
	in     fileinput.Input
	log    *logio.Logger
	prompt io.Writer
	config Config
}

// run reads and executes lines until the terminator line, end of input, or
// an exit instruction. Diagnostics and runtime failures are logged and the
// session continues; only input errors are returned.
func (rl *repl) run() error {
	for !rl.vm.Halted() {
		if rl.prompt != nil && rl.config.Prompt != "" {
			if _, err := io.WriteString(rl.prompt, rl.config.Prompt); err != nil {
				return err
			}
		}

		line, err := rl.in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(line.Text) == rl.config.Terminator {
			return nil
		}

		rl.runLine(line)
	}
	return nil
}

func (rl *repl) runLine(line fileinput.Line) {
	prog, err := rl.vm.Compile(line.Name, line.Line, []byte(line.Text+"\n"))
	if err == nil {
		err = rl.vm.Interpret(prog)
	}
	reportError(rl.log, err)
}

// reportError logs each diagnostic of a SourceError on its own line, and any
// other error as is. Recovered panics are followed by their stack.
func reportError(log *logio.Logger, err error) {
	var serr SourceError
	switch {
	case err == nil:
	case errors.As(err, &serr):
		for _, e := range serr.Errors {
			if serr.Name != "" {
				log.Errorf("%v: %v", serr.Name, e)
			} else {
				log.Errorf("%v", e)
			}
		}
	case panicerr.IsPanic(err):
		log.Errorf("%v", err)
		log.Leveledf("STACK")("%s", panicerr.PanicStack(err))
	default:
		log.Errorf("%v", err)
	}
}
