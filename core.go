package main

import (
	"fmt"
	"strings"

	"github.com/jcorbin/avm/internal/flushio"
	"github.com/jcorbin/avm/internal/panicerr"
	"github.com/jcorbin/avm/internal/runeio"
)

type core struct {
	logging
	out flushio.WriteFlusher
}

// halt flushes output and unwinds the current Evaluate call with err.
func (core *core) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if core.out != nil {
			if ferr := core.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		core.logf("#", "halt error: %v", err)
	}()

	panicerr.Halt(err)
}

func (core *core) haltif(err error) {
	if err != nil {
		core.halt(err)
	}
}

func (core *core) flush() error {
	if core.out == nil {
		return nil
	}
	return core.out.Flush()
}

func (core *core) writeByte(b byte) {
	if err := runeio.WriteByte(core.out, b); err != nil {
		core.halt(err)
	}
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
