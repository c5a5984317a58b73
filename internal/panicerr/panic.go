// Package panicerr converts panics into error returns.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover calls f, converting any panic it raises into an error return.
// A panic raised through Halt is returned as the error it carries; any other
// panic value is returned as an error that retains the panic's stack.
func Recover(name string, f func() error) (err error) {
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		if he, ok := e.(haltError); ok {
			err = he.error
			return
		}
		err = panicError{name: name, e: e, stack: debug.Stack()}
	}()
	return f()
}

// Halt unwinds to the nearest enclosing Recover, which returns err.
func Halt(err error) {
	if err == nil {
		err = errHalted
	}
	panic(haltError{err})
}

var errHalted = errors.New("halted")

type haltError struct{ error }

type panicError struct {
	name  string
	e     interface{}
	stack []byte
}

func (pe panicError) Error() string {
	return fmt.Sprint(pe)
}

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.e)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.e)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

func (pe panicError) Unwrap() error {
	err, _ := pe.e.(error)
	return err
}

// IsPanic returns true if err is a recovered panic, rather than a halt.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// PanicStack returns a non-empty stacktrace string if err is a recovered
// panic.
func PanicStack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}
