// Package operand implements the typed numeric values of the VM stack along
// with their range checked arithmetic.
package operand

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Failure kinds returned, wrapped with context, by Create and arithmetic.
var (
	ErrParse          = errors.New("invalid numeric literal")
	ErrOverflow       = errors.New("overflow")
	ErrUnderflow      = errors.New("underflow")
	ErrDivisionByZero = errors.New("division by zero")
)

// Operand is an immutable typed number. The value is held widened to float64,
// which represents every int8, int16, int32 and float32 exactly, after being
// narrowed into its type at construction.
type Operand struct {
	typ Type
	val float64
	str string
}

func newOperand(t Type, x float64) Operand {
	o := Operand{typ: t}
	switch t {
	case Int8:
		o.val = float64(int8(x))
	case Int16:
		o.val = float64(int16(x))
	case Int32:
		o.val = float64(int32(x))
	case Float:
		o.val = float64(float32(x))
	case Double:
		o.val = x
	default:
		panic(fmt.Sprintf("invalid operand type %v", t))
	}
	if t.Integral() {
		o.str = strconv.FormatInt(int64(o.val), 10)
	} else if t == Float {
		o.str = strconv.FormatFloat(o.val, 'f', 2, 32)
	} else {
		o.str = strconv.FormatFloat(o.val, 'f', 2, 64)
	}
	return o
}

// Create parses text as a literal of type t.
//
// The text is first parsed in double precision and checked against t's
// limits, failing with ErrOverflow or ErrUnderflow; integral types then
// additionally require a clean base-10 integer. Any other malformation, or a
// NaN, fails with ErrParse.
func Create(t Type, text string) (Operand, error) {
	if int(t) >= len(Types) {
		return Operand{}, fmt.Errorf("%w: unknown type %v", ErrParse, t)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0)) {
		return Operand{}, fmt.Errorf("%w: %v(%q)", ErrParse, t, text)
	}
	if math.IsNaN(f) {
		return Operand{}, fmt.Errorf("%w: %v(%q) is not a number", ErrParse, t, text)
	}

	min, max := t.Limits()
	if f > max {
		return Operand{}, fmt.Errorf("%w: %v(%v) > %v", ErrOverflow, t, text, formatLimit(max))
	} else if f < min {
		return Operand{}, fmt.Errorf("%w: %v(%v) < %v", ErrUnderflow, t, text, formatLimit(min))
	}

	if t.Integral() {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Operand{}, fmt.Errorf("%w: %v(%q)", ErrParse, t, text)
		}
		f = float64(n)
	}
	return newOperand(t, f), nil
}

// MustCreate is like Create but panics on failure.
func MustCreate(t Type, text string) Operand {
	o, err := Create(t, text)
	if err != nil {
		panic(err)
	}
	return o
}

// Type returns the operand's type tag.
func (o Operand) Type() Type { return o.typ }

// Precision returns the operand's rank in the type ordering.
func (o Operand) Precision() int { return int(o.typ) }

// Value returns the operand's value widened to float64.
func (o Operand) Value() float64 { return o.val }

// Int8 returns the native value of an int8 operand, false for any other type.
func (o Operand) Int8() (int8, bool) {
	if o.typ != Int8 {
		return 0, false
	}
	return int8(o.val), true
}

// String returns the canonical display string: plain integer text for
// integral types, two fixed decimals for float and double.
func (o Operand) String() string { return o.str }

// GoString supports %#v for test failure output.
func (o Operand) GoString() string { return fmt.Sprintf("%v(%v)", o.typ, o.str) }

// NotEqual returns true if the operands' types or display strings differ.
// Display strings are compared, so values that print the same are equal.
func (o Operand) NotEqual(other Operand) bool {
	return o.typ != other.typ || o.str != other.str
}

// Equal is the negation of NotEqual.
func (o Operand) Equal(other Operand) bool { return !o.NotEqual(other) }

func formatLimit(lim float64) string {
	if lim == math.Trunc(lim) && math.Abs(lim) < 1<<53 {
		return strconv.FormatFloat(lim, 'f', -1, 64)
	}
	return strconv.FormatFloat(lim, 'g', -1, 64)
}
